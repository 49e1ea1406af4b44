package fantrax

import (
	"fmt"
	"time"

	"github.com/omarshaarawi/fantrax/internal/models"
)

// usefulInfo keys carrying the trade timeline.
const (
	infoProposed = "Proposed"
	infoAccepted = "Accepted"
	infoExecuted = "To be executed"
)

func (m *Mapper) moveTeams(entity string, data models.MovePayload) (*models.Team, *models.Team, error) {
	if data.From == nil {
		return nil, nil, malformed(entity, "from", data, nil)
	}
	if data.To == nil {
		return nil, nil, malformed(entity, "to", data, nil)
	}
	from, err := m.team(entity, "from.teamId", data, data.From.TeamID)
	if err != nil {
		return nil, nil, err
	}
	to, err := m.team(entity, "to.teamId", data, data.To.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (m *Mapper) DraftPick(data models.MovePayload) (*models.DraftPick, error) {
	const entity = "draft pick"

	from, to, err := m.moveTeams(entity, data)
	if err != nil {
		return nil, err
	}
	pick := data.DraftPick
	if pick == nil {
		return nil, malformed(entity, "draftPick", data, nil)
	}
	round, err := required(entity, "draftPick.round", data, pick.Round)
	if err != nil {
		return nil, err
	}
	year, err := required(entity, "draftPick.year", data, pick.Year)
	if err != nil {
		return nil, err
	}
	if pick.OrigOwnerTeam == nil {
		return nil, malformed(entity, "draftPick.origOwnerTeam", data, nil)
	}
	owner, err := m.team(entity, "draftPick.origOwnerTeam.id", data, pick.OrigOwnerTeam.ID)
	if err != nil {
		return nil, err
	}

	return &models.DraftPick{From: from, To: to, Round: round, Year: year, Owner: owner}, nil
}

func (m *Mapper) TradePlayer(data models.MovePayload) (*models.TradePlayer, error) {
	const entity = "trade player"

	from, to, err := m.moveTeams(entity, data)
	if err != nil {
		return nil, err
	}
	scorer := data.Scorer
	if scorer == nil {
		return nil, malformed(entity, "scorer", data, nil)
	}

	fields := []struct {
		name string
		v    *string
	}{
		{"scorer.name", scorer.Name},
		{"scorer.shortName", scorer.ShortName},
		{"scorer.teamName", scorer.TeamName},
		{"scorer.teamShortName", scorer.TeamShortName},
		{"scorer.posShortNames", scorer.PosShortNames},
	}
	for _, f := range fields {
		if f.v == nil {
			return nil, malformed(entity, f.name, data, nil)
		}
	}
	ppg, err := required(entity, "scorePerGame", data, data.ScorePerGame)
	if err != nil {
		return nil, err
	}
	points, err := required(entity, "score", data, data.Score)
	if err != nil {
		return nil, err
	}

	return &models.TradePlayer{
		From:          from,
		To:            to,
		Name:          *scorer.Name,
		ShortName:     *scorer.ShortName,
		TeamName:      *scorer.TeamName,
		TeamShortName: *scorer.TeamShortName,
		Pos:           *scorer.PosShortNames,
		PPG:           ppg,
		Points:        points,
	}, nil
}

// Move decides once whether a trade leg is a pick or a player.
func (m *Mapper) Move(data models.MovePayload) (models.Move, error) {
	if data.DraftPick != nil {
		pick, err := m.DraftPick(data)
		if err != nil {
			return nil, err
		}
		return pick, nil
	}
	player, err := m.TradePlayer(data)
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (m *Mapper) Trade(data models.TradePayload) (*models.Trade, error) {
	const entity = "trade"

	id, err := required(entity, "txSetId", data, data.TxSetID)
	if err != nil {
		return nil, err
	}
	proposedBy, err := m.team(entity, "creatorTeamId", data, data.CreatorTeamID)
	if err != nil {
		return nil, err
	}

	info := make(map[string]string, len(data.UsefulInfo))
	for _, item := range data.UsefulInfo {
		info[item.Name] = item.Value
	}

	trade := &models.Trade{
		ID:         id,
		ProposedBy: proposedBy,
		Proposed:   info[infoProposed],
		Accepted:   info[infoAccepted],
		Executed:   info[infoExecuted],
		Moves:      make([]models.Move, 0, len(data.Moves)),
	}
	for i, move := range data.Moves {
		mv, err := m.Move(move)
		if err != nil {
			return nil, fmt.Errorf("trade %s move %d: %w", id, i, err)
		}
		trade.Moves = append(trade.Moves, mv)
	}
	return trade, nil
}

func (m *Mapper) TradeBlock(data models.TradeBlockPayload) (*models.TradeBlock, error) {
	const entity = "trade block"

	team, err := m.team(entity, "teamId", data, data.TeamID)
	if err != nil {
		return nil, err
	}
	if data.LastUpdated == nil || data.LastUpdated.Date == nil {
		return nil, malformed(entity, "lastUpdated.date", data, nil)
	}

	block := &models.TradeBlock{
		Team:             team,
		UpdateDate:       time.UnixMilli(*data.LastUpdated.Date).In(m.location),
		PlayersOffered:   map[string][]*models.Player{},
		PlayersWanted:    map[string][]*models.Player{},
		PositionsOffered: []*models.Position{},
		PositionsWanted:  []*models.Position{},
		StatsOffered:     []string{},
		StatsWanted:      []string{},
	}
	if data.Comment != nil {
		block.Note = data.Comment.Body
	}

	if data.ScorersOffered != nil {
		if block.PlayersOffered, err = m.playersByPosition(data.ScorersOffered.Scorers); err != nil {
			return nil, fmt.Errorf("trade block scorersOffered: %w", err)
		}
	}
	if data.ScorersWanted != nil {
		if block.PlayersWanted, err = m.playersByPosition(data.ScorersWanted.Scorers); err != nil {
			return nil, fmt.Errorf("trade block scorersWanted: %w", err)
		}
	}
	if data.PositionsOffered != nil {
		if block.PositionsOffered, err = m.positions(entity, "positionsOffered", data.PositionsOffered.Positions); err != nil {
			return nil, err
		}
	}
	if data.PositionsWanted != nil {
		if block.PositionsWanted, err = m.positions(entity, "positionsWanted", data.PositionsWanted.Positions); err != nil {
			return nil, err
		}
	}
	if data.StatsOffered != nil {
		block.StatsOffered = statNames(data.StatsOffered.Stats)
	}
	if data.StatsWanted != nil {
		block.StatsWanted = statNames(data.StatsWanted.Stats)
	}

	return block, nil
}

// playersByPosition keys players by the short name of the position id they
// were listed under.
func (m *Mapper) playersByPosition(scorers map[string][]models.ScorerPayload) (map[string][]*models.Player, error) {
	out := make(map[string][]*models.Player, len(scorers))
	for posID, list := range scorers {
		pos, err := m.resolver.Position(posID)
		if err != nil {
			return nil, err
		}
		players := make([]*models.Player, 0, len(list))
		for _, s := range list {
			p, err := m.Player(s, "")
			if err != nil {
				return nil, err
			}
			players = append(players, p)
		}
		out[pos.ShortName] = players
	}
	return out, nil
}

func statNames(stats []models.StatPayload) []string {
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.ShortName
	}
	return names
}
