package fantrax

import (
	"fmt"
	"strings"
	"time"

	"github.com/omarshaarawi/fantrax/internal/models"
)

// Roster slot status codes.
const (
	statusActive  = "1"
	statusInjured = "3"
)

// statusTotals is read by index: 0 active, 1 reserve (with max), 2 injured.
const statusTotalSlots = 3

const (
	opponentCell = 1
	fppgCell     = 3
	gameTimeSep  = "<br/>"
	gameTimeFmt  = "3:04PM"
)

// Roster maps a team roster page. Rows without a player are only kept when
// they are open slots of the active lineup.
func (m *Mapper) Roster(data models.RosterPayload, teamID string) (*models.Roster, error) {
	const entity = "roster"

	team, err := m.team(entity, "teamId", teamID, &teamID)
	if err != nil {
		return nil, err
	}
	if data.MiscData == nil {
		return nil, malformed(entity, "miscData", data, nil)
	}
	totals := data.MiscData.StatusTotals
	if len(totals) < statusTotalSlots {
		return nil, malformed(entity, "miscData.statusTotals", totals,
			fmt.Errorf("expected %d slots, got %d", statusTotalSlots, len(totals)))
	}

	roster := &models.Roster{
		Team:    team,
		Active:  totals[0].Total,
		Reserve: totals[1].Total,
		Max:     totals[1].Max,
		Injured: totals[2].Total,
	}
	for _, table := range data.Tables {
		for _, row := range table.Rows {
			if row.Scorer == nil && row.StatusID != statusActive {
				continue
			}
			r, err := m.RosterRow(row)
			if err != nil {
				return nil, fmt.Errorf("roster %s: %w", teamID, err)
			}
			roster.Rows = append(roster.Rows, r)
		}
	}
	return roster, nil
}

func (m *Mapper) RosterRow(data models.RosterRowPayload) (*models.RosterRow, error) {
	const entity = "roster row"

	row := &models.RosterRow{}
	switch data.StatusID {
	case statusActive:
		pos, err := m.resolver.Position(data.PosID)
		if err != nil {
			return nil, fmt.Errorf("resolving %s posId: %w", entity, err)
		}
		row.PosID, row.Pos = data.PosID, pos
	case statusInjured:
		pos := models.InjuredPosition
		row.PosID, row.Pos = pos.ID, &pos
	default:
		pos := models.ReservePosition
		row.PosID, row.Pos = pos.ID, &pos
	}

	if data.Scorer != nil {
		player, err := m.Player(*data.Scorer, "")
		if err != nil {
			return nil, err
		}
		row.Player = player

		cell, err := cellAt(entity, data.Cells, fppgCell)
		if err != nil {
			return nil, err
		}
		if fppg, ok, err := parseOptionalScore(cell.Content); err != nil {
			return nil, malformed(entity, fmt.Sprintf("cells[%d].content", fppgCell), data, err)
		} else if ok {
			row.FPPG = &fppg
		}
	}

	if opponentCell < len(data.Cells) {
		content := strings.TrimSpace(data.Cells[opponentCell].Content.Value)
		if strings.HasSuffix(content, "AM") || strings.HasSuffix(content, "PM") {
			opponent, gameTime, err := parseGameTime(content)
			if err != nil {
				return nil, malformed(entity, fmt.Sprintf("cells[%d].content", opponentCell), data, err)
			}
			row.Opponent, row.Time = opponent, &gameTime
		}
	}

	return row, nil
}

// parseOptionalScore treats an empty cell or a dash as no value.
func parseOptionalScore(c models.Content) (float64, bool, error) {
	v := strings.TrimSpace(c.Value)
	if !c.Valid || v == "" || v == "-" {
		return 0, false, nil
	}
	f, err := parseScore(v)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// parseGameTime splits "@BOS<br/>Sat 7:05PM" into the opponent and the
// time of day.
func parseGameTime(content string) (string, time.Time, error) {
	opponent, when, ok := strings.Cut(content, gameTimeSep)
	if !ok {
		return "", time.Time{}, fmt.Errorf("no %q in %q", gameTimeSep, content)
	}
	parts := strings.Fields(when)
	if len(parts) < 2 {
		return "", time.Time{}, fmt.Errorf("no time of day in %q", when)
	}
	t, err := time.Parse(gameTimeFmt, parts[1])
	if err != nil {
		return "", time.Time{}, err
	}
	return opponent, t, nil
}
