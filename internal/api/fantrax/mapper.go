package fantrax

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	jsoniter "github.com/json-iterator/go"
	"github.com/omarshaarawi/fantrax/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Resolver looks up the canonical Team and Position values of a league.
type Resolver interface {
	Team(id string) (*models.Team, error)
	Position(id string) (*models.Position, error)
}

// Mapper builds entities from decoded Fantrax payloads. It holds no state
// besides its collaborators and is safe for concurrent use once the
// resolver is fully populated.
type Mapper struct {
	resolver Resolver
	clock    clockwork.Clock
	location *time.Location
	logger   *slog.Logger
}

type Option func(*Mapper)

// WithClock sets the clock used for scoring period status.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Mapper) {
		m.clock = clock
	}
}

// WithLocation sets the zone dates without an offset are read in.
func WithLocation(loc *time.Location) Option {
	return func(m *Mapper) {
		if loc != nil {
			m.location = loc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewMapper(resolver Resolver, opts ...Option) *Mapper {
	m := &Mapper{
		resolver: resolver,
		clock:    clockwork.NewRealClock(),
		location: time.Local,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Decode unmarshals a raw payload into its wire shape.
func Decode[T any](raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, malformed(fmt.Sprintf("%T", v), "body", string(raw), err)
	}
	return v, nil
}

func (m *Mapper) Team(data models.TeamPayload) (*models.Team, error) {
	id, err := required("team", "id", data, data.ID)
	if err != nil {
		return nil, err
	}
	name, err := required("team", "name", data, data.Name)
	if err != nil {
		return nil, err
	}
	return &models.Team{ID: id, Name: name, Short: data.ShortName, Logo: data.LogoURL}, nil
}

func (m *Mapper) Position(data models.PositionPayload) (*models.Position, error) {
	id, err := required("position", "id", data, data.ID)
	if err != nil {
		return nil, err
	}
	name, err := required("position", "name", data, data.Name)
	if err != nil {
		return nil, err
	}
	short, err := required("position", "shortName", data, data.ShortName)
	if err != nil {
		return nil, err
	}
	return &models.Position{ID: id, Name: name, ShortName: short}, nil
}

// League maps the league info payload into the values the registry is
// seeded with.
func (m *Mapper) League(info models.LeagueInfo) ([]*models.Team, []*models.Position, error) {
	teams := make([]*models.Team, 0, len(info.FantasyTeams))
	for _, t := range info.FantasyTeams {
		team, err := m.Team(t)
		if err != nil {
			return nil, nil, err
		}
		teams = append(teams, team)
	}

	positions := make([]*models.Position, 0, len(info.PositionMap))
	for key, p := range info.PositionMap {
		if p.ID == nil {
			p.ID = &key
		}
		pos, err := m.Position(p)
		if err != nil {
			return nil, nil, err
		}
		positions = append(positions, pos)
	}
	return teams, positions, nil
}

func (m *Mapper) team(entity, field string, fragment any, id *string) (*models.Team, error) {
	teamID, err := required(entity, field, fragment, id)
	if err != nil {
		return nil, err
	}
	team, err := m.resolver.Team(teamID)
	if err != nil {
		return nil, fmt.Errorf("resolving %s %s: %w", entity, field, err)
	}
	return team, nil
}

func (m *Mapper) positions(entity, field string, ids []string) ([]*models.Position, error) {
	positions := make([]*models.Position, 0, len(ids))
	for _, id := range ids {
		pos, err := m.resolver.Position(id)
		if err != nil {
			return nil, fmt.Errorf("resolving %s %s: %w", entity, field, err)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

var injuryIcons = map[string]bool{
	"1": true, // day to day
	"2": true, // out
	"6": true, // injured reserve
}

const suspendedIcon = "6"

// Player maps a scorer object. txType is the transaction kind the player
// appeared in, empty outside of transactions.
func (m *Mapper) Player(data models.ScorerPayload, txType string) (*models.Player, error) {
	const entity = "player"

	id, err := required(entity, "scorerId", data, data.ScorerID)
	if err != nil {
		return nil, err
	}
	name, err := required(entity, "name", data, data.Name)
	if err != nil {
		return nil, err
	}
	shortName, err := required(entity, "shortName", data, data.ShortName)
	if err != nil {
		return nil, err
	}
	teamName, err := required(entity, "teamName", data, data.TeamName)
	if err != nil {
		return nil, err
	}
	posShortNames, err := required(entity, "posShortNames", data, data.PosShortNames)
	if err != nil {
		return nil, err
	}
	if data.PosIDsNoFlex == nil {
		return nil, malformed(entity, "posIdsNoFlex", data, nil)
	}
	if data.PosIDs == nil {
		return nil, malformed(entity, "posIds", data, nil)
	}

	player := &models.Player{
		ID:            id,
		Name:          name,
		ShortName:     shortName,
		TeamName:      teamName,
		TeamShortName: teamName,
		PosShortName:  posShortNames,
		Type:          txType,
	}
	if data.TeamShortName != nil {
		player.TeamShortName = *data.TeamShortName
	}

	if player.Positions, err = m.positions(entity, "posIdsNoFlex", data.PosIDsNoFlex); err != nil {
		return nil, err
	}
	if player.AllPositions, err = m.positions(entity, "posIds", data.PosIDs); err != nil {
		return nil, err
	}

	// Type 6 sits in the injury set as well, so it never reaches the
	// suspension branch. Kept as the service reports it until the icon
	// mapping is confirmed upstream.
	for _, icon := range data.Icons {
		switch {
		case injuryIcons[icon.TypeID]:
			player.Injured = true
		case icon.TypeID == suspendedIcon:
			player.Suspended = true
		}
	}

	return player, nil
}
