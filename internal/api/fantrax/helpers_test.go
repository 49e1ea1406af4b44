package fantrax

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/omarshaarawi/fantrax/internal/models"
	"github.com/omarshaarawi/fantrax/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *memory.Repository {
	repo := memory.NewRepository()
	repo.SaveTeams([]*models.Team{
		{ID: "ta", Name: "Team A", Short: "TA"},
		{ID: "tb", Name: "Team B", Short: "TB"},
		{ID: "tc", Name: "Team C", Short: "TC"},
	})
	repo.SavePositions([]*models.Position{
		{ID: "701", Name: "Center", ShortName: "C"},
		{ID: "702", Name: "Left Wing", ShortName: "LW"},
		{ID: "703", Name: "Right Wing", ShortName: "RW"},
		{ID: "709", Name: "Forward", ShortName: "F"},
	})
	return repo
}

func newTestMapper(t *testing.T, now time.Time) *Mapper {
	t.Helper()
	return NewMapper(newTestRegistry(), WithClock(clockwork.NewFakeClockAt(now)), WithLocation(time.UTC))
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	v, err := Decode[T]([]byte(raw))
	require.NoError(t, err)
	return v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const scorerJSON = `{
	"scorerId": "04abc",
	"name": "Connor McDavid",
	"shortName": "C. McDavid",
	"teamName": "Edmonton Oilers",
	"teamShortName": "EDM",
	"posShortNames": "C",
	"posIdsNoFlex": ["701"],
	"posIds": ["701", "709"]
}`
