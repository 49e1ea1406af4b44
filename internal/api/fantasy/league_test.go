package fantasy

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/omarshaarawi/fantrax/internal/api/fantrax"
	"github.com/omarshaarawi/fantrax/internal/repository/memory"
	"github.com/omarshaarawi/fantrax/internal/repository/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leagueJSON = `{
	"fantasyTeams": [
		{"id": "ta", "name": "Team A", "shortName": "TA"},
		{"id": "tb", "name": "Team B", "shortName": "TB"}
	],
	"positionMap": {
		"701": {"id": "701", "name": "Center", "shortName": "C"}
	}
}`

func scorer(id, name string) string {
	return `{"scorerId": "` + id + `", "name": "` + name + `", "shortName": "` + name + `", "teamName": "Oilers",
		"posShortNames": "C", "posIdsNoFlex": ["701"], "posIds": ["701"]}`
}

func writePayload(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o600))
}

func newTestAPI(t *testing.T, dir string) *API {
	t.Helper()
	repo := memory.NewRepository()
	mapper := fantrax.NewMapper(repo,
		fantrax.WithClock(clockwork.NewFakeClockAt(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))),
		fantrax.WithLocation(time.UTC),
	)
	api := NewAPI(payload.NewDir(dir), mapper)

	writePayload(t, dir, "league", leagueJSON)
	teams, positions, err := api.GetLeagueInfo()
	require.NoError(t, err)
	repo.SaveTeams(teams)
	repo.SavePositions(positions)
	return api
}

func TestGetLeagueInfoMissing(t *testing.T) {
	api := NewAPI(payload.NewDir(t.TempDir()), fantrax.NewMapper(memory.NewRepository()))

	_, _, err := api.GetLeagueInfo()
	assert.ErrorIs(t, err, payload.ErrNotFound)
}

func TestGetScoringPeriodsMergesPages(t *testing.T) {
	dir := t.TempDir()
	api := newTestAPI(t, dir)

	writePayload(t, dir, "schedule", `[
		{"caption": "Scoring Period 1", "subCaption": "(Mon Jan 01, 2024 - Sun Jan 07, 2024)",
		 "rows": [{"cells": [{"teamId": "ta"}, {"content": "10"}, {"teamId": "tb"}, {"content": "20"}]}]},
		{"caption": "Scoring Period 2", "subCaption": "(Mon Jan 08, 2024 - Sun Jan 14, 2024)", "rows": []}
	]`)
	writePayload(t, dir, "schedule_2", `[
		{"caption": "Scoring Period 1", "subCaption": "(Mon Jan 01, 2024 - Sun Jan 07, 2024)",
		 "rows": [{"cells": [{"teamId": "tb"}, {"content": "30"}, {"teamId": "ta"}, {"content": "1"}]}]}
	]`)

	periods, err := api.GetScoringPeriods()
	require.NoError(t, err)

	require.Len(t, periods, 2)
	require.Len(t, periods[0].Matchups, 2)
	assert.Equal(t, 2, periods[0].Matchups[1].Key)
	assert.True(t, periods[0].Complete)
	assert.True(t, periods[1].Current)
}

func TestGetScoringPeriodsRequiresFirstPage(t *testing.T) {
	api := newTestAPI(t, t.TempDir())

	_, err := api.GetScoringPeriods()
	assert.ErrorIs(t, err, payload.ErrNotFound)
}

func TestGetTransactionsGroupsRows(t *testing.T) {
	dir := t.TempDir()
	api := newTestAPI(t, dir)

	row := func(id string, count int, code, who string) string {
		return `{"txSetId": "` + id + `", "numInGroup": ` + strconv.Itoa(count) + `, "transactionCode": "` + code + `", "claimType": "FA",
			"cells": [{"teamId": "ta"}, {"content": "Tue Jan 09, 2024, 3:15PM"}], "scorer": ` + scorer(who, who) + `}`
	}
	writePayload(t, dir, "transactions", `[`+
		row("g1", 2, "CLAIM", "Smith")+`,`+
		row("g1", 2, "DROP", "Jones")+`,`+
		row("g2", 1, "DROP", "Brown")+`,`+
		row("g3", 2, "CLAIM", "Green")+
		`]`)

	txs, err := api.GetTransactions()
	require.NoError(t, err)

	require.Len(t, txs, 3)
	assert.Equal(t, "[FA Smith, DROP Jones]", txs[0].String())
	assert.True(t, txs[0].Finalized)
	assert.Equal(t, "[DROP Brown]", txs[1].String())
	assert.False(t, txs[2].Finalized, "second member never arrived")
}

func TestGetStandingsAndRoster(t *testing.T) {
	dir := t.TempDir()
	api := newTestAPI(t, dir)

	writePayload(t, dir, "standings_week_3", `[
		{"tableType": "H2hPointsBased1", "caption": "Standings", "header": {"cells": [{"name": "W-L-T"}]},
		 "rows": [{"cells": [{"content": "2-1-0"}], "fixedCells": [{"content": "1"}, {"teamId": "tb"}]}]}
	]`)
	writePayload(t, dir, "roster_ta", `{
		"miscData": {"statusTotals": [{"total": 1}, {"total": 0, "max": 5}, {"total": 0}]},
		"tables": [{"rows": [{"statusId": "1", "posId": "701", "scorer": `+scorer("s1", "Smith")+`, "cells": [{}, {}, {}, {"content": "1.5"}]}]}]
	}`)

	week := 3
	standings, err := api.GetStandings(&week)
	require.NoError(t, err)
	require.Len(t, standings.Standings, 1)
	assert.Equal(t, "Team B", standings.Standings[0].Standings.TeamRecords[0].Team.Name)

	_, err = api.GetStandings(nil)
	assert.ErrorIs(t, err, payload.ErrNotFound)

	roster, err := api.GetRoster("ta")
	require.NoError(t, err)
	assert.Equal(t, "Team A Roster\nC: Smith", roster.String())
}

func TestGetTradesAndBlocks(t *testing.T) {
	dir := t.TempDir()
	api := newTestAPI(t, dir)

	writePayload(t, dir, "trades", `[{"txSetId": "t1", "creatorTeamId": "ta", "moves": [
		{"from": {"teamId": "ta"}, "to": {"teamId": "tb"}, "draftPick": {"round": 1, "year": 2025, "origOwnerTeam": {"id": "ta"}}}
	]}]`)
	writePayload(t, dir, "trade_blocks", `[{"teamId": "tb", "lastUpdated": {"date": 0}}]`)

	trades, err := api.GetTrades()
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "From: Team A To: Team B Pick: 2025, Round 1 (Team A)", trades[0].String())

	blocks, err := api.GetTradeBlocks()
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Team B", blocks[0].Team.Name)

	writePayload(t, dir, "trades", `[{"txSetId": "t1"`)
	_, err = api.GetTrades()
	_, ok := fantrax.AsMalformedPayloadError(err)
	assert.True(t, ok)
}
