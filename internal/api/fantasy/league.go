package fantasy

import (
	"errors"
	"fmt"

	"github.com/omarshaarawi/fantrax/internal/api/fantrax"
	"github.com/omarshaarawi/fantrax/internal/models"
	"github.com/omarshaarawi/fantrax/internal/repository/payload"
)

// Payload names as written by the API client.
const (
	leaguePayload       = "league"
	standingsPayload    = "standings"
	schedulePayload     = "schedule"
	tradesPayload       = "trades"
	tradeBlocksPayload  = "trade_blocks"
	transactionsPayload = "transactions"
	rosterPayloadPrefix = "roster_"
)

// Source hands out raw payload bodies by name.
type Source interface {
	Load(name string) ([]byte, error)
}

type API struct {
	source Source
	mapper *fantrax.Mapper
}

func NewAPI(source Source, mapper *fantrax.Mapper) *API {
	return &API{source: source, mapper: mapper}
}

func load[T any](a *API, name string) (T, error) {
	var zero T
	raw, err := a.source.Load(name)
	if err != nil {
		return zero, err
	}
	v, err := fantrax.Decode[T](raw)
	if err != nil {
		return zero, fmt.Errorf("decoding %s: %w", name, err)
	}
	return v, nil
}

// GetLeagueInfo returns the teams and positions the registry must hold
// before anything else is mapped.
func (a *API) GetLeagueInfo() ([]*models.Team, []*models.Position, error) {
	info, err := load[models.LeagueInfo](a, leaguePayload)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching league info: %w", err)
	}
	return a.mapper.League(info)
}

// GetStandings maps the season standings, or a single week's when week is set.
func (a *API) GetStandings(week *int) (*models.StandingsCollection, error) {
	name := standingsPayload
	if week != nil {
		name = fmt.Sprintf("%s_week_%d", standingsPayload, *week)
	}
	sections, err := load[[]models.StandingsSection](a, name)
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	return a.mapper.StandingsCollection(sections, week)
}

// GetScoringPeriods maps the league schedule. Continuation pages
// (schedule_2, schedule_3, ...) are merged into the period they continue,
// matched by caption, in page order.
func (a *API) GetScoringPeriods() ([]*models.ScoringPeriod, error) {
	var periods []*models.ScoringPeriod
	byName := map[string]*models.ScoringPeriod{}

	for page := 1; ; page++ {
		name := schedulePayload
		if page > 1 {
			name = fmt.Sprintf("%s_%d", schedulePayload, page)
		}
		data, err := load[[]models.ScoringPeriodPayload](a, name)
		if errors.Is(err, payload.ErrNotFound) && page > 1 {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetching schedule: %w", err)
		}

		for _, d := range data {
			if d.Caption != nil {
				if existing, ok := byName[*d.Caption]; ok {
					a.mapper.AddMatchups(existing, d)
					continue
				}
			}
			period, err := a.mapper.ScoringPeriod(d)
			if err != nil {
				return nil, err
			}
			byName[period.Name] = period
			periods = append(periods, period)
		}
	}
	return periods, nil
}

func (a *API) GetRoster(teamID string) (*models.Roster, error) {
	data, err := load[models.RosterPayload](a, rosterPayloadPrefix+teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	return a.mapper.Roster(data, teamID)
}

func (a *API) GetTrades() ([]*models.Trade, error) {
	data, err := load[[]models.TradePayload](a, tradesPayload)
	if err != nil {
		return nil, fmt.Errorf("fetching trades: %w", err)
	}
	trades := make([]*models.Trade, 0, len(data))
	for _, d := range data {
		trade, err := a.mapper.Trade(d)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

func (a *API) GetTradeBlocks() ([]*models.TradeBlock, error) {
	data, err := load[[]models.TradeBlockPayload](a, tradeBlocksPayload)
	if err != nil {
		return nil, fmt.Errorf("fetching trade blocks: %w", err)
	}
	blocks := make([]*models.TradeBlock, 0, len(data))
	for _, d := range data {
		block, err := a.mapper.TradeBlock(d)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// GetTransactions maps the transaction log. Rows of a multi-player group
// arrive one after another and are folded into the group's first row.
func (a *API) GetTransactions() ([]*models.Transaction, error) {
	rows, err := load[[]models.TransactionRow](a, transactionsPayload)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	var transactions []*models.Transaction
	var open *models.Transaction
	for _, row := range rows {
		if open != nil {
			applied, err := a.mapper.UpdateTransaction(open, row)
			if err != nil {
				return nil, err
			}
			if applied {
				if open.Finalized {
					open = nil
				}
				continue
			}
		}

		tx, err := a.mapper.Transaction(row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
		open = nil
		if !tx.Finalized {
			open = tx
		}
	}
	return transactions, nil
}
