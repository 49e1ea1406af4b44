package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/fantrax/internal/api/fantasy"
	"github.com/omarshaarawi/fantrax/internal/models"
	"github.com/omarshaarawi/fantrax/internal/repository/memory"
)

// ErrNoScoringPeriod is returned when the schedule has no period that has
// started yet.
var ErrNoScoringPeriod = errors.New("no started scoring period")

type FantasyService struct {
	api  *fantasy.API
	repo *memory.Repository
}

func NewFantasyService(api *fantasy.API, repo *memory.Repository) *FantasyService {
	return &FantasyService{api: api, repo: repo}
}

// LoadLeague fills the registry. It must run before any other call.
func (s *FantasyService) LoadLeague() error {
	teams, positions, err := s.api.GetLeagueInfo()
	if err != nil {
		return err
	}
	s.repo.SaveTeams(teams)
	s.repo.SavePositions(positions)
	slog.Info("League loaded", "teams", len(teams), "positions", len(positions))
	return nil
}

func (s *FantasyService) GetStandings(week *int) (string, error) {
	standings, err := s.api.GetStandings(week)
	if err != nil {
		return "", fmt.Errorf("error fetching standings: %w", err)
	}

	var sb strings.Builder
	if week != nil {
		sb.WriteString(fmt.Sprintf("🏆 Week %d Standings\n", *week))
	} else {
		sb.WriteString("🏆 Current Standings\n")
	}
	for _, section := range standings.Standings {
		sb.WriteString("\n" + section.Standings.String() + "\n")
	}
	return sb.String(), nil
}

// currentPeriod returns the running period, or the last complete one when
// the league is between periods.
func (s *FantasyService) currentPeriod() (*models.ScoringPeriod, error) {
	periods, err := s.api.GetScoringPeriods()
	if err != nil {
		return nil, fmt.Errorf("error fetching scoring periods: %w", err)
	}

	var latest *models.ScoringPeriod
	for _, p := range periods {
		if p.Current {
			return p, nil
		}
		if p.Complete && (latest == nil || p.End.After(latest.End)) {
			latest = p
		}
	}
	if latest == nil {
		return nil, ErrNoScoringPeriod
	}
	return latest, nil
}

func (s *FantasyService) GetScoreboard() (string, error) {
	period, err := s.currentPeriod()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏒 %s (%s)\n\n", period.Name, period.Status()))
	for _, m := range period.Matchups {
		sb.WriteString(m.String() + "\n")
	}

	if period.Complete {
		sb.WriteString("\n🏆 Trophies:\n")
		for _, t := range processScores(period.Matchups) {
			sb.WriteString(formatTrophy(t))
		}
	}

	slog.Info("Scoreboard", "period", period.Name, "matchups", len(period.Matchups))
	return sb.String(), nil
}

type trophy struct {
	category string
	side     models.MatchupSide
	value    float64
}

func processScores(matchups []*models.Matchup) []trophy {
	if len(matchups) == 0 {
		return nil
	}

	high := trophy{category: "High Score", value: -math.MaxFloat64}
	low := trophy{category: "Low Score", value: math.MaxFloat64}
	biggest := trophy{category: "Biggest Win", value: -math.MaxFloat64}
	closest := trophy{category: "Closest Win", value: math.MaxFloat64}

	for _, m := range matchups {
		for _, side := range []struct {
			team  models.MatchupSide
			score float64
		}{{m.Away, m.AwayScore}, {m.Home, m.HomeScore}} {
			if !side.team.IsTeam() {
				continue
			}
			if side.score > high.value {
				high.side, high.value = side.team, side.score
			}
			if side.score < low.value {
				low.side, low.value = side.team, side.score
			}
		}

		outcome, ok := m.Winner()
		if !ok || !outcome.Winner.IsTeam() || !outcome.Loser.IsTeam() {
			continue
		}
		diff := m.Difference()
		if diff > biggest.value {
			biggest.side, biggest.value = outcome.Winner, diff
		}
		if diff < closest.value {
			closest.side, closest.value = outcome.Winner, diff
		}
	}

	var trophies []trophy
	for _, t := range []trophy{high, low, biggest, closest} {
		if t.side.IsTeam() {
			trophies = append(trophies, t)
		}
	}
	return trophies
}

func formatTrophy(t trophy) string {
	switch t.category {
	case "High Score":
		return fmt.Sprintf("Highest Score: %s (%.2f)\n", t.side, t.value)
	case "Low Score":
		return fmt.Sprintf("Lowest Score: %s (%.2f)\n", t.side, t.value)
	case "Biggest Win":
		return fmt.Sprintf("Biggest Win: %s (Margin: %.2f)\n", t.side, t.value)
	default:
		return fmt.Sprintf("Closest Win: %s (Margin: %.2f)\n", t.side, t.value)
	}
}

// GetCloseGames lists the current period's matchups decided by at most margin.
func (s *FantasyService) GetCloseGames(margin float64) (string, error) {
	period, err := s.currentPeriod()
	if err != nil {
		return "", err
	}

	var tight []*models.Matchup
	for _, m := range period.Matchups {
		if m.Away.IsTeam() && m.Home.IsTeam() && m.Difference() <= margin {
			tight = append(tight, m)
		}
	}
	sort.SliceStable(tight, func(i, j int) bool {
		return tight[i].Difference() < tight[j].Difference()
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏒 %s Watch List\n\n", period.Name))
	if len(tight) == 0 {
		sb.WriteString("No close games this period. All outcomes are likely decided.")
		return sb.String(), nil
	}
	for _, m := range tight {
		sb.WriteString(fmt.Sprintf("%s (Margin: %.2f)\n", m, m.Difference()))
	}
	return sb.String(), nil
}

func (s *FantasyService) GetTeamRoster(teamName string) (string, error) {
	team, err := s.repo.FindTeam(teamName)
	if err != nil {
		return "", fmt.Errorf("team not found: %s", teamName)
	}

	roster, err := s.api.GetRoster(team.ID)
	if err != nil {
		return "", fmt.Errorf("error fetching team roster: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 %s's Roster\n", team.Name))
	sb.WriteString(fmt.Sprintf("Active %d | Reserve %d/%d | IR %d\n\n", roster.Active, roster.Reserve, roster.Max, roster.Injured))

	for _, row := range roster.Rows {
		sb.WriteString("▫️ " + row.String())
		if row.Player != nil {
			switch {
			case row.Player.Injured:
				sb.WriteString(" (Inj)")
			case row.Player.Suspended:
				sb.WriteString(" (Susp)")
			}
			if row.FPPG != nil {
				sb.WriteString(fmt.Sprintf(" - %.2f fppg", *row.FPPG))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (s *FantasyService) GetTrades() (string, error) {
	trades, err := s.api.GetTrades()
	if err != nil {
		return "", fmt.Errorf("error fetching trades: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🤝 Trades\n")
	if len(trades) == 0 {
		sb.WriteString("\nNo pending trades.")
		return sb.String(), nil
	}
	for _, t := range trades {
		sb.WriteString(fmt.Sprintf("\nProposed by %s on %s\n", t.ProposedBy, t.Proposed))
		if t.Executed != "" {
			sb.WriteString(fmt.Sprintf("Executes %s\n", t.Executed))
		}
		sb.WriteString(t.String() + "\n")
	}
	return sb.String(), nil
}

func (s *FantasyService) GetTransactions() (string, error) {
	transactions, err := s.api.GetTransactions()
	if err != nil {
		return "", fmt.Errorf("error fetching transactions: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("📝 Transactions\n\n")
	for _, tx := range transactions {
		sb.WriteString(fmt.Sprintf("%s %s: %s", tx.Date.Format("Jan 02 3:04PM"), tx.Team, tx))
		if !tx.Finalized {
			sb.WriteString(" (incomplete)")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
