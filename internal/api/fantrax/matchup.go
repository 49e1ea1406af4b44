package fantrax

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/omarshaarawi/fantrax/internal/models"
	"github.com/omarshaarawi/fantrax/internal/repository/memory"
)

const periodDateLayout = "Mon Jan 2, 2006"

var weekPrefixes = []string{"Scoring Period ", "Playoffs - Round "}

// Matchup maps the four positional cells of a scoreboard row:
// away team, away score, home team, home score.
func (m *Mapper) Matchup(key int, cells []models.Cell) (*models.Matchup, error) {
	matchup := &models.Matchup{Key: key}
	var err error

	if matchup.Away, err = m.matchupSide(cells, 0); err != nil {
		return nil, err
	}
	if matchup.AwayScore, err = matchupScore(cells, 1); err != nil {
		return nil, err
	}
	if matchup.Home, err = m.matchupSide(cells, 2); err != nil {
		return nil, err
	}
	if matchup.HomeScore, err = matchupScore(cells, 3); err != nil {
		return nil, err
	}
	return matchup, nil
}

func (m *Mapper) matchupSide(cells []models.Cell, i int) (models.MatchupSide, error) {
	cell, err := cellAt("matchup", cells, i)
	if err != nil {
		return models.MatchupSide{}, err
	}
	if cell.TeamID != nil {
		team, err := m.resolver.Team(*cell.TeamID)
		if err == nil {
			return models.MatchupSide{Team: team}, nil
		}
		if _, ok := memory.AsNotFoundError(err); !ok {
			return models.MatchupSide{}, fmt.Errorf("resolving matchup cells[%d]: %w", i, err)
		}
	}
	return models.MatchupSide{Label: cell.Content.Value}, nil
}

func matchupScore(cells []models.Cell, i int) (float64, error) {
	cell, err := cellAt("matchup", cells, i)
	if err != nil {
		return 0, err
	}
	score, err := parseScore(cell.Content.Value)
	if err != nil {
		return 0, malformed("matchup", fmt.Sprintf("cells[%d].content", i), cells, err)
	}
	return score, nil
}

// parseScore reads numbers the way Fantrax prints them, with thousands
// separators ("1,024.5").
func parseScore(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// ScoringPeriod maps one scoring period of the league schedule. Status flags
// are fixed against the mapper's clock. Rows that fail to map are logged and
// skipped; keys stay sequential over the matchups that were kept.
func (m *Mapper) ScoringPeriod(data models.ScoringPeriodPayload) (*models.ScoringPeriod, error) {
	const entity = "scoring period"

	name, err := required(entity, "caption", data, data.Caption)
	if err != nil {
		return nil, err
	}
	subCaption, err := required(entity, "subCaption", data, data.SubCaption)
	if err != nil {
		return nil, err
	}

	period := &models.ScoringPeriod{Name: name}

	for _, prefix := range weekPrefixes {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			week, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, malformed(entity, "caption", data, err)
			}
			period.Week = &week
		}
	}

	if period.Start, period.End, err = m.parseDateRange(subCaption); err != nil {
		return nil, malformed(entity, "subCaption", data, err)
	}
	period.Next = period.End.AddDate(0, 0, 1)
	period.Days = int(period.Next.Sub(period.Start).Round(24*time.Hour) / (24 * time.Hour))
	period.SetStatus(period.StatusAt(m.clock.Now()))

	m.AddMatchups(period, data)
	return period, nil
}

// AddMatchups appends the rows of a continuation page to period, numbering
// them after the matchups already present.
func (m *Mapper) AddMatchups(period *models.ScoringPeriod, data models.ScoringPeriodPayload) {
	for i, row := range data.Rows {
		matchup, err := m.Matchup(len(period.Matchups)+1, row.Cells)
		if err != nil {
			m.logger.Warn("Skipping matchup row", "period", period.Name, "row", i, "cells", row.Cells, "error", err)
			continue
		}
		period.Matchups = append(period.Matchups, matchup)
	}
}

// parseDateRange reads "(Mon Jan 01, 2024 - Sun Jan 07, 2024)".
func (m *Mapper) parseDateRange(s string) (time.Time, time.Time, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")")
	startStr, endStr, ok := strings.Cut(s, " - ")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("no date range in %q", s)
	}
	start, err := time.ParseInLocation(periodDateLayout, strings.TrimSpace(startStr), m.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(periodDateLayout, strings.TrimSpace(endStr), m.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
