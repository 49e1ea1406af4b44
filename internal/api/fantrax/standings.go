package fantrax

import (
	"strconv"
	"strings"

	"github.com/omarshaarawi/fantrax/internal/models"
)

const sectionHeading = "SECTION_HEADING"

// Fixed cells pinned to the left of every standings row.
const (
	fixedRankCell = 0
	fixedTeamCell = 1
)

func (m *Mapper) Record(teamID, rank string, fields []string, data map[string]string) (*models.Record, error) {
	team, err := m.team("record", "teamId", data, &teamID)
	if err != nil {
		return nil, err
	}
	r, err := strconv.Atoi(strings.TrimSpace(rank))
	if err != nil {
		return nil, malformed("record", "rank", rank, err)
	}
	return &models.Record{Team: team, Rank: r, Fields: fields, Data: data}, nil
}

// Standings maps one standings table. Rows with fewer than two fixed cells,
// or without a team id and rank among them, are layout rows and are dropped.
func (m *Mapper) Standings(section models.StandingsSection) (*models.Standings, error) {
	names, err := headerNames("standings", section.Header)
	if err != nil {
		return nil, err
	}

	standings := &models.Standings{
		TableType:   section.TableType,
		Caption:     section.Caption,
		TeamRecords: make([]*models.Record, 0, len(section.Rows)),
	}

	for _, row := range section.Rows {
		if len(row.FixedCells) < 2 {
			continue
		}

		data := make(map[string]string, len(names))
		fields := zipCells(names, row.Cells, make([]string, 0, len(names)), data)

		if row.FixedHeader != nil {
			fixedNames, err := headerNames("standings", row.FixedHeader)
			if err != nil {
				return nil, err
			}
			fields = zipCells(fixedNames, row.FixedCells, fields, data)
		}

		teamID := row.FixedCells[fixedTeamCell].TeamID
		rank := row.FixedCells[fixedRankCell].Content
		if teamID == nil || !rank.Valid {
			continue
		}

		record, err := m.Record(*teamID, rank.Value, fields, data)
		if err != nil {
			return nil, err
		}
		standings.TeamRecords = append(standings.TeamRecords, record)
	}

	return standings, nil
}

// StandingsCollection maps every section of a standings page, leaving out
// pure heading sections. week is nil for season standings.
func (m *Mapper) StandingsCollection(sections []models.StandingsSection, week *int) (*models.StandingsCollection, error) {
	collection := &models.StandingsCollection{Week: week}
	for _, section := range sections {
		if section.TableType == sectionHeading {
			continue
		}
		standings, err := m.Standings(section)
		if err != nil {
			return nil, err
		}
		collection.Standings = append(collection.Standings, models.CaptionedStandings{
			Caption:   section.Caption,
			Standings: standings,
		})
	}
	return collection, nil
}
