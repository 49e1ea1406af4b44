package models

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// Content is the value of a table cell. Fantrax sends it as a string, a
// number or not at all, so the raw form is kept and Valid reports presence.
type Content struct {
	Value string
	Valid bool
}

func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Content{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Content{Value: s, Valid: true}
		return nil
	}
	*c = Content{Value: string(data), Valid: true}
	return nil
}

type Cell struct {
	Content Content `json:"content"`
	TeamID  *string `json:"teamId"`
}

type HeaderCell struct {
	Name *string `json:"name"`
}

type Header struct {
	Cells []HeaderCell `json:"cells"`
}

type Row struct {
	Cells       []Cell  `json:"cells"`
	FixedCells  []Cell  `json:"fixedCells"`
	FixedHeader *Header `json:"fixedHeader"`
}

type LeagueInfo struct {
	FantasyTeams []TeamPayload              `json:"fantasyTeams"`
	PositionMap  map[string]PositionPayload `json:"positionMap"`
}

type TeamPayload struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	ShortName string  `json:"shortName"`
	LogoURL   string  `json:"logoUrl256"`
}

type PositionPayload struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
}

type Icon struct {
	TypeID string `json:"typeId"`
}

type ScorerPayload struct {
	ScorerID      *string  `json:"scorerId"`
	Name          *string  `json:"name"`
	ShortName     *string  `json:"shortName"`
	TeamName      *string  `json:"teamName"`
	TeamShortName *string  `json:"teamShortName"`
	PosShortNames *string  `json:"posShortNames"`
	PosIDsNoFlex  []string `json:"posIdsNoFlex"`
	PosIDs        []string `json:"posIds"`
	Icons         []Icon   `json:"icons"`
}

type TeamRef struct {
	TeamID *string `json:"teamId"`
}

type OwnerRef struct {
	ID *string `json:"id"`
}

type DraftPickPayload struct {
	Round         *int      `json:"round"`
	Year          *int      `json:"year"`
	OrigOwnerTeam *OwnerRef `json:"origOwnerTeam"`
}

// MovePayload is one leg of a trade. DraftPick set means a pick changes
// hands, otherwise Scorer describes the player moving.
type MovePayload struct {
	From         *TeamRef          `json:"from"`
	To           *TeamRef          `json:"to"`
	DraftPick    *DraftPickPayload `json:"draftPick"`
	Scorer       *ScorerPayload    `json:"scorer"`
	ScorePerGame *float64          `json:"scorePerGame"`
	Score        *float64          `json:"score"`
}

type InfoItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type TradePayload struct {
	TxSetID       *string       `json:"txSetId"`
	CreatorTeamID *string       `json:"creatorTeamId"`
	UsefulInfo    []InfoItem    `json:"usefulInfo"`
	Moves         []MovePayload `json:"moves"`
}

type TradeBlockPayload struct {
	TeamID      *string `json:"teamId"`
	LastUpdated *struct {
		Date *int64 `json:"date"`
	} `json:"lastUpdated"`
	Comment *struct {
		Body string `json:"body"`
	} `json:"comment"`
	ScorersOffered *struct {
		Scorers map[string][]ScorerPayload `json:"scorers"`
	} `json:"scorersOffered"`
	ScorersWanted *struct {
		Scorers map[string][]ScorerPayload `json:"scorers"`
	} `json:"scorersWanted"`
	PositionsOffered *struct {
		Positions []string `json:"positions"`
	} `json:"positionsOffered"`
	PositionsWanted *struct {
		Positions []string `json:"positions"`
	} `json:"positionsWanted"`
	StatsOffered *struct {
		Stats []StatPayload `json:"stats"`
	} `json:"statsOffered"`
	StatsWanted *struct {
		Stats []StatPayload `json:"stats"`
	} `json:"statsWanted"`
}

type StatPayload struct {
	ShortName string `json:"shortName"`
}

type TransactionRow struct {
	TxSetID         *string        `json:"txSetId"`
	Cells           []Cell         `json:"cells"`
	NumInGroup      *int           `json:"numInGroup"`
	Scorer          *ScorerPayload `json:"scorer"`
	ClaimType       string         `json:"claimType"`
	TransactionCode string         `json:"transactionCode"`
}

type ScoringPeriodPayload struct {
	Caption    *string `json:"caption"`
	SubCaption *string `json:"subCaption"`
	Rows       []Row   `json:"rows"`
}

type StandingsSection struct {
	TableType string  `json:"tableType"`
	Caption   string  `json:"caption"`
	Header    *Header `json:"header"`
	Rows      []Row   `json:"rows"`
}

type StatusTotal struct {
	Total int `json:"total"`
	Max   int `json:"max"`
}

type RosterPayload struct {
	MiscData *struct {
		StatusTotals []StatusTotal `json:"statusTotals"`
	} `json:"miscData"`
	Tables []struct {
		Rows []RosterRowPayload `json:"rows"`
	} `json:"tables"`
}

type RosterRowPayload struct {
	StatusID string         `json:"statusId"`
	PosID    string         `json:"posId"`
	Scorer   *ScorerPayload `json:"scorer"`
	Cells    []Cell         `json:"cells"`
}
