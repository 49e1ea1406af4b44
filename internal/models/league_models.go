package models

import (
	"time"
)

type Position struct {
	ID        string
	Name      string
	ShortName string
}

// Equal reports whether both positions carry the same id, name and short name.
func (p Position) Equal(other Position) bool {
	return p == other
}

var (
	InjuredPosition = Position{ID: "-1", Name: "Injured", ShortName: "IR"}
	ReservePosition = Position{ID: "0", Name: "Reserve", ShortName: "Res"}
)

type Team struct {
	ID    string
	Name  string
	Short string
	Logo  string
}

type Player struct {
	ID            string
	Name          string
	ShortName     string
	TeamName      string
	TeamShortName string
	PosShortName  string
	Positions     []*Position
	AllPositions  []*Position
	Injured       bool
	Suspended     bool
	Type          string
}

type DraftPick struct {
	From  *Team
	To    *Team
	Round int
	Year  int
	Owner *Team
}

type TradePlayer struct {
	From          *Team
	To            *Team
	Name          string
	ShortName     string
	TeamName      string
	TeamShortName string
	Pos           string
	PPG           float64
	Points        float64
}

// Move is one leg of a Trade: either a *DraftPick or a *TradePlayer.
type Move interface {
	move()
	String() string
}

func (*DraftPick) move()   {}
func (*TradePlayer) move() {}

// MatchupSide is a team when the cell resolved to one, otherwise the raw
// label the service put there (bye weeks, placeholder rows).
type MatchupSide struct {
	Team  *Team
	Label string
}

func (s MatchupSide) IsTeam() bool {
	return s.Team != nil
}

type Matchup struct {
	Key       int
	Away      MatchupSide
	AwayScore float64
	Home      MatchupSide
	HomeScore float64
}

type Outcome struct {
	Winner      MatchupSide
	WinnerScore float64
	Loser       MatchupSide
	LoserScore  float64
}

// Winner returns the higher scoring side. ok is false on an exact tie.
func (m *Matchup) Winner() (Outcome, bool) {
	switch {
	case m.AwayScore > m.HomeScore:
		return Outcome{Winner: m.Away, WinnerScore: m.AwayScore, Loser: m.Home, LoserScore: m.HomeScore}, true
	case m.AwayScore < m.HomeScore:
		return Outcome{Winner: m.Home, WinnerScore: m.HomeScore, Loser: m.Away, LoserScore: m.AwayScore}, true
	default:
		return Outcome{}, false
	}
}

func (m *Matchup) Difference() float64 {
	if m.AwayScore > m.HomeScore {
		return m.AwayScore - m.HomeScore
	}
	if m.AwayScore < m.HomeScore {
		return m.HomeScore - m.AwayScore
	}
	return 0
}

type PeriodStatus string

const (
	PeriodFuture   PeriodStatus = "Future"
	PeriodCurrent  PeriodStatus = "Current"
	PeriodComplete PeriodStatus = "Complete"
)

type ScoringPeriod struct {
	Name     string
	Week     *int
	Start    time.Time
	End      time.Time
	Next     time.Time
	Days     int
	Complete bool
	Current  bool
	Future   bool
	Matchups []*Matchup
}

// StatusAt places now within [Start, Next).
func (p *ScoringPeriod) StatusAt(now time.Time) PeriodStatus {
	switch {
	case now.Before(p.Start):
		return PeriodFuture
	case now.Before(p.Next):
		return PeriodCurrent
	default:
		return PeriodComplete
	}
}

// Status is the status fixed when the period was built.
func (p *ScoringPeriod) Status() PeriodStatus {
	switch {
	case p.Complete:
		return PeriodComplete
	case p.Current:
		return PeriodCurrent
	default:
		return PeriodFuture
	}
}

func (p *ScoringPeriod) SetStatus(status PeriodStatus) {
	p.Complete = status == PeriodComplete
	p.Current = status == PeriodCurrent
	p.Future = status == PeriodFuture
}

type Record struct {
	Team   *Team
	Rank   int
	Fields []string
	Data   map[string]string
}

// Value returns the cell under header name. ok is false when the header is
// unknown or the cell had no content.
func (r *Record) Value(name string) (string, bool) {
	v, ok := r.Data[name]
	return v, ok
}

type Standings struct {
	TableType   string
	Caption     string
	TeamRecords []*Record
}

// CaptionedStandings is one standings table of a collection with the
// caption Fantrax shows above it.
type CaptionedStandings struct {
	Caption   string
	Standings *Standings
}

type StandingsCollection struct {
	Week      *int
	Standings []CaptionedStandings
}

type Trade struct {
	ID         string
	ProposedBy *Team
	Proposed   string
	Accepted   string
	Executed   string
	Moves      []Move
}

type TradeBlock struct {
	Team             *Team
	UpdateDate       time.Time
	Note             string
	PlayersOffered   map[string][]*Player
	PlayersWanted    map[string][]*Player
	PositionsOffered []*Position
	PositionsWanted  []*Position
	StatsOffered     []string
	StatsWanted      []string
}

type Transaction struct {
	ID        string
	Team      *Team
	Date      time.Time
	Count     int
	Players   []*Player
	Finalized bool
}

// Append adds the next member of a grouped transaction. It reports false and
// leaves the transaction untouched when groupID belongs to another group or
// every expected member is already present.
func (t *Transaction) Append(groupID string, p *Player) bool {
	if groupID != t.ID || t.Finalized {
		return false
	}
	t.Players = append(t.Players, p)
	if len(t.Players) >= t.Count {
		t.Finalized = true
	}
	return true
}

type Roster struct {
	Team    *Team
	Active  int
	Reserve int
	Max     int
	Injured int
	Rows    []*RosterRow
}

type RosterRow struct {
	PosID    string
	Pos      *Position
	Player   *Player
	FPPG     *float64
	Opponent string
	Time     *time.Time
}
