package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const dateLayout = "Mon Jan 02, 2006"

// FormatScore renders a float the way Fantrax consumers expect it: shortest
// form, but always with a decimal part ("100.0", "98.25").
func FormatScore(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (p Position) String() string {
	return p.ShortName
}

func (t *Team) String() string {
	if t == nil {
		return ""
	}
	return t.Name
}

func (p *Player) String() string {
	if p.Type != "" {
		return fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	return p.Name
}

func (d *DraftPick) String() string {
	return fmt.Sprintf("From: %s To: %s Pick: %d, Round %d (%s)", d.From, d.To, d.Year, d.Round, d.Owner)
}

func (t *TradePlayer) String() string {
	return fmt.Sprintf("From: %s To: %s TradePlayer: %s %s - %s %s %s",
		t.From, t.To, t.Name, t.Pos, t.TeamShortName, FormatScore(t.PPG), FormatScore(t.Points))
}

func (s MatchupSide) String() string {
	if s.Team != nil {
		return s.Team.Name
	}
	return s.Label
}

func (m *Matchup) String() string {
	return fmt.Sprintf("%s (%s) vs %s (%s)", m.Away, FormatScore(m.AwayScore), m.Home, FormatScore(m.HomeScore))
}

func (p *ScoringPeriod) String() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString(fmt.Sprintf("\n%d Days (%s - %s)", p.Days, p.Start.Format(dateLayout), p.End.Format(dateLayout)))
	sb.WriteString("\n" + string(p.Status()))
	for _, m := range p.Matchups {
		sb.WriteString("\n" + m.String())
	}
	return sb.String()
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rank %d: %s", r.Rank, r.Team))
	for _, field := range r.Fields {
		v, _ := r.Value(field)
		sb.WriteString(fmt.Sprintf("\n  %s: %s", field, v))
	}
	return strings.TrimSpace(sb.String())
}

func (s *Standings) String() string {
	var sb strings.Builder
	sb.WriteString("Standing: " + s.Caption)
	for _, r := range s.TeamRecords {
		sb.WriteString("\n" + r.String())
	}
	return sb.String()
}

func (c *StandingsCollection) String() string {
	var sb strings.Builder
	sb.WriteString("Standings")
	if c.Week != nil {
		sb.WriteString(fmt.Sprintf(" Week %d", *c.Week))
	}
	for _, section := range c.Standings {
		sb.WriteString("\n" + section.Standings.String())
	}
	return sb.String()
}

func (t *Trade) String() string {
	moves := make([]string, len(t.Moves))
	for i, m := range t.Moves {
		moves[i] = m.String()
	}
	return strings.Join(moves, "\n")
}

func (b *TradeBlock) String() string {
	return b.Note
}

func (t *Transaction) String() string {
	players := make([]string, len(t.Players))
	for i, p := range t.Players {
		players[i] = p.String()
	}
	return "[" + strings.Join(players, ", ") + "]"
}

func (r *Roster) String() string {
	rows := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = row.String()
	}
	return fmt.Sprintf("%s Roster\n%s", r.Team, strings.Join(rows, "\n"))
}

func (r *RosterRow) String() string {
	if r.Player == nil {
		return fmt.Sprintf("%s: Empty", r.Pos.ShortName)
	}
	if r.Opponent != "" {
		return fmt.Sprintf("%s: %s vs %s", r.Pos.ShortName, r.Player, r.Opponent)
	}
	return fmt.Sprintf("%s: %s", r.Pos.ShortName, r.Player)
}
