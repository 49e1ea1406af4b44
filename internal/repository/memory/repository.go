package memory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/fantrax/internal/models"
)

const teamNameThreshold = 0.6

// NotFoundError is returned when an id has no entry in the registry.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// Repository holds the canonical Team and Position values for a league.
// It is filled once per session and shared by reference afterwards.
type Repository struct {
	teams     map[string]*models.Team
	positions map[string]*models.Position
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{
		teams:     make(map[string]*models.Team),
		positions: make(map[string]*models.Position),
	}
}

func (r *Repository) SaveTeams(teams []*models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range teams {
		r.teams[t.ID] = t
	}
}

func (r *Repository) SavePositions(positions []*models.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range positions {
		r.positions[p.ID] = p
	}
}

func (r *Repository) Team(id string) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, &NotFoundError{Kind: "team", ID: id}
	}
	return t, nil
}

func (r *Repository) Position(id string) (*models.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, &NotFoundError{Kind: "position", ID: id}
	}
	return p, nil
}

// Teams returns every registered team ordered by name.
func (r *Repository) Teams() []*models.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]*models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})
	return teams
}

// FindTeam returns the registered team whose name or short name is closest
// to name.
func (r *Repository) FindTeam(name string) (*models.Team, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, &NotFoundError{Kind: "team", ID: name}
	}

	var bestMatch *models.Team
	bestScore := -1.0

	for _, team := range r.Teams() {
		for _, candidate := range []string{team.Name, team.Short} {
			if candidate == "" {
				continue
			}
			candidate = strings.ToLower(candidate)
			distance := fuzzy.LevenshteinDistance(query, candidate)
			maxLen := float64(max(len(query), len(candidate)))
			similarity := 1 - float64(distance)/maxLen

			if similarity > teamNameThreshold && similarity > bestScore {
				bestScore = similarity
				bestMatch = team
			}
		}
	}

	if bestMatch == nil {
		return nil, &NotFoundError{Kind: "team", ID: name}
	}
	return bestMatch, nil
}
