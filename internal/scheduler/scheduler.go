package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Reporter renders the report the scheduler publishes on every tick.
type Reporter interface {
	GetScoreboard() (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	reporter    Reporter
	interval    time.Duration
	sendMessage func(string) error
}

func NewScheduler(reporter Reporter, interval time.Duration, location *time.Location, sendMessage func(string) error) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid watch interval: %s", interval)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reporter:    reporter,
		interval:    interval,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	// Scoreboard - every interval, first run immediately
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sendScoreboard),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create scoreboard job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendScoreboard() {
	scores, err := s.reporter.GetScoreboard()
	if err != nil {
		slog.Error("Failed to get scoreboard", "error", err)
		return
	}
	if err := s.sendMessage(scores); err != nil {
		slog.Error("Failed to send scoreboard", "error", err)
	}
}
