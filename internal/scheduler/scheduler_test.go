package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	report string
	err    error
}

func (r stubReporter) GetScoreboard() (string, error) {
	return r.report, r.err
}

func TestSchedulerSendsImmediately(t *testing.T) {
	sent := make(chan string, 1)
	s, err := NewScheduler(stubReporter{report: "scores"}, time.Hour, time.UTC, func(msg string) error {
		select {
		case sent <- msg:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { assert.NoError(t, s.Stop()) })

	select {
	case msg := <-sent:
		assert.Equal(t, "scores", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("scoreboard was not sent")
	}
}

func TestSchedulerSkipsFailedReports(t *testing.T) {
	sent := make(chan string, 1)
	s, err := NewScheduler(stubReporter{err: errors.New("boom")}, time.Hour, time.UTC, func(msg string) error {
		sent <- msg
		return nil
	})
	require.NoError(t, err)

	s.sendScoreboard()

	assert.Empty(t, sent)
}

func TestNewSchedulerRejectsZeroInterval(t *testing.T) {
	_, err := NewScheduler(stubReporter{}, 0, time.UTC, func(string) error { return nil })
	assert.Error(t, err)
}
