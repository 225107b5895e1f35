package jobs

import (
	"context"

	"github.com/wonny/growthmap/pkg/logger"
)

// Sweeper evicts idle sessions and reports how many were removed
type Sweeper interface {
	Sweep() int
	Len() int
}

// SessionSweepJob evicts idle session datasets
type SessionSweepJob struct {
	sessions Sweeper
	schedule string
	logger   *logger.Logger
}

// NewSessionSweepJob creates a new session sweep job
func NewSessionSweepJob(sessions Sweeper, schedule string, log *logger.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *SessionSweepJob) Name() string {
	return "session_sweep"
}

// Schedule returns the cron schedule
func (j *SessionSweepJob) Schedule() string {
	return j.schedule
}

// Run executes the sweep
func (j *SessionSweepJob) Run(ctx context.Context) error {
	removed := j.sessions.Sweep()

	if removed > 0 {
		j.logger.WithFields(map[string]interface{}{
			"removed":   removed,
			"remaining": j.sessions.Len(),
		}).Info("Session sweep completed")
	}

	return nil
}
