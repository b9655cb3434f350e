package auth

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically bulk-deletes expired sessions so the table does
// not grow without bound between lazy reaps on the validation path.
type Sweeper struct {
	sessions *SessionService
	logger   *slog.Logger
	interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweeper creates a sweeper. If interval is 0 or negative, defaults to
// 1 hour.
func NewSweeper(sessions *SessionService, logger *slog.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		sessions: sessions,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down.
func (s *Sweeper) Start() {
	go s.run()
	s.logger.Info("session sweeper started", "interval", s.interval)
}

// Stop shuts down the worker, blocking until any in-progress sweep has
// finished.
func (s *Sweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("session sweeper stopped")
}

func (s *Sweeper) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Sweep once on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	n, err := s.sessions.SweepExpired(context.Background())
	if err != nil {
		s.logger.Error("session sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions removed", "count", n)
	}
}
