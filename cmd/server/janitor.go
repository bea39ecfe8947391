package main

import (
	"context"
	"log/slog"
	"time"
)

// sessionSweeper is the part of the selection service the janitor drives.
type sessionSweeper interface {
	SweepSessions(now time.Time) int
}

// runJanitor removes idle selection sessions every interval until ctx is
// done. A non-positive interval disables sweeping.
func runJanitor(ctx context.Context, sweeper sessionSweeper, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		logger.Warn("session janitor disabled", slog.Duration("interval", interval))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sweeper.SweepSessions(now); n > 0 {
				logger.Debug("expired idle sessions", slog.Int("removed", n))
			}
		}
	}
}
