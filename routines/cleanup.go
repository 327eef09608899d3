package routines

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ynot-advisory/landing/operations"
)

// StartCleanupRoutine purges expired submissions once immediately and then on
// every tick, until ctx is cancelled.
func StartCleanupRoutine(ctx context.Context, store *operations.SubmissionStore, interval time.Duration, logger *zap.Logger) {
	cleanupRoutine(store, time.Now(), logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			cleanupRoutine(store, now, logger)
		}
	}
}

func cleanupRoutine(store *operations.SubmissionStore, now time.Time, logger *zap.Logger) int {
	deleted, err := store.DeleteExpired(now)
	if err != nil {
		logger.Error("cleanup of expired submissions failed", zap.Error(err))
		return 0
	}
	for _, sub := range deleted {
		logger.Info("deleted expired submission", zap.String("id", sub.ID), zap.String("email", sub.Email))
	}
	return len(deleted)
}
