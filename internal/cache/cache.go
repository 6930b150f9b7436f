// Package cache provides a bounded LRU cache with per-entry expiry, used by
// the payments worker to drop redelivered events.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner is implemented by caches that hold expiring entries.
type Cleaner interface {
	// CleanExpired drops expired entries and reports how many were removed.
	CleanExpired() int
}

// RunJanitor cleans every cache once per interval until ctx is done.
// It always returns nil so it can run inside an errgroup.
func RunJanitor(ctx context.Context, interval time.Duration, caches ...Cleaner) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := 0
			for _, c := range caches {
				removed += c.CleanExpired()
			}
			if removed > 0 {
				slog.DebugContext(ctx, "Expired cache entries removed", "component", "cache", "count", removed)
			}
		}
	}
}
