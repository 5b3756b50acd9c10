package cache

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
)

// DefaultCleanupInterval is how often expired entries are swept when no interval is given
const DefaultCleanupInterval = time.Hour

// Start runs the periodic sweep of expired entries until ctx is canceled or Stop is called.
// Calling Start on a running store is a no-op.
func (s *Store) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := s.CleanupExpired()
				lgr.Printf("[INFO] cache cleanup: removed %d expired items", removed)
			}
		}
	}()

	lgr.Printf("[INFO] cache cleanup started with interval %v", interval)
}

// Stop terminates the cleanup loop and waits for it to exit
func (s *Store) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	lgr.Printf("[INFO] cache cleanup stopped")
}
