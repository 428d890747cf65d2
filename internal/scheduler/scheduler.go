// Package scheduler runs the engine's periodic maintenance, currently just
// pruning expired rows from the results cache.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/narendercheckout-spec/Yelvantix/internal/store"
)

type Scheduler struct {
	cron *cron.Cron
	db   *sql.DB
	spec string
}

// New creates a Scheduler that prunes the cache every interval.
func New(db *sql.DB, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Scheduler{
		cron: cron.New(),
		db:   db,
		spec: fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the prune job and starts the cron loop. Also runs one
// prune immediately so a restart clears stale rows without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.prune(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] cache prune started, spec: %s", s.spec)

	go s.prune(ctx)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] stopped")
}

func (s *Scheduler) prune(ctx context.Context) {
	n, err := store.PruneExpired(ctx, s.db)
	if err != nil {
		log.Printf("[scheduler] cache prune error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[scheduler] pruned %d expired cache rows", n)
	}
}
