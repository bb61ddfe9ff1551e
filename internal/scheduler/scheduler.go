// Package scheduler takes snapshots of the stored model on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/logging"
	"github.com/rgehrsitz/countdown/internal/storage"
	"github.com/robfig/cron/v3"
)

// AutoSnapshotter appends a snapshot of the stored model on every cron tick
type AutoSnapshotter struct {
	repo    *storage.Repository
	engine  *compare.CompareEngine
	cron    *cron.Cron
	logger  logging.Logger
	entryID cron.EntryID

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
	taken   int
}

// NewAutoSnapshotter creates a snapshotter; call Schedule before Start
func NewAutoSnapshotter(repo *storage.Repository, engine *compare.CompareEngine) *AutoSnapshotter {
	ctx, cancel := context.WithCancel(context.Background())
	return &AutoSnapshotter{
		repo:   repo,
		engine: engine,
		cron:   cron.New(),
		logger: logging.NopLogger{},
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetLogger sets the logger used for tick reports
func (s *AutoSnapshotter) SetLogger(l logging.Logger) {
	s.logger = logging.OrNop(l)
}

// Schedule registers the snapshot job under a standard five-field cron spec
func (s *AutoSnapshotter) Schedule(spec string) error {
	if spec == "" {
		return fmt.Errorf("empty cron spec")
	}
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}
	id, err := s.cron.AddFunc(spec, func() { _, _ = s.Tick(s.ctx) })
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	s.entryID = id
	s.logger.Infof("auto-snapshot scheduled: %s", spec)
	return nil
}

// Start runs the cron scheduler in its own goroutine
func (s *AutoSnapshotter) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running tick to finish
func (s *AutoSnapshotter) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.cancel()
	<-s.cron.Stop().Done()
}

// Tick takes one snapshot of the stored model and appends it to the history
func (s *AutoSnapshotter) Tick(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	model := s.repo.LoadAssumptions(ctx)
	snap := s.engine.Snapshot(model)
	history, err := s.repo.AppendSnapshot(ctx, snap)
	if err != nil {
		s.logger.Warnf("auto-snapshot not persisted: %v", err)
		return snap, fmt.Errorf("append snapshot: %w", err)
	}

	s.mu.Lock()
	s.taken++
	s.mu.Unlock()
	s.logger.Infof("auto-snapshot %s: %d Sundays, %d coffees (%d stored)", snap.Date, snap.Sundays, snap.Coffees, len(history))
	return snap, nil
}

// Taken returns how many snapshots have been stored since creation
func (s *AutoSnapshotter) Taken() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taken
}

// Next returns the next scheduled run. It is the zero time until Start.
func (s *AutoSnapshotter) Next() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}
