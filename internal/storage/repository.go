package storage

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/countdown/internal/config"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/logging"
)

// Keys of the persisted blobs
const (
	AssumptionsKey = "existential-assumptions-v1"
	SnapshotsKey   = "existential-snapshots-v1"
	SettingsKey    = "existential-settings-v1"
)

// Repository reads and writes the countdown state on top of a Store.
//
// Loads never fail: a missing, unreadable or corrupt blob yields the default
// value and a warning. Saves return their error so a caller can report it,
// but the in-memory model stays authoritative and callers are free to drop it.
type Repository struct {
	store         Store
	defaults      domain.Assumptions
	snapshotLimit int
	logger        logging.Logger
}

// NewRepository creates a repository with built-in defaults and the default snapshot limit
func NewRepository(store Store) *Repository {
	return &Repository{
		store:         store,
		defaults:      domain.DefaultAssumptions(),
		snapshotLimit: config.DefaultSnapshotLimit,
		logger:        logging.NopLogger{},
	}
}

// NewRepositoryFromConfig applies the snapshot limit and default model of cfg
func NewRepositoryFromConfig(store Store, cfg *config.Configuration) *Repository {
	r := NewRepository(store)
	r.SetSnapshotLimit(cfg.Snapshots.Limit)
	r.SetDefaults(cfg.Defaults)
	return r
}

// SetLogger sets the logger; nil restores the no-op logger
func (r *Repository) SetLogger(l logging.Logger) {
	r.logger = logging.OrNop(l)
}

// SetSnapshotLimit bounds the stored history; 0 or less keeps everything
func (r *Repository) SetSnapshotLimit(limit int) {
	r.snapshotLimit = limit
}

// SetDefaults replaces the model used when nothing is stored
func (r *Repository) SetDefaults(a domain.Assumptions) {
	r.defaults = a.Normalize()
}

// Defaults returns the model used when nothing is stored
func (r *Repository) Defaults() domain.Assumptions {
	return r.defaults
}

// Store returns the underlying store
func (r *Repository) Store() Store {
	return r.store
}

func (r *Repository) load(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warnf("failed to read %s, using defaults: %v", key, err)
		return nil, false
	}
	return raw, ok
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.Errorf("failed to encode %s: %v", key, err)
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		r.logger.Warnf("failed to persist %s: %v", key, err)
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (r *Repository) remove(ctx context.Context, key string) error {
	if err := r.store.Remove(ctx, key); err != nil {
		r.logger.Warnf("failed to remove %s: %v", key, err)
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// LoadAssumptions returns the stored model merged over the defaults
func (r *Repository) LoadAssumptions(ctx context.Context) domain.Assumptions {
	raw, ok := r.load(ctx, AssumptionsKey)
	if !ok {
		return r.defaults
	}
	a, err := domain.MergeOverDefaults(r.defaults, raw)
	if err != nil {
		r.logger.Warnf("stored assumptions are corrupt, using defaults: %v", err)
		return r.defaults
	}
	return a
}

// SaveAssumptions persists a normalized copy of a
func (r *Repository) SaveAssumptions(ctx context.Context, a domain.Assumptions) error {
	return r.save(ctx, AssumptionsKey, a.Normalize())
}

// ClearAssumptions forgets the stored model; snapshots and settings stay
func (r *Repository) ClearAssumptions(ctx context.Context) error {
	return r.remove(ctx, AssumptionsKey)
}

// LoadSnapshots returns the stored snapshots, most recent first
func (r *Repository) LoadSnapshots(ctx context.Context) []domain.Snapshot {
	raw, ok := r.load(ctx, SnapshotsKey)
	if !ok {
		return []domain.Snapshot{}
	}
	var snapshots []domain.Snapshot
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		r.logger.Warnf("stored snapshots are corrupt, starting empty: %v", err)
		return []domain.Snapshot{}
	}
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}
	return snapshots
}

// SaveSnapshots replaces the stored history
func (r *Repository) SaveSnapshots(ctx context.Context, snapshots []domain.Snapshot) error {
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}
	return r.save(ctx, SnapshotsKey, snapshots)
}

// AppendSnapshot prepends s to the stored history, trims it to the limit and
// returns the new history. The history is returned even when the write fails.
func (r *Repository) AppendSnapshot(ctx context.Context, s domain.Snapshot) ([]domain.Snapshot, error) {
	existing := r.LoadSnapshots(ctx)
	updated := make([]domain.Snapshot, 0, len(existing)+1)
	updated = append(updated, s)
	updated = append(updated, existing...)
	if r.snapshotLimit > 0 && len(updated) > r.snapshotLimit {
		updated = updated[:r.snapshotLimit]
	}
	return updated, r.SaveSnapshots(ctx, updated)
}

// ClearSnapshots forgets the snapshot history
func (r *Repository) ClearSnapshots(ctx context.Context) error {
	return r.remove(ctx, SnapshotsKey)
}

// LoadSettings returns the stored UI settings merged over the defaults
func (r *Repository) LoadSettings(ctx context.Context) domain.Settings {
	settings := domain.DefaultSettings()
	raw, ok := r.load(ctx, SettingsKey)
	if !ok {
		return settings
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.logger.Warnf("stored settings are corrupt, using defaults: %v", err)
		return domain.DefaultSettings()
	}
	if settings.ThemeMode != domain.ThemeDark && settings.ThemeMode != domain.ThemeLight {
		settings.ThemeMode = domain.DefaultSettings().ThemeMode
	}
	return settings
}

// SaveSettings persists the UI settings
func (r *Repository) SaveSettings(ctx context.Context, s domain.Settings) error {
	return r.save(ctx, SettingsKey, s)
}

// ResetAll forgets the model, the snapshots and the settings. Every key is
// attempted; the first error is returned.
func (r *Repository) ResetAll(ctx context.Context) error {
	var first error
	for _, key := range []string{AssumptionsKey, SnapshotsKey, SettingsKey} {
		if err := r.remove(ctx, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}
