package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

// StateSource is the subset of duplex.Emitter the Snapshotter needs.
// It is satisfied by *duplex.Emitter[S, E] for any effect type E.
type StateSource[S any] interface {
	State() S
	SubscribeStates(fn func(S), opts ...duplex.SubscribeOption[S]) *duplex.Subscription[S]
}

// SnapshotOption configures a Snapshotter.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	logger      *slog.Logger
	saveTimeout time.Duration
}

// WithLogger sets the logger for save failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SnapshotOption {
	return func(c *snapshotConfig) {
		c.logger = logger
	}
}

// WithSaveTimeout bounds each snapshot write. Default 5s.
func WithSaveTimeout(d time.Duration) SnapshotOption {
	return func(c *snapshotConfig) {
		c.saveTimeout = d
	}
}

// Snapshotter persists every state change of an emitter. Save failures are
// logged and never propagate into the emitter's dispatch.
type Snapshotter[S any] struct {
	store  Store
	key    string
	logger *slog.Logger
	sub    *duplex.Subscription[S]

	saveTimeout time.Duration
}

// Attach subscribes to src's state channel and saves a JSON snapshot of each
// new state under key. The current state is saved immediately so the store is
// never behind the emitter.
func Attach[S any](src StateSource[S], store Store, key string, opts ...SnapshotOption) *Snapshotter[S] {
	config := snapshotConfig{
		logger:      slog.Default(),
		saveTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&config)
	}

	snap := &Snapshotter[S]{
		store:       store,
		key:         key,
		logger:      config.logger,
		saveTimeout: config.saveTimeout,
	}

	snap.save(src.State())
	snap.sub = src.SubscribeStates(snap.save)
	return snap
}

// Close stops persisting. The last saved snapshot remains in the store.
func (s *Snapshotter[S]) Close() {
	s.sub.Cancel()
}

// Cancel implements scope.Canceler.
func (s *Snapshotter[S]) Cancel() {
	s.Close()
}

func (s *Snapshotter[S]) save(state S) {
	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Error("snapshot encode failed", "key", s.key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.store.Save(ctx, s.key, data); err != nil {
		s.logger.Error("snapshot save failed", "key", s.key, "error", err)
	}
}

// Restore loads the last snapshot for key. The boolean is false when no
// snapshot exists; err is reserved for store or decode failures.
func Restore[S any](ctx context.Context, store Store, key string) (S, bool, error) {
	var state S

	data, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return state, false, nil
		}
		return state, false, err
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return state, false, fmt.Errorf("snapshot decode failed: %w", err)
	}
	return state, true, nil
}
