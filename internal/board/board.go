// Package board holds the backlog and sprint collections and every
// operation that mutates them. Each mutation is written through to a
// BlobStore as a full overwrite of the affected collection. A collection
// whose write failed stays pending and is flushed by the next mutation.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"sprintboard/internal/models"
)

// Blob store keys.
const (
	KeyBacklogs = "backlogs"
	KeySprints  = "sprints"
)

// BlobStore is the key-value collaborator the board persists into.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Board is the in-memory entity store. It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	store    BlobStore
	logger   *slog.Logger
	backlogs []models.Backlog
	sprints  []models.Sprint
	seed     bool
	// pending holds collections changed in memory but not yet stored.
	pending map[string]bool
}

// Option configures a Board.
type Option func(*Board)

// WithoutSeed makes Load start from empty collections instead of the sample
// data when the store has nothing yet.
func WithoutSeed() Option {
	return func(b *Board) {
		b.seed = false
	}
}

// New returns an empty board bound to store. Call Load before use.
func New(store BlobStore, logger *slog.Logger, opts ...Option) *Board {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := &Board{
		store:    store,
		logger:   logger,
		backlogs: []models.Backlog{},
		sprints:  []models.Sprint{},
		seed:     true,
		pending:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open creates a board and loads its state from store.
func Open(ctx context.Context, store BlobStore, logger *slog.Logger, opts ...Option) (*Board, error) {
	b := New(store, logger, opts...)
	if err := b.Load(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// Load replaces the in-memory state with the stored collections.
// A key that has never been written falls back to the seed data unless the
// board was built WithoutSeed.
func (b *Board) Load(ctx context.Context) error {
	seedBacklogs, seedSprints := models.SeedBacklogs, models.SeedSprints
	if !b.seed {
		seedBacklogs = func() []models.Backlog { return []models.Backlog{} }
		seedSprints = func() []models.Sprint { return []models.Sprint{} }
	}

	backlogs, err := loadCollection(ctx, b.store, KeyBacklogs, seedBacklogs)
	if err != nil {
		return err
	}
	sprints, err := loadCollection(ctx, b.store, KeySprints, seedSprints)
	if err != nil {
		return err
	}

	for i := range backlogs {
		backlogs[i].NextItemID = nextItemID(backlogs[i].NextItemID, maxBacklogItemID(backlogs[i].Items))
	}
	for i := range sprints {
		sprints[i].NextItemID = nextItemID(sprints[i].NextItemID, maxSprintItemID(sprints[i].Items))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.backlogs = backlogs
	b.sprints = sprints
	clear(b.pending)
	b.logger.Debug("board loaded", "backlogs", len(backlogs), "sprints", len(sprints))
	return nil
}

// Save writes both collections to the store.
func (b *Board) Save(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[KeyBacklogs] = true
	b.pending[KeySprints] = true
	return b.flush(ctx)
}

func loadCollection[T any](ctx context.Context, store BlobStore, key string, seed func() []T) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Key: key, Err: err}
	}
	if !ok {
		return seed(), nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &PersistenceError{Op: "decode", Key: key, Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (b *Board) persistBacklogs(ctx context.Context) error {
	b.pending[KeyBacklogs] = true
	return b.flush(ctx)
}

func (b *Board) persistSprints(ctx context.Context) error {
	b.pending[KeySprints] = true
	return b.flush(ctx)
}

// flush writes every pending collection, including ones left over from an
// earlier failed write. Failed keys stay pending.
func (b *Board) flush(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyBacklogs, KeySprints} {
		if !b.pending[key] {
			continue
		}
		var collection any = b.backlogs
		if key == KeySprints {
			collection = b.sprints
		}
		if err := b.persist(ctx, key, collection); err != nil {
			errs = append(errs, err)
			continue
		}
		delete(b.pending, key)
	}
	return errors.Join(errs...)
}

func (b *Board) persist(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		b.logger.Error("encode collection", "key", key, "error", err)
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := b.store.Put(ctx, key, raw); err != nil {
		b.logger.Error("write collection", "key", key, "error", err)
		return &PersistenceError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// nextID returns max(existing)+1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int64) int64 {
	var highest int64
	for _, item := range items {
		if v := id(item); v > highest {
			highest = v
		}
	}
	return highest + 1
}

// nextItemID keeps an owner's item counter ahead of every id it has handed out.
func nextItemID(current, highest int64) int64 {
	if current <= highest {
		return highest + 1
	}
	return current
}

func maxBacklogItemID(items []models.BacklogItem) int64 {
	return nextID(items, func(i models.BacklogItem) int64 { return i.ID }) - 1
}

func maxSprintItemID(items []models.SprintItem) int64 {
	return nextID(items, func(i models.SprintItem) int64 { return i.ID }) - 1
}

func (b *Board) backlogIndex(id int64) (int, error) {
	for i := range b.backlogs {
		if b.backlogs[i].ID == id {
			return i, nil
		}
	}
	return -1, notFound(KindBacklog, id)
}

func (b *Board) sprintIndex(id int64) (int, error) {
	for i := range b.sprints {
		if b.sprints[i].ID == id {
			return i, nil
		}
	}
	return -1, notFound(KindSprint, id)
}

func normalizeAssignees(assignees []string) []string {
	out := make([]string, 0, len(assignees))
	seen := make(map[string]struct{}, len(assignees))
	for _, a := range assignees {
		if _, dup := seen[a]; dup || a == "" {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
