package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/adverx/adverx-backend/internal/kv"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("resource not found")

type record interface {
	recordID() string
}

// collection manages one ordered persisted resource. The stored value is the
// whole JSON-encoded slice; every mutation rewrites it in full. A mutex
// serializes the read-modify-write cycle within this process; writers in
// other processes sharing the same store are not coordinated.
type collection[T record] struct {
	mu         sync.Mutex
	store      kv.Store
	storageKey string
	seed       []T
	prepend    bool
	now        func() time.Time
}

func newCollection[T record](store kv.Store, storageKey string, seed []T, prepend bool) *collection[T] {
	return &collection[T]{
		store:      store,
		storageKey: storageKey,
		seed:       seed,
		prepend:    prepend,
		now:        time.Now,
	}
}

// load returns the stored collection. An absent or malformed value falls back
// to the seed, which is persisted immediately. Load never surfaces a decode
// error to callers.
func (c *collection[T]) load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

func (c *collection[T]) loadLocked(ctx context.Context) []T {
	data, err := c.store.Get(ctx, c.storageKey)
	if err == nil {
		var items []T
		if decodeErr := json.Unmarshal(data, &items); decodeErr == nil {
			return items
		}
		log.Printf("[Store] Discarding malformed value for %q, reseeding", c.storageKey)
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		log.Printf("[Store] Failed to read %q: %v, falling back to seed", c.storageKey, err)
	}

	items := make([]T, len(c.seed))
	copy(items, c.seed)
	if err := c.persist(ctx, items); err != nil {
		log.Printf("[Store] Failed to persist seed for %q: %v", c.storageKey, err)
	}
	return items
}

func (c *collection[T]) persist(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.storageKey, data)
}

// nextID synthesizes a time-based identifier, bumped past any collision with
// an existing record.
func (c *collection[T]) nextID(items []T) string {
	id := c.now().UnixMilli()
	for hasID(items, strconv.FormatInt(id, 10)) {
		id++
	}
	return strconv.FormatInt(id, 10)
}

// add inserts the record produced by build, persists the whole collection and
// returns the new identifier. Messages and requests prepend so the most
// recent appears first; projects append.
func (c *collection[T]) add(ctx context.Context, build func(id string) T) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked(ctx)
	id := c.nextID(items)
	item := build(id)

	if c.prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	if err := c.persist(ctx, items); err != nil {
		return "", err
	}
	return id, nil
}

// update applies mutate to the record with the given id. A missing id
// persists the collection unchanged: silent success, not an error.
func (c *collection[T]) update(ctx context.Context, id string, mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked(ctx)
	for i := range items {
		if items[i].recordID() == id {
			mutate(&items[i])
			break
		}
	}
	return c.persist(ctx, items)
}

// updateEach applies mutate to every record, persisting once. mutate reports
// whether it changed the record; if nothing changed the write is skipped.
func (c *collection[T]) updateEach(ctx context.Context, mutate func(*T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked(ctx)
	changed := false
	for i := range items {
		if mutate(&items[i]) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return c.persist(ctx, items)
}

// remove filters out the record with the given id. Removing a missing id is
// a no-op; calling remove twice with the same id is idempotent.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.recordID() != id {
			kept = append(kept, item)
		}
	}
	return c.persist(ctx, kept)
}

// find returns the record with the given id.
func (c *collection[T]) find(ctx context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked(ctx)
	for i := range items {
		if items[i].recordID() == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func hasID[T record](items []T, id string) bool {
	for _, item := range items {
		if item.recordID() == id {
			return true
		}
	}
	return false
}
