package store

import (
	"sync"
	"time"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/storage"
	"schoolledger/internal/uuid"
)

// Entity is implemented by every record type through models.Base.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
	CreatedTime() time.Time
}

// Collection holds the current snapshot of one entity collection and
// mirrors every mutation to the persistence backend. Mutations persist
// the whole collection synchronously; when the write fails the
// in-memory snapshot is rolled back and a PERSISTENCE_ERROR surfaces
// to the caller, so memory and backend never diverge.
//
// The collection is safe for concurrent use: the HTTP layer serves
// requests from multiple goroutines even though each operation is a
// single synchronous step.
type Collection[T any] struct {
	key      string
	backend  storage.Store
	notFound *apperrors.AppError

	mu      sync.RWMutex
	records []T
}

func newCollection[T any](key string, backend storage.Store, notFound *apperrors.AppError) *Collection[T] {
	return &Collection[T]{key: key, backend: backend, notFound: notFound}
}

// hydrate loads the persisted collection snapshot. A never-written key
// leaves the collection empty.
func (c *Collection[T]) hydrate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.backend.Get(c.key, &c.records); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

// Add assigns a fresh identifier when the record has none, stamps the
// creation time, appends the record, and persists the collection.
func (c *Collection[T]) Add(rec *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := asEntity(rec)
	if e.EntityID() == "" {
		e.SetEntityID(uuid.New())
	}
	e.StampCreated(time.Now())

	c.records = append(c.records, *rec)
	if err := c.persistLocked(); err != nil {
		c.records = c.records[:len(c.records)-1]
		return err
	}
	return nil
}

// Update replaces the record whose id matches (full-record replace).
// The original creation timestamp is preserved. Updating a missing id
// returns the collection's not-found error rather than silently doing
// nothing.
func (c *Collection[T]) Update(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := asEntity(&rec)
	idx := c.indexLocked(e.EntityID())
	if idx < 0 {
		return c.notFound
	}

	prev := c.records[idx]
	e.StampCreated(asEntity(&prev).CreatedTime())
	e.StampUpdated(time.Now())

	c.records[idx] = rec
	if err := c.persistLocked(); err != nil {
		c.records[idx] = prev
		return err
	}
	return nil
}

// Delete removes all records with the given id (normally exactly one).
// Deleting a missing id returns the collection's not-found error.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		if asEntity(&rec).EntityID() != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(c.records) {
		return c.notFound
	}

	prev := c.records
	c.records = kept
	if err := c.persistLocked(); err != nil {
		c.records = prev
		return err
	}
	return nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.indexLocked(id); idx >= 0 {
		return c.records[idx], nil
	}
	var zero T
	return zero, c.notFound
}

// All returns a copy of the current collection snapshot in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T]) indexLocked(id string) int {
	for i := range c.records {
		if asEntity(&c.records[i]).EntityID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) persistLocked() error {
	records := c.records
	if records == nil {
		records = []T{}
	}
	if err := c.backend.Set(c.key, records); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

// asEntity exposes the Base methods of a record. Every stored type
// embeds models.Base, so the assertion cannot fail for collection types
// constructed by Open.
func asEntity[T any](rec *T) Entity {
	return any(rec).(Entity)
}
