// Package memory implements the repository ports with ordered in-memory tables.
package memory

import (
	"fmt"
	"sync"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// table is an insertion-ordered map guarded by a RWMutex.
type table[T any] struct {
	mu   sync.RWMutex
	key  func(T) string
	ids  []string
	rows map[string]T
}

func newTable[T any](key func(T) string) *table[T] {
	return &table[T]{key: key, rows: make(map[string]T)}
}

func (t *table[T]) insert(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(v)
	if _, exists := t.rows[id]; exists {
		return apperrors.ErrDuplicate
	}
	t.ids = append(t.ids, id)
	t.rows[id] = v
	return nil
}

// upsert replaces v in place, or appends it if it is new.
func (t *table[T]) upsert(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(v)
	if _, exists := t.rows[id]; !exists {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = v
}

// replace overwrites an existing row and reports whether one was found.
func (t *table[T]) replace(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(v)
	if _, exists := t.rows[id]; !exists {
		return false
	}
	t.rows[id] = v
	return true
}

// remove deletes a row and reports whether one was found.
func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id])
	}
	return out
}

// reset replaces the whole table contents, keeping the given order.
func (t *table[T]) reset(values []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = t.ids[:0]
	t.rows = make(map[string]T, len(values))
	for _, v := range values {
		id := t.key(v)
		if _, exists := t.rows[id]; !exists {
			t.ids = append(t.ids, id)
		}
		t.rows[id] = v
	}
}

// insertUnique appends v unless its ID is taken or an existing row conflicts with it.
func (t *table[T]) insertUnique(v T, conflicts func(existing T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(v)
	if _, exists := t.rows[id]; exists {
		return apperrors.ErrDuplicate
	}
	for _, existing := range t.rows {
		if conflicts(existing) {
			return apperrors.ErrDuplicate
		}
	}
	t.ids = append(t.ids, id)
	t.rows[id] = v
	return nil
}

// mutate runs fn on the row stored under id while holding the write lock.
// fn also sees whether the row exists. Its result is stored (appended when
// new) unless it returns an error, in which case the table is unchanged.
func (t *table[T]) mutate(id string, fn func(current T, exists bool) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, exists := t.rows[id]
	next, err := fn(current, exists)
	if err != nil {
		var zero T
		return zero, err
	}
	if !exists {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = next
	return next, nil
}

// removeIf deletes the row when check passes. Unknown ids are ignored.
func (t *table[T]) removeIf(id string, check func(T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, exists := t.rows[id]
	if !exists {
		return nil
	}
	if err := check(current); err != nil {
		return err
	}
	delete(t.rows, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

// stillPending rejects rows whose approval was already decided.
func stillPending(id string, status domain.ApprovalStatus) error {
	if status != domain.StatusPending {
		return fmt.Errorf("%s is already %s: %w", id, status, apperrors.ErrInvalidTransition)
	}
	return nil
}
