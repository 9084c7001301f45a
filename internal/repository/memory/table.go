package memory

import (
	"sync"

	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

// table owns the rows of one entity. Rows are kept newest first and copied on the
// way in and out so callers never share memory with the store.
type table[T any] struct {
	mu     sync.RWMutex
	rows   []T
	lastID uint64
	id     func(*T) *uint64
	clone  func(T) T
}

func newTable[T any](id func(*T) *uint64, clone func(T) T, seed []T) *table[T] {
	t := &table[T]{id: id, clone: clone, rows: make([]T, 0, len(seed))}
	for _, row := range seed {
		if rowID := *id(&row); rowID > t.lastID {
			t.lastID = rowID
		}
		t.rows = append(t.rows, clone(row))
	}
	return t
}

func (t *table[T]) list(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.rows))
	for i := range t.rows {
		if match == nil || match(&t.rows[i]) {
			result = append(result, t.clone(t.rows[i]))
		}
	}
	return result
}

func (t *table[T]) first(match func(*T) bool) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.rows {
		if match(&t.rows[i]) {
			row := t.clone(t.rows[i])
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *table[T]) find(id uint64) (*T, error) {
	return t.first(func(row *T) bool { return *t.id(row) == id })
}

// insert assigns the next ID to row and stores a copy of it at the front.
// IDs come from a high-water mark so a deleted ID is never handed out again.
func (t *table[T]) insert(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	*t.id(row) = t.lastID
	t.rows = append([]T{t.clone(*row)}, t.rows...)
}

func (t *table[T]) update(id uint64, apply func(*T)) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			apply(&t.rows[i])
			row := t.clone(t.rows[i])
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *table[T]) remove(id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
