// This file defines the ShoppingListRepo, the single owner of the in-memory
// shopping list.  The list is an ordered sequence of names: insertion order
// is preserved, duplicates are permitted, and there is no persistence.  Echo
// serves requests concurrently, so every read-modify-write path takes the
// repo's mutex; callers only ever see snapshots.
package repository

import (
	"strings" // strings offers trimming utilities
	"sync"    // sync provides the mutex guarding the shared sequence

	"github.com/River-03/shopping-list-api/internal/model" // model defines the Item type returned to callers
)

// MaxNameLength caps item names at 100 characters, measured after trimming.
const MaxNameLength = 100

// ShoppingListRepo holds the process-wide shopping list.  It is constructed
// once at startup and injected into the handlers; no other component reads
// or writes the underlying slice.
type ShoppingListRepo struct {
	mu    sync.Mutex // mu guards items against concurrent request handlers
	items []string   // items in insertion order, duplicates allowed
}

// NewShoppingListRepo constructs an empty list.  This function allows
// dependency injection of the repo in tests and at startup.
func NewShoppingListRepo() *ShoppingListRepo {
	return &ShoppingListRepo{}
}

// Add validates the given name and appends it to the end of the list.  The
// name is trimmed of surrounding whitespace before validation; an empty or
// over-long result fails with ErrEmptyName or ErrNameTooLong and leaves the
// list untouched.  On success the stored item is returned.
func (r *ShoppingListRepo) Add(name string) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return model.Item{}, ErrNameTooLong
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, name)
	return model.Item{Name: name}, nil
}

// Items returns a snapshot of the current list in insertion order together
// with its length.  The returned slice is a copy, so callers may not observe
// later mutations through it.
func (r *ShoppingListRepo) Items() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out, len(out)
}

// Count reports the current number of items on the list.
func (r *ShoppingListRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Remove deletes the first occurrence of an exactly matching name and
// reports whether anything was removed.  An absent name is not an error at
// this layer; the handler decides how to surface it.
func (r *ShoppingListRepo) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the list and returns the number of items that were removed.
// Clearing an already empty list is a no-op reporting zero.
func (r *ShoppingListRepo) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.items)
	r.items = nil
	return n
}
