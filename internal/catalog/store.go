package catalog

import (
	"fmt"
	"strconv"
	"strings"

	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

// Store owns the ordered in-memory collection of catalog items. Items are only
// ever removed; they are never reordered, renumbered or reinserted.
//
// A Store is not safe for concurrent use. All mutation is expected to happen on
// the single UI event loop.
type Store struct {
	items []Item
}

// New builds a Store from the seed items. The seed is copied, so later changes
// to the caller's slice do not leak into the store. Duplicate ids are rejected.
func New(seed []Item) (*Store, error) {
	seen := make(map[int]int, len(seed))
	for i, item := range seed {
		if prev, exists := seen[item.ID]; exists {
			return nil, shoperrors.NewValidationError(
				fmt.Sprintf("items[%d].id", i),
				fmt.Sprintf("duplicate item id %d (first used at items[%d])", item.ID, prev),
				nil,
			)
		}
		seen[item.ID] = i
	}

	items := make([]Item, len(seed))
	copy(items, seed)
	return &Store{items: items}, nil
}

// List returns a copy of the current collection in display order.
func (s *Store) List() []Item {
	return clone(s.items)
}

// Len returns the number of items currently in the collection.
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store) Get(id int) (Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Contains reports whether an item with the given id is present.
func (s *Store) Contains(id int) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove drops the item with the given id and returns the resulting
// collection. Removing an id that is not present leaves the collection as is.
func (s *Store) Remove(id int) []Item {
	s.items = Without(s.items, id)
	return s.List()
}

// RemoveRaw is Remove for ids that arrive as text, such as path segments or
// command arguments. The id is compared numerically, so "007" removes item 7.
func (s *Store) RemoveRaw(raw string) ([]Item, error) {
	id, err := ParseID(raw)
	if err != nil {
		return s.List(), err
	}
	return s.Remove(id), nil
}

// Search returns the items whose name contains query, ignoring case. An empty
// query matches everything. The collection itself is not modified.
func (s *Store) Search(query string) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return s.List()
	}

	matches := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Without returns a new slice holding every item of items except the one with
// the given id. Relative order is preserved and items is left untouched.
func Without(items []Item, id int) []Item {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}

// ParseID normalises a textual id into the numeric form used for comparison.
func ParseID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, shoperrors.NewValidationError("id", fmt.Sprintf("%q is not a numeric item id", raw), err)
	}
	return id, nil
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
