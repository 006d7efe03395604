// Package session holds the in-memory, ordered todo collection for one run.
package session

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/idilsaglam/todoloop/internal/model"
)

var (
	// ErrEmptyDescription is returned by Add for blank input.
	ErrEmptyDescription = errors.New("description cannot be empty")
	// ErrNotFound is returned by Remove when no item carries the id.
	ErrNotFound = errors.New("no todo found with that id")
)

// IDScheme decides the id handed to a newly added item.
type IDScheme string

const (
	// IDLength assigns len(items)+1. Ids can repeat once items are removed.
	IDLength IDScheme = "length"
	// IDSequential starts at the highest loaded id + 1 and never reuses an id
	// within a run.
	IDSequential IDScheme = "sequential"
)

// ParseIDScheme maps a config value to an IDScheme. Empty means IDLength.
func ParseIDScheme(s string) (IDScheme, error) {
	switch IDScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", IDLength:
		return IDLength, nil
	case IDSequential:
		return IDSequential, nil
	}
	return "", fmt.Errorf("unknown id scheme %q (want %q or %q)", s, IDLength, IDSequential)
}

// Option configures a State.
type Option func(*State)

// WithIDScheme selects how new ids are assigned.
func WithIDScheme(scheme IDScheme) Option {
	return func(s *State) { s.scheme = scheme }
}

// WithClock overrides time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// State is the session's ordered item collection. It is owned by a single
// caller and is not safe for concurrent use.
type State struct {
	items  []model.Item
	scheme IDScheme
	now    func() time.Time
	nextID int
}

// New builds a State seeded with items, keeping their order.
func New(items []model.Item, opts ...Option) *State {
	s := &State{
		items:  append([]model.Item(nil), items...),
		scheme: IDLength,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, it := range s.items {
		if it.ID > s.nextID {
			s.nextID = it.ID
		}
	}
	s.nextID++
	return s
}

// Len reports the number of items.
func (s *State) Len() int { return len(s.items) }

// Items returns a copy of the collection in order.
func (s *State) Items() []model.Item {
	return append([]model.Item(nil), s.items...)
}

// All yields the items in insertion order. Each call starts a fresh pass over
// the collection as it is at that moment.
func (s *State) All() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Stats counts done and pending items.
func (s *State) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Add appends a new pending item with the trimmed description.
func (s *State) Add(description string) (model.Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Item{}, ErrEmptyDescription
	}
	it := model.Item{
		ID:          s.assignID(),
		Description: description,
		CreatedAt:   s.now().UTC(),
	}
	s.items = append(s.items, it)
	return it, nil
}

func (s *State) assignID() int {
	if s.scheme == IDSequential {
		id := s.nextID
		s.nextID++
		return id
	}
	return len(s.items) + 1
}

// Remove deletes the first item whose id matches. Later items move up one
// position; their ids are left alone.
func (s *State) Remove(id int) (model.Item, error) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return it, nil
		}
	}
	return model.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}
