package model

import "time"

// Item is the domain model for a todo entry.
// Fields are never mutated after creation; an item is only ever added or removed.
type Item struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}
