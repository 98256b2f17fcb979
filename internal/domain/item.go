package domain

import "time"

// Item is a packing-list entry attached to an event. EventID always
// references an existing event at creation time; deleting the event
// deletes its items.
type Item struct {
	ID      int64
	EventID int64
	Name    string
	Checked bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
