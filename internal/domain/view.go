package domain

// Occurrence is one concrete calendar-day materialization of an event.
// Derived, never persisted. IsOccurrence is true when the day was
// produced by a recurrence rule rather than the event's own date.
type Occurrence struct {
	Event        Event
	DisplayDate  string
	IsOccurrence bool
}

// ViewEntry pairs an occurrence with the items of its source event.
type ViewEntry struct {
	Occurrence Occurrence
	Items      []Item
}

// DateGroup is one calendar day of the rendered view, holding every
// occurrence that falls on that date in display order.
type DateGroup struct {
	Date    string
	Entries []ViewEntry
}
