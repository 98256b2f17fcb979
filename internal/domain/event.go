package domain

import "time"

// Weekday is the two-letter weekday code used in stored recurrences
// and over the API (SU, MO, TU, WE, TH, FR, SA).
type Weekday string

const (
	Sunday    Weekday = "SU"
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
)

// Weekdays lists all codes in calendar order (Sunday first).
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf returns the code for t's weekday. time.Weekday is also
// Sunday-based, so the index maps directly.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[int(t.Weekday())]
}

// IsValidWeekday reports whether s is one of the seven codes.
func IsValidWeekday(s string) bool {
	for _, d := range Weekdays {
		if string(d) == s {
			return true
		}
	}
	return false
}

// RecurrenceKind selects one of the three supported recurrence rules.
type RecurrenceKind string

const (
	RecurNone   RecurrenceKind = "none"
	RecurDaily  RecurrenceKind = "daily"
	RecurWeekly RecurrenceKind = "weekly"
)

// Recurrence is the rule governing whether and how an event repeats.
// Days is meaningful only when Kind is RecurWeekly and must be non-empty
// at creation time (enforced by the service layer, not storage).
type Recurrence struct {
	Kind RecurrenceKind
	Days []Weekday
}

// Repeats reports whether the event materializes on more than one day.
func (r Recurrence) Repeats() bool {
	return r.Kind == RecurDaily || r.Kind == RecurWeekly
}

// OnDay reports whether a weekly rule includes the given weekday.
func (r Recurrence) OnDay(d Weekday) bool {
	for _, v := range r.Days {
		if v == d {
			return true
		}
	}
	return false
}

// Event is a checklist entry on the calendar. Date is an ISO calendar
// date (YYYY-MM-DD) and is meaningful only when Recurrence.Kind is
// RecurNone; recurring events derive their dates from the rule.
type Event struct {
	ID         int64
	Name       string
	Date       string
	Recurrence Recurrence

	CreatedAt time.Time
	UpdatedAt time.Time
}
