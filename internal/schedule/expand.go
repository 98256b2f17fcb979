// Package schedule turns stored events into the time-ordered, date-grouped
// view the renderer consumes. Everything here is pure: callers pass the
// current date in, nothing reads the wall clock.
package schedule

import (
	"time"

	"github.com/shimokura-meg/schedule-checklist/internal/domain"
)

// DateLayout is the ISO calendar-date format used everywhere dates are
// stored or displayed. Zero-padded, so lexical order equals date order.
const DateLayout = "2006-01-02"

// DefaultHorizonDays bounds how far into the future recurring events
// are expanded.
const DefaultHorizonDays = 30

// Expand produces one occurrence per (event, concrete day) pair within
// [today, today+horizonDays). Non-recurring events yield a single
// occurrence on their own date, and only when that date is today or
// later; past single events are excluded, not deleted. Events with an
// unparseable date or a weekly rule without weekdays yield nothing.
func Expand(events []domain.Event, today time.Time, horizonDays int) []domain.Occurrence {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	today = Midnight(today)

	occs := make([]domain.Occurrence, 0, len(events))
	for _, ev := range events {
		switch ev.Recurrence.Kind {
		case domain.RecurDaily:
			for i := 0; i < horizonDays; i++ {
				day := today.AddDate(0, 0, i)
				occs = append(occs, domain.Occurrence{
					Event:        ev,
					DisplayDate:  day.Format(DateLayout),
					IsOccurrence: true,
				})
			}
		case domain.RecurWeekly:
			for i := 0; i < horizonDays; i++ {
				day := today.AddDate(0, 0, i)
				if !ev.Recurrence.OnDay(domain.WeekdayOf(day)) {
					continue
				}
				occs = append(occs, domain.Occurrence{
					Event:        ev,
					DisplayDate:  day.Format(DateLayout),
					IsOccurrence: true,
				})
			}
		default:
			date, err := time.ParseInLocation(DateLayout, ev.Date, today.Location())
			if err != nil {
				continue
			}
			if date.Before(today) {
				continue
			}
			occs = append(occs, domain.Occurrence{
				Event:        ev,
				DisplayDate:  ev.Date,
				IsOccurrence: false,
			})
		}
	}
	return occs
}

// Midnight strips the time-of-day component, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
