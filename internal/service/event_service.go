package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shimokura-meg/schedule-checklist/internal/cache"
	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"
	"github.com/shimokura-meg/schedule-checklist/internal/repo"
	"github.com/shimokura-meg/schedule-checklist/internal/schedule"

	"github.com/jackc/pgx/v5"
)

// EventService is the validation layer over event mutations.
type EventService struct {
	events repo.EventRepo
	items  repo.ItemRepo
	views  *cache.ViewCache
	now    func() time.Time
}

// NewEventService creates an EventService. If views is nil, view-cache
// invalidation is disabled.
func NewEventService(events repo.EventRepo, items repo.ItemRepo, views *cache.ViewCache) *EventService {
	return &EventService{events: events, items: items, views: views, now: time.Now}
}

// Create validates and stores a new event. An empty date on a
// non-recurring event defaults to today, computed once here rather than
// re-derived on render.
func (s *EventService) Create(ctx context.Context, name, date string, rec dom.Recurrence) (dom.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Event{}, validationError("name must not be empty")
	}
	switch rec.Kind {
	case dom.RecurNone, dom.RecurDaily:
		rec.Days = nil
	case dom.RecurWeekly:
		if len(rec.Days) == 0 {
			return dom.Event{}, validationError("weekly recurrence needs at least one weekday")
		}
	default:
		return dom.Event{}, validationError("recurrence kind must be none, daily or weekly")
	}
	if date != "" {
		if _, err := time.Parse(schedule.DateLayout, date); err != nil {
			return dom.Event{}, validationError("date must be YYYY-MM-DD")
		}
	}
	if rec.Kind == dom.RecurNone && date == "" {
		date = s.now().Format(schedule.DateLayout)
	}

	e, err := s.events.Create(ctx, dom.Event{Name: name, Date: date, Recurrence: rec})
	if err != nil {
		return dom.Event{}, fmt.Errorf("create event: %w", err)
	}
	s.invalidateViews(ctx)
	return e, nil
}

// Rename updates the event name. No write is issued when the name is
// unchanged, to avoid redundant persistence and re-render triggers.
func (s *EventService) Rename(ctx context.Context, id int64, name string) (dom.Event, error) {
	return s.Update(ctx, id, &name, nil)
}

// EditDate changes a non-recurring event's date. Recurring events derive
// their dates from the rule, so their date cannot be edited directly.
func (s *EventService) EditDate(ctx context.Context, id int64, date string) (dom.Event, error) {
	return s.Update(ctx, id, nil, &date)
}

// Update applies a partial update in one write. Everything is validated
// against the current row first, so a rejected field never leaves the
// other one half-applied. Nil fields are left untouched; no write is
// issued when nothing changes.
func (s *EventService) Update(ctx context.Context, id int64, name, date *string) (dom.Event, error) {
	var newName string
	if name != nil {
		newName = strings.TrimSpace(*name)
		if newName == "" {
			return dom.Event{}, validationError("name must not be empty")
		}
	}
	if date != nil {
		if _, err := time.Parse(schedule.DateLayout, *date); err != nil {
			return dom.Event{}, validationError("date must be YYYY-MM-DD")
		}
	}
	e, err := s.getEvent(ctx, id)
	if err != nil {
		return dom.Event{}, err
	}
	if date != nil && e.Recurrence.Repeats() {
		return dom.Event{}, validationError("date of a recurring event cannot be edited directly")
	}

	changed := false
	if name != nil && e.Name != newName {
		e.Name = newName
		changed = true
	}
	if date != nil && e.Date != *date {
		e.Date = *date
		changed = true
	}
	if !changed {
		return e, nil
	}
	updated, err := s.events.Update(ctx, e)
	if err != nil {
		return dom.Event{}, s.mapUpdateErr(err)
	}
	s.invalidateViews(ctx)
	return updated, nil
}

// Delete removes the event, then every item referencing it. The two
// deletes are sequenced but not atomic: if the item delete fails after
// the event delete succeeded, orphaned items remain (known gap).
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if err := s.items.DeleteByEvent(ctx, id); err != nil {
		return fmt.Errorf("delete items of event %d: %w", id, err)
	}
	s.invalidateViews(ctx)
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (dom.Event, error) {
	return s.getEvent(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]dom.Event, error) {
	return s.events.GetAll(ctx)
}

func (s *EventService) getEvent(ctx context.Context, id int64) (dom.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Event{}, ErrNotFound
		}
		return dom.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *EventService) mapUpdateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("update event: %w", err)
}

func (s *EventService) invalidateViews(ctx context.Context) {
	if s.views != nil {
		_ = s.views.Invalidate(ctx)
	}
}
