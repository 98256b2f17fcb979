package service

import (
	"context"
	"time"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/jackc/pgx/v5"
)

// In-memory repo fakes. Insertion order is preserved and ids are
// assigned monotonically, matching the PG implementations.

type fakeEventRepo struct {
	events      []dom.Event
	nextID      int64
	err         error
	updateCalls int
}

func (f *fakeEventRepo) Create(_ context.Context, e dom.Event) (dom.Event, error) {
	if f.err != nil {
		return dom.Event{}, f.err
	}
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (dom.Event, error) {
	if f.err != nil {
		return dom.Event{}, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return dom.Event{}, pgx.ErrNoRows
}

func (f *fakeEventRepo) GetAll(_ context.Context) ([]dom.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]dom.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e dom.Event) (dom.Event, error) {
	if f.err != nil {
		return dom.Event{}, f.err
	}
	f.updateCalls++
	for i := range f.events {
		if f.events[i].ID == e.ID {
			e.UpdatedAt = time.Now()
			f.events[i] = e
			return e, nil
		}
	}
	return dom.Event{}, pgx.ErrNoRows
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeItemRepo struct {
	items       []dom.Item
	nextID      int64
	err         error
	cascadeErr  error
	updateCalls int
}

func (f *fakeItemRepo) Create(_ context.Context, it dom.Item) (dom.Item, error) {
	if f.err != nil {
		return dom.Item{}, f.err
	}
	f.nextID++
	it.ID = f.nextID
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	f.items = append(f.items, it)
	return it, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (dom.Item, error) {
	if f.err != nil {
		return dom.Item{}, f.err
	}
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return dom.Item{}, pgx.ErrNoRows
}

func (f *fakeItemRepo) GetAll(_ context.Context) ([]dom.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]dom.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeItemRepo) ListByEvent(_ context.Context, eventID int64) ([]dom.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []dom.Item
	for _, it := range f.items {
		if it.EventID == eventID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, it dom.Item) (dom.Item, error) {
	if f.err != nil {
		return dom.Item{}, f.err
	}
	f.updateCalls++
	for i := range f.items {
		if f.items[i].ID == it.ID {
			it.UpdatedAt = time.Now()
			f.items[i] = it
			return it, nil
		}
	}
	return dom.Item{}, pgx.ErrNoRows
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeItemRepo) DeleteByEvent(_ context.Context, eventID int64) error {
	if f.cascadeErr != nil {
		return f.cascadeErr
	}
	kept := f.items[:0]
	for _, it := range f.items {
		if it.EventID != eventID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}
