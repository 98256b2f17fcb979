package service

import (
	"context"
	"testing"
	"time"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-24 is a Monday.
var viewToday = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

func TestGroupedBuildsView(t *testing.T) {
	events := &fakeEventRepo{
		events: []dom.Event{
			{ID: 1, Name: "trip", Date: "2026-08-25", Recurrence: dom.Recurrence{Kind: dom.RecurNone}},
			{ID: 2, Name: "vitamins", Recurrence: dom.Recurrence{Kind: dom.RecurDaily}},
		},
		nextID: 2,
	}
	items := &fakeItemRepo{
		items:  []dom.Item{{ID: 10, EventID: 1, Name: "charger"}},
		nextID: 10,
	}
	svc := NewViewService(events, items, nil)
	svc.now = func() time.Time { return viewToday }

	groups, err := svc.Grouped(context.Background(), 3)
	require.NoError(t, err)

	// Daily event on all 3 days, single event joining on the 25th.
	require.Len(t, groups, 3)
	assert.Equal(t, "2026-08-24", groups[0].Date)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, int64(2), groups[0].Entries[0].Occurrence.Event.ID)

	assert.Equal(t, "2026-08-25", groups[1].Date)
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, int64(1), groups[1].Entries[0].Occurrence.Event.ID)
	require.Len(t, groups[1].Entries[0].Items, 1)
	assert.Equal(t, "charger", groups[1].Entries[0].Items[0].Name)
}

func TestGroupedHonorsHorizon(t *testing.T) {
	events := &fakeEventRepo{
		events: []dom.Event{{ID: 1, Name: "vitamins", Recurrence: dom.Recurrence{Kind: dom.RecurDaily}}},
		nextID: 1,
	}
	svc := NewViewService(events, &fakeItemRepo{}, nil)
	svc.now = func() time.Time { return viewToday }

	short, err := svc.Grouped(context.Background(), 1)
	require.NoError(t, err)
	long, err := svc.Grouped(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, short, 1)
	assert.Len(t, long, 7)
	assert.NotEqual(t, viewKey("2026-08-24", 1), viewKey("2026-08-24", 7))
}

func TestGroupedDegradesToEmptyOnStorageError(t *testing.T) {
	events := &fakeEventRepo{err: assert.AnError}
	svc := NewViewService(events, &fakeItemRepo{}, nil)
	svc.now = func() time.Time { return viewToday }

	groups, err := svc.Grouped(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
