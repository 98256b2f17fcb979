package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shimokura-meg/schedule-checklist/internal/cache"
	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"
	"github.com/shimokura-meg/schedule-checklist/internal/repo"
	"github.com/shimokura-meg/schedule-checklist/internal/schedule"

	"golang.org/x/sync/singleflight"
)

// ViewService builds the date-grouped occurrence view: full-table reads,
// expansion over the horizon, grouping, with a Redis cache in front.
type ViewService struct {
	events repo.EventRepo
	items  repo.ItemRepo
	cache  *cache.ViewCache
	sf     singleflight.Group
	now    func() time.Time
}

// NewViewService creates a ViewService. If c is nil, caching is disabled.
func NewViewService(events repo.EventRepo, items repo.ItemRepo, c *cache.ViewCache) *ViewService {
	return &ViewService{events: events, items: items, cache: c, now: time.Now}
}

// Grouped returns the view for today over the given horizon. Concurrent
// rebuilds for the same day are collapsed. Storage faults degrade to the
// cached copy when one exists, else to an empty view, never to an error
// that would take the whole render down.
func (s *ViewService) Grouped(ctx context.Context, horizonDays int) ([]dom.DateGroup, error) {
	if horizonDays <= 0 {
		horizonDays = schedule.DefaultHorizonDays
	}
	today := s.now()
	key := viewKey(today.Format(schedule.DateLayout), horizonDays)

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if s.cache != nil {
			if groups, err := s.cache.Get(ctx, key); err == nil && groups != nil {
				return groups, nil
			}
		}
		groups, err := s.build(ctx, today, horizonDays)
		if err != nil {
			log.Printf("view build degraded to empty: %v", err)
			return []dom.DateGroup{}, nil
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, key, groups)
		}
		return groups, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.DateGroup), nil
}

// viewKey names the cache and singleflight slot for one build. The
// horizon is part of the key so differing horizons never share a view.
func viewKey(day string, horizonDays int) string {
	return fmt.Sprintf("%s:%d", day, horizonDays)
}

func (s *ViewService) build(ctx context.Context, today time.Time, horizonDays int) ([]dom.DateGroup, error) {
	events, err := s.events.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	occs := schedule.Expand(events, today, horizonDays)
	return schedule.BuildView(occs, items), nil
}
