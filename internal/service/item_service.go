package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shimokura-meg/schedule-checklist/internal/cache"
	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"
	"github.com/shimokura-meg/schedule-checklist/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ItemService is the validation layer over packing-item mutations.
type ItemService struct {
	items  repo.ItemRepo
	events repo.EventRepo
	views  *cache.ViewCache
}

// NewItemService creates an ItemService. If views is nil, view-cache
// invalidation is disabled.
func NewItemService(items repo.ItemRepo, events repo.EventRepo, views *cache.ViewCache) *ItemService {
	return &ItemService{items: items, events: events, views: views}
}

// Create stores a new unchecked item after verifying the owning event
// still exists.
func (s *ItemService) Create(ctx context.Context, eventID int64, name string) (dom.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Item{}, validationError("name must not be empty")
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, fmt.Errorf("check event: %w", err)
	}

	it, err := s.items.Create(ctx, dom.Item{EventID: eventID, Name: name})
	if err != nil {
		return dom.Item{}, fmt.Errorf("create item: %w", err)
	}
	s.invalidateViews(ctx)
	return it, nil
}

// Rename updates the item name, skipping the write when unchanged.
func (s *ItemService) Rename(ctx context.Context, id int64, name string) (dom.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Item{}, validationError("name must not be empty")
	}
	it, err := s.getItem(ctx, id)
	if err != nil {
		return dom.Item{}, err
	}
	if it.Name == name {
		return it, nil
	}
	it.Name = name
	return s.persist(ctx, it)
}

// SetChecked toggles the checkbox state via fetch-mutate-persist. A
// concurrently deleted item surfaces as ErrNotFound.
func (s *ItemService) SetChecked(ctx context.Context, id int64, checked bool) (dom.Item, error) {
	it, err := s.getItem(ctx, id)
	if err != nil {
		return dom.Item{}, err
	}
	if it.Checked == checked {
		return it, nil
	}
	it.Checked = checked
	return s.persist(ctx, it)
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidateViews(ctx)
	return nil
}

func (s *ItemService) List(ctx context.Context) ([]dom.Item, error) {
	return s.items.GetAll(ctx)
}

// ListByEvent returns the event's items in insertion order, failing with
// ErrNotFound when the event itself is gone.
func (s *ItemService) ListByEvent(ctx context.Context, eventID int64) ([]dom.Item, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.items.ListByEvent(ctx, eventID)
}

func (s *ItemService) getItem(ctx context.Context, id int64) (dom.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func (s *ItemService) persist(ctx context.Context, it dom.Item) (dom.Item, error) {
	updated, err := s.items.Update(ctx, it)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, fmt.Errorf("update item: %w", err)
	}
	s.invalidateViews(ctx)
	return updated, nil
}

func (s *ItemService) invalidateViews(ctx context.Context) {
	if s.views != nil {
		_ = s.views.Invalidate(ctx)
	}
}
