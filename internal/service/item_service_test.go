package service

import (
	"context"
	"testing"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(items *fakeItemRepo, events *fakeEventRepo) *ItemService {
	return NewItemService(items, events, nil)
}

func seedEvent() *fakeEventRepo {
	return &fakeEventRepo{events: []dom.Event{{ID: 1, Name: "trip"}}, nextID: 1}
}

func TestCreateItem(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())

	it, err := svc.Create(context.Background(), 1, "  towel  ")
	require.NoError(t, err)
	assert.Equal(t, "towel", it.Name)
	assert.Equal(t, int64(1), it.EventID)
	assert.False(t, it.Checked)
}

func TestCreateItemEmptyName(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())

	_, err := svc.Create(context.Background(), 1, "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, items.items)
}

func TestCreateItemMissingEvent(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, &fakeEventRepo{})

	_, err := svc.Create(context.Background(), 99, "towel")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, items.items)
}

func TestSetChecked(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())
	it, err := svc.Create(context.Background(), 1, "towel")
	require.NoError(t, err)

	checked, err := svc.SetChecked(context.Background(), it.ID, true)
	require.NoError(t, err)
	assert.True(t, checked.Checked)

	// Unchanged state is a no-op update: the stored row stays equal to
	// what a fresh read already returned.
	calls := items.updateCalls
	again, err := svc.SetChecked(context.Background(), it.ID, true)
	require.NoError(t, err)
	assert.Equal(t, checked, again)
	assert.Equal(t, calls, items.updateCalls)
}

func TestSetCheckedMissingItem(t *testing.T) {
	svc := newItemService(&fakeItemRepo{}, seedEvent())
	_, err := svc.SetChecked(context.Background(), 42, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenameItem(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())
	it, err := svc.Create(context.Background(), 1, "towel")
	require.NoError(t, err)

	renamed, err := svc.Rename(context.Background(), it.ID, "beach towel")
	require.NoError(t, err)
	assert.Equal(t, "beach towel", renamed.Name)

	calls := items.updateCalls
	_, err = svc.Rename(context.Background(), it.ID, "beach towel")
	require.NoError(t, err)
	assert.Equal(t, calls, items.updateCalls)
}

func TestDeleteItem(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())
	it, err := svc.Create(context.Background(), 1, "towel")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), it.ID))
	assert.Empty(t, items.items)
	assert.ErrorIs(t, svc.Delete(context.Background(), it.ID), ErrNotFound)
}

func TestListByEvent(t *testing.T) {
	items := &fakeItemRepo{}
	svc := newItemService(items, seedEvent())
	_, err := svc.Create(context.Background(), 1, "towel")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, "bottle")
	require.NoError(t, err)

	list, err := svc.ListByEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "towel", list[0].Name)
	assert.Equal(t, "bottle", list[1].Name)

	_, err = svc.ListByEvent(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
