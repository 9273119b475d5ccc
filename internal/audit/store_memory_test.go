package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(10)
	for i := range 3 {
		require.NoError(t, store.Append(ctx, Event{EntityID: fmt.Sprintf("e-%d", i)}))
	}

	events, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e-2", events[0].EntityID)
	assert.Equal(t, "e-1", events[1].EntityID)

	all, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemoryStoreDropsOldestAtCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(2)
	for i := range 3 {
		require.NoError(t, store.Append(ctx, Event{EntityID: fmt.Sprintf("e-%d", i)}))
	}

	events, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e-2", events[0].EntityID)
	assert.Equal(t, "e-1", events[1].EntityID)
}

func TestInMemoryStoreListByEntity(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(0)
	require.NoError(t, store.Append(ctx, Event{Entity: EntityPerson, EntityID: "p-1", Action: ActionPersonCreated}))
	require.NoError(t, store.Append(ctx, Event{Entity: EntityCountry, EntityID: "p-1", Action: ActionCountryCreated}))
	require.NoError(t, store.Append(ctx, Event{Entity: EntityPerson, EntityID: "p-1", Action: ActionPersonUpdated}))

	events, err := store.ListByEntity(ctx, EntityPerson, "p-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ActionPersonCreated, events[0].Action)
	assert.Equal(t, ActionPersonUpdated, events[1].Action)
}
