package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latch/config"
	"latch/internal/domain/entity"
)

const (
	testDoorDoc    = "homes/main/door"
	testDevicesCol = "homes/main/devices"
)

func testStore() *StateStore {
	cfg := &config.Config{
		Store: &config.StoreConfig{
			Provider:          config.StoreProviderMemory,
			DoorDocument:      testDoorDoc,
			DevicesCollection: testDevicesCol,
		},
	}

	return NewStateStore(cfg)
}

func receive(t *testing.T, ch <-chan *entity.DeviceState) *entity.DeviceState {
	t.Helper()

	select {
	case snapshot := <-ch:
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")

		return nil
	}
}

func TestStateStore_SeedsDoorSingleton(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.WatchDocument(ctx, testDoorDoc)
	require.NoError(t, err)

	initial := receive(t, ch)
	assert.Equal(t, entity.KindDoor, initial.Kind)
	assert.Equal(t, "Front door", initial.Name)
	assert.False(t, initial.Status)
}

func TestStateStore_MergeWritePreservesOtherFields(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.WatchDocument(ctx, testDoorDoc)
	require.NoError(t, err)
	receive(t, ch) // initial

	require.NoError(t, store.MergeWrite(ctx, testDoorDoc, map[string]any{
		entity.FieldIsOpen:    true,
		entity.FieldUpdatedBy: "user-1",
	}))

	updated := receive(t, ch)
	assert.True(t, updated.Status)
	assert.Equal(t, "user-1", updated.UpdatedBy)
	// Fields outside the merge set are untouched.
	assert.Equal(t, "Front door", updated.Name)
}

func TestStateStore_PerDocumentOrdering(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.WatchDocument(ctx, testDoorDoc)
	require.NoError(t, err)
	receive(t, ch) // initial

	values := []bool{true, false, true, false, true}
	for _, value := range values {
		require.NoError(t, store.MergeWrite(ctx, testDoorDoc, map[string]any{
			entity.FieldIsOpen: value,
		}))
	}

	for _, want := range values {
		assert.Equal(t, want, receive(t, ch).Status)
	}
}

func TestStateStore_CollectionWatchSeesCreatedDocuments(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.WatchCollection(ctx, testDevicesCol)
	require.NoError(t, err)

	id, err := store.CreateDocument(ctx, testDevicesCol, map[string]any{
		entity.FieldType: string(entity.KindLight),
		entity.FieldName: "Desk lamp",
		entity.FieldIsOn: false,
	})
	require.NoError(t, err)

	created := receive(t, ch)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, entity.KindLight, created.Kind)
	assert.False(t, created.Status)

	// The door document is not part of the devices collection.
	require.NoError(t, store.MergeWrite(ctx, testDoorDoc, map[string]any{
		entity.FieldIsOpen: true,
	}))

	require.NoError(t, store.MergeWrite(ctx, testDevicesCol+"/"+id, map[string]any{
		entity.FieldIsOn: true,
	}))

	next := receive(t, ch)
	assert.Equal(t, id, next.ID)
	assert.True(t, next.Status)
}

func TestStateStore_SlowConsumerKeepsLatestWrite(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.WatchDocument(ctx, testDoorDoc)
	require.NoError(t, err)

	// Overflow the watcher buffer without draining. Intermediate snapshots
	// may be lost, but never the most recent write.
	for i := 0; i < snapshotBuffer+8; i++ {
		require.NoError(t, store.MergeWrite(ctx, testDoorDoc, map[string]any{
			entity.FieldIsOpen:    i%2 == 0,
			entity.FieldUpdatedBy: "writer",
		}))
	}
	require.NoError(t, store.MergeWrite(ctx, testDoorDoc, map[string]any{
		entity.FieldIsOpen:    true,
		entity.FieldUpdatedBy: "final",
	}))

	last := receive(t, ch)
drain:
	for {
		select {
		case snapshot := <-ch:
			last = snapshot
		default:
			break drain
		}
	}

	assert.True(t, last.Status)
	assert.Equal(t, "final", last.UpdatedBy)
}

func TestStateStore_CancelClosesChannel(t *testing.T) {
	store := testStore()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := store.WatchDocument(ctx, testDoorDoc)
	require.NoError(t, err)
	receive(t, ch) // initial

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-ch:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Writes after deregistration do not panic on the closed channel.
	require.NoError(t, store.MergeWrite(context.Background(), testDoorDoc, map[string]any{
		entity.FieldIsOpen: true,
	}))
}
