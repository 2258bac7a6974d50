package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	mockService "latch/internal/mocks/service"
	"latch/internal/usecase"
)

// mirrorServiceFixtures holds all test dependencies for mirror service tests.
type mirrorServiceFixtures struct {
	service  usecase.MirrorUsecase
	store    *mockService.MockStateStore
	notifier *mockService.MockNotifier
	doorCh   chan *entity.DeviceState
	devCh    chan *entity.DeviceState
}

func createTestMirrorService(t *testing.T) mirrorServiceFixtures {
	store := mockService.NewMockStateStore(t)
	notifier := mockService.NewMockNotifier(t)
	service := NewMirrorService(store, notifier, testConfig(), testLogger())

	return mirrorServiceFixtures{
		service:  service,
		store:    store,
		notifier: notifier,
		doorCh:   make(chan *entity.DeviceState, 16),
		devCh:    make(chan *entity.DeviceState, 16),
	}
}

// start opens the subscriptions against the fixture channels.
func (fx *mirrorServiceFixtures) start(t *testing.T, ctx context.Context) {
	fx.store.EXPECT().
		WatchDocument(mock.Anything, "homes/main/door").
		Return((<-chan *entity.DeviceState)(fx.doorCh), nil)
	fx.store.EXPECT().
		WatchCollection(mock.Anything, "homes/main/devices").
		Return((<-chan *entity.DeviceState)(fx.devCh), nil)

	require.NoError(t, fx.service.Start(ctx, testAccount()))
}

// stop closes the fixture channels so the consumers drain, then tears the
// mirror down.
func (fx *mirrorServiceFixtures) stop() {
	close(fx.doorCh)
	close(fx.devCh)
	fx.service.Stop()
}

func TestMirrorService_Start_RequiresAccount(t *testing.T) {
	fx := createTestMirrorService(t)

	err := fx.service.Start(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestMirrorService_InitialSnapshotDoesNotNotify(t *testing.T) {
	fx := createTestMirrorService(t)
	fx.start(t, context.Background())
	defer fx.stop()

	fx.doorCh <- doorSnapshot(true)

	require.Eventually(t, func() bool {
		door, ok := fx.service.Door()

		return ok && door.Status
	}, time.Second, 5*time.Millisecond)

	// No Notify expectation was registered; the mock would fail the test on
	// any unexpected call during cleanup.
}

func TestMirrorService_ChangeNotifiesWithKindVocabulary(t *testing.T) {
	fx := createTestMirrorService(t)
	fx.start(t, context.Background())
	defer fx.stop()

	notified := make(chan string, 2)
	fx.notifier.EXPECT().
		Notify(mock.Anything, "user-1", "Device update", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, _, body string) error {
			notified <- body

			return nil
		})

	lamp := &entity.DeviceState{ID: "d1", Kind: entity.KindLight, Name: "Desk lamp", Status: false}
	fx.devCh <- lamp

	on := *lamp
	on.Status = true
	fx.devCh <- &on

	select {
	case body := <-notified:
		assert.Equal(t, "Desk lamp is now ON", body)
	case <-time.After(time.Second):
		t.Fatal("expected a change alert")
	}
}

func TestMirrorService_SetStatus_UnknownDevice(t *testing.T) {
	fx := createTestMirrorService(t)

	err := fx.service.SetStatus(context.Background(), "ghost", true, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestMirrorService_SetStatus_DoorWritesNarrowFields(t *testing.T) {
	fx := createTestMirrorService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		MergeWrite(ctx, "homes/main/door", mock.MatchedBy(func(fields map[string]any) bool {
			open, ok := fields[entity.FieldIsOpen].(bool)
			_, hasUpdated := fields[entity.FieldLastUpdated]

			return len(fields) == 3 && ok && open && hasUpdated &&
				fields[entity.FieldUpdatedBy] == "user-1"
		})).
		Return(nil)

	require.NoError(t, fx.service.SetStatus(ctx, entity.DoorDeviceID, true, "user-1"))
}

func TestMirrorService_SetStatus_LightWritesIsOn(t *testing.T) {
	fx := createTestMirrorService(t)
	ctx := context.Background()
	fx.start(t, ctx)
	defer fx.stop()

	fx.devCh <- &entity.DeviceState{ID: "d1", Kind: entity.KindLight, Name: "Desk lamp"}

	require.Eventually(t, func() bool {
		_, ok := fx.service.Device("d1")

		return ok
	}, time.Second, 5*time.Millisecond)

	fx.store.EXPECT().
		MergeWrite(ctx, "homes/main/devices/d1", mock.MatchedBy(func(fields map[string]any) bool {
			on, ok := fields[entity.FieldIsOn].(bool)
			_, straysOpen := fields[entity.FieldIsOpen]

			return ok && on && !straysOpen
		})).
		Return(nil)

	require.NoError(t, fx.service.SetStatus(ctx, "d1", true, "user-1"))

	// No optimistic update: the read model still shows the pre-write state
	// until the subscription echoes the change.
	device, ok := fx.service.Device("d1")
	require.True(t, ok)
	assert.False(t, device.Status)
}

func TestMirrorService_AddDevice(t *testing.T) {
	fx := createTestMirrorService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		CreateDocument(ctx, "homes/main/devices", mock.MatchedBy(func(fields map[string]any) bool {
			return fields[entity.FieldType] == string(entity.KindWindow) &&
				fields[entity.FieldName] == "Kitchen window" &&
				fields[entity.FieldIsOpen] == false
		})).
		Return("d9", nil)

	id, err := fx.service.AddDevice(ctx, entity.KindWindow, "Kitchen window", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "d9", id)
}

func TestMirrorService_AddDevice_RejectsDoor(t *testing.T) {
	fx := createTestMirrorService(t)

	_, err := fx.service.AddDevice(context.Background(), entity.KindDoor, "Another door", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceInvalidKind)

	_, err = fx.service.AddDevice(context.Background(), entity.DeviceKind("thermostat"), "Hall", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceInvalidKind)
}

func TestMirrorService_StartIsIdempotentAndStopIsSafe(t *testing.T) {
	fx := createTestMirrorService(t)
	ctx := context.Background()
	fx.start(t, ctx)

	// Second start is a no-op; the store must not be watched again.
	require.NoError(t, fx.service.Start(ctx, testAccount()))
	fx.store.AssertNumberOfCalls(t, "WatchDocument", 1)

	fx.stop()

	// Snapshots survive teardown and a second stop is a no-op.
	fx.service.Stop()
}
