package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/service"
	mockService "latch/internal/mocks/service"
	mockUsecase "latch/internal/mocks/usecase"
	"latch/internal/usecase"
)

// doorServiceFixtures holds all test dependencies for door service tests.
type doorServiceFixtures struct {
	service     usecase.DoorUsecase
	mirror      *mockUsecase.MockMirrorUsecase
	credentials *mockUsecase.MockCredentialUsecase
	biometric   *mockService.MockBiometricAuthenticator
}

func createTestDoorService(t *testing.T) doorServiceFixtures {
	mirror := mockUsecase.NewMockMirrorUsecase(t)
	credentials := mockUsecase.NewMockCredentialUsecase(t)
	biometric := mockService.NewMockBiometricAuthenticator(t)
	svc := NewDoorService(mirror, credentials, biometric, testConfig(), testLogger())

	return doorServiceFixtures{
		service:     svc,
		mirror:      mirror,
		credentials: credentials,
		biometric:   biometric,
	}
}

func testAccount() *entity.Account {
	return &entity.Account{ID: "user-1", Email: "user@example.com"}
}

func doorSnapshot(open bool) *entity.DeviceState {
	return &entity.DeviceState{
		ID:     entity.DoorDeviceID,
		Kind:   entity.KindDoor,
		Name:   "Front door",
		Status: open,
	}
}

func TestDoorService_RequestOpen(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)

	view, err := fx.service.RequestOpen(ctx, testAccount())
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingMethodChoice, view.Phase)

	// A second request while the flow is live is rejected.
	_, err = fx.service.RequestOpen(ctx, testAccount())
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
}

func TestDoorService_RequestOpen_WhileOpen(t *testing.T) {
	fx := createTestDoorService(t)

	fx.mirror.EXPECT().Door().Return(doorSnapshot(true), true)

	view, err := fx.service.RequestOpen(context.Background(), testAccount())
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
	assert.Equal(t, entity.DoorOpen, view.Phase)
}

func TestDoorService_PinFlow_MismatchThenMatch(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()
	pins := []*entity.Pin{{ID: "p1", Code: "1234", Name: "Front door"}}

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.credentials.EXPECT().LoadPins(ctx, user.ID).Return(pins)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.ChoosePin(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingPinEntry, view.Phase)

	// Wrong code: generic message, flow stays in PIN entry, nothing written.
	fx.credentials.EXPECT().Verify("9999", pins).Return(nil, false)

	view, err = fx.service.SubmitPin(ctx, user, "9999")
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingPinEntry, view.Phase)
	assert.Equal(t, "Incorrect PIN", view.Message)
	fx.mirror.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// Correct code: exactly one write, then the flow is gone.
	fx.credentials.EXPECT().Verify("1234", pins).Return(pins[0], true)
	fx.mirror.EXPECT().SetStatus(ctx, entity.DoorDeviceID, true, user.ID).Return(nil)

	view, err = fx.service.SubmitPin(ctx, user, "1234")
	require.NoError(t, err)
	assert.Equal(t, entity.DoorOpen, view.Phase)
	assert.Empty(t, view.Message)
	fx.mirror.AssertNumberOfCalls(t, "SetStatus", 1)

	_, err = fx.service.SubmitPin(ctx, user, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
}

func TestDoorService_SubmitPin_ShortCodeSkipsVerification(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.credentials.EXPECT().LoadPins(ctx, user.ID).Return([]*entity.Pin{{Code: "1234"}})

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)
	_, err = fx.service.ChoosePin(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.SubmitPin(ctx, user, "12")
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingPinEntry, view.Phase)
	assert.Equal(t, "Enter at least 4 digits", view.Message)
	fx.credentials.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestDoorService_SubmitPin_AbandonsAfterRepeatedFailures(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()
	pins := []*entity.Pin{{Code: "1234"}}

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.credentials.EXPECT().LoadPins(ctx, user.ID).Return(pins)
	fx.credentials.EXPECT().Verify("0000", pins).Return(nil, false)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)
	_, err = fx.service.ChoosePin(ctx, user)
	require.NoError(t, err)

	var view usecase.DoorView
	for i := 0; i < 5; i++ {
		view, err = fx.service.SubmitPin(ctx, user, "0000")
		require.NoError(t, err)
	}

	assert.Equal(t, entity.DoorClosed, view.Phase)
	assert.Equal(t, "Too many incorrect attempts", view.Message)

	// The session is gone; further entries are invalid transitions.
	_, err = fx.service.SubmitPin(ctx, user, "0000")
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
}

func TestDoorService_OpenWriteFailureRestoresPhase(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()
	pins := []*entity.Pin{{ID: "p1", Code: "1234"}}

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.credentials.EXPECT().LoadPins(ctx, user.ID).Return(pins)
	fx.credentials.EXPECT().Verify("1234", pins).Return(pins[0], true)
	fx.mirror.EXPECT().
		SetStatus(ctx, entity.DoorDeviceID, true, user.ID).
		Return(errors.New("store unavailable"))

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)
	_, err = fx.service.ChoosePin(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.SubmitPin(ctx, user, "1234")
	require.Error(t, err)
	assert.Equal(t, entity.DoorAwaitingPinEntry, view.Phase)
	assert.NotEmpty(t, view.Message)

	// Never stuck in Busy: the flow stays re-attemptable.
	state := fx.service.State(ctx, user)
	assert.Equal(t, entity.DoorAwaitingPinEntry, state.Phase)
}

func TestDoorService_Cancel(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.credentials.EXPECT().LoadPins(ctx, user.ID).Return(nil)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)
	_, err = fx.service.ChoosePin(ctx, user)
	require.NoError(t, err)

	// PIN entry falls back to the method choice.
	view, err := fx.service.Cancel(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingMethodChoice, view.Phase)

	// Method choice returns to the resting state without any write.
	view, err = fx.service.Cancel(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorClosed, view.Phase)
	fx.mirror.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	_, err = fx.service.Cancel(ctx, user)
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
}

func TestDoorService_ChooseBiometric_NoHardwareFallsBack(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.biometric.EXPECT().HasHardware().Return(false)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.ChooseBiometric(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingMethodChoice, view.Phase)
	assert.NotEmpty(t, view.Message)
	fx.biometric.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestDoorService_ChooseBiometric_Success(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.biometric.EXPECT().HasHardware().Return(true)
	fx.biometric.EXPECT().IsEnrolled().Return(true)
	fx.biometric.EXPECT().
		Authenticate(ctx, mock.AnythingOfType("string")).
		Return(service.BiometricSuccess, nil)
	fx.mirror.EXPECT().SetStatus(ctx, entity.DoorDeviceID, true, user.ID).Return(nil)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.ChooseBiometric(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorOpen, view.Phase)
}

func TestDoorService_ChooseBiometric_FailureReturnsToMethodChoice(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)
	fx.biometric.EXPECT().HasHardware().Return(true)
	fx.biometric.EXPECT().IsEnrolled().Return(true)
	fx.biometric.EXPECT().
		Authenticate(ctx, mock.AnythingOfType("string")).
		Return(service.BiometricFailure, nil)

	_, err := fx.service.RequestOpen(ctx, user)
	require.NoError(t, err)

	view, err := fx.service.ChooseBiometric(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorAwaitingMethodChoice, view.Phase)
	assert.NotEmpty(t, view.Message)
	fx.mirror.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDoorService_RequestClose(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(true), true)
	fx.mirror.EXPECT().SetStatus(ctx, entity.DoorDeviceID, false, user.ID).Return(nil)

	view, err := fx.service.RequestClose(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.DoorClosed, view.Phase)
}

func TestDoorService_RequestClose_WhileClosed(t *testing.T) {
	fx := createTestDoorService(t)

	fx.mirror.EXPECT().Door().Return(doorSnapshot(false), true)

	_, err := fx.service.RequestClose(context.Background(), testAccount())
	assert.ErrorIs(t, err, domainerrors.ErrDoorInvalidTransition)
}

func TestDoorService_RequestClose_WriteFailureStaysOpen(t *testing.T) {
	fx := createTestDoorService(t)
	ctx := context.Background()
	user := testAccount()

	fx.mirror.EXPECT().Door().Return(doorSnapshot(true), true)
	fx.mirror.EXPECT().
		SetStatus(ctx, entity.DoorDeviceID, false, user.ID).
		Return(errors.New("store unavailable"))

	view, err := fx.service.RequestClose(ctx, user)
	require.Error(t, err)
	assert.Equal(t, entity.DoorOpen, view.Phase)

	// The transient flow is cleaned up even on failure.
	state := fx.service.State(ctx, user)
	assert.Equal(t, entity.DoorOpen, state.Phase)
}
