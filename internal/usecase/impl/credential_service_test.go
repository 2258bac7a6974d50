package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"latch/config"
	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/repository"
	mockRepo "latch/internal/mocks/repository"
	"latch/internal/usecase"
)

// testConfig returns a config with the default access limits, shared by the
// usecase tests in this package.
func testConfig() *config.Config {
	return &config.Config{
		Store: &config.StoreConfig{
			Provider:          config.StoreProviderMemory,
			DoorDocument:      "homes/main/door",
			DevicesCollection: "homes/main/devices",
			PinsCollection:    "pins",
		},
		Access: &config.AccessConfig{
			MaxPins:        10,
			MinPinLength:   4,
			MaxPinLength:   8,
			MaxPinAttempts: 5,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service usecase.CredentialUsecase
	pinRepo *mockRepo.MockPinRepository
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	pinRepo := mockRepo.NewMockPinRepository(t)
	service := NewCredentialService(pinRepo, testConfig(), testLogger())

	return credentialServiceFixtures{
		service: service,
		pinRepo: pinRepo,
	}
}

func TestCredentialService_AddPin_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		CountPinsByUser(ctx, "user-1").
		Return(2, nil)

	fx.pinRepo.EXPECT().
		FindPinsByUser(ctx, "user-1").
		Return([]*entity.Pin{{ID: "p1", Code: "8888"}}, nil)

	fx.pinRepo.EXPECT().
		CreatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
			created := *pin
			created.ID = "p2"

			return &created, nil
		})

	pin, err := fx.service.AddPin(ctx, "user-1", "1234", "Front door")
	require.NoError(t, err)
	assert.Equal(t, "p2", pin.ID)
	assert.Equal(t, "user-1", pin.UserID)
	assert.Equal(t, "1234", pin.Code)
	assert.Equal(t, "Front door", pin.Name)
	assert.Equal(t, entity.DoorDeviceID, pin.DeviceID)
}

func TestCredentialService_AddPin_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		pinName string
		wantErr error
	}{
		{name: "empty code", code: "", pinName: "", wantErr: domainerrors.ErrPinCodeEmpty},
		{name: "empty name", code: "1234", pinName: "", wantErr: domainerrors.ErrPinNameEmpty},
		{name: "too short", code: "12", pinName: "Spare", wantErr: domainerrors.ErrPinInvalidLength},
		{name: "too long", code: "123456789", pinName: "Spare", wantErr: domainerrors.ErrPinInvalidLength},
		{name: "non numeric", code: "12a4", pinName: "Spare", wantErr: domainerrors.ErrPinNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: validation failures must never
			// touch the store.
			fx := createTestCredentialService(t)

			pin, err := fx.service.AddPin(context.Background(), "user-1", tt.code, tt.pinName)
			assert.Nil(t, pin)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialService_AddPin_QuotaExceeded(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		CountPinsByUser(ctx, "user-1").
		Return(10, nil)

	pin, err := fx.service.AddPin(ctx, "user-1", "1234", "One too many")
	assert.Nil(t, pin)
	assert.ErrorIs(t, err, domainerrors.ErrPinQuotaExceeded)
}

func TestCredentialService_AddPin_Duplicate(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		CountPinsByUser(ctx, "user-1").
		Return(1, nil)

	fx.pinRepo.EXPECT().
		FindPinsByUser(ctx, "user-1").
		Return([]*entity.Pin{{ID: "p1", Code: "1234", Name: "Original"}}, nil)

	pin, err := fx.service.AddPin(ctx, "user-1", "1234", "Copy")
	assert.Nil(t, pin)
	assert.ErrorIs(t, err, domainerrors.ErrPinDuplicate)
}

func TestCredentialService_LoadPins_EmptyOnError(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		FindPinsByUser(ctx, "user-1").
		Return(nil, errors.New("collection does not exist"))

	pins := fx.service.LoadPins(ctx, "user-1")
	assert.NotNil(t, pins)
	assert.Empty(t, pins)
}

func TestCredentialService_LoadPins_NilBecomesEmpty(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		FindPinsByUser(ctx, "user-1").
		Return(nil, nil)

	pins := fx.service.LoadPins(ctx, "user-1")
	assert.NotNil(t, pins)
	assert.Empty(t, pins)
}

func TestCredentialService_DeletePin_NotFound(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pinRepo.EXPECT().
		DeletePin(ctx, "user-1", "missing").
		Return(repository.ErrPinNotFound)

	err := fx.service.DeletePin(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrPinNotFound)
}

func TestCredentialService_Verify(t *testing.T) {
	fx := createTestCredentialService(t)
	pins := []*entity.Pin{
		{ID: "p1", Code: "1234", Name: "Front door"},
		{ID: "p2", Code: "567890", Name: "Spare"},
	}

	pin, ok := fx.service.Verify("567890", pins)
	require.True(t, ok)
	assert.Equal(t, "p2", pin.ID)

	pin, ok = fx.service.Verify("9999", pins)
	assert.False(t, ok)
	assert.Nil(t, pin)

	pin, ok = fx.service.Verify("1234", nil)
	assert.False(t, ok)
	assert.Nil(t, pin)
}
