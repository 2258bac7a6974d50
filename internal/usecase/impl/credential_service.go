// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"latch/config"
	deliverycontext "latch/internal/delivery/context"
	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/repository"
	"latch/internal/usecase"

	"github.com/pkg/errors"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	pinRepo repository.PinRepository
	cfg     *config.Config
	logger  *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	pinRepo repository.PinRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		pinRepo: pinRepo,
		cfg:     cfg,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadPins fetches all PINs owned by userID. Fetch failures degrade to an
// empty list: a collection that does not exist yet is not an error for the
// caller.
func (srv *credentialService) LoadPins(ctx context.Context, userID string) []*entity.Pin {
	pins, err := srv.pinRepo.FindPinsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load pins, returning empty collection",
			slog.Any("error", err),
			slog.String("user_id", userID),
		)

		return []*entity.Pin{}
	}

	if pins == nil {
		return []*entity.Pin{}
	}

	return pins
}

// AddPin validates in a fixed order, short-circuiting on the first failing
// rule, and persists only when every rule passes.
func (srv *credentialService) AddPin(ctx context.Context, userID, code, name string) (*entity.Pin, error) {
	if code == "" {
		return nil, domainerrors.ErrPinCodeEmpty
	}
	if name == "" {
		return nil, domainerrors.ErrPinNameEmpty
	}
	if len(code) < srv.cfg.Access.MinPinLength || len(code) > srv.cfg.Access.MaxPinLength {
		return nil, domainerrors.ErrPinInvalidLength
	}
	if !allDigits(code) {
		return nil, domainerrors.ErrPinNotNumeric
	}

	// The quota check is not transactionally safe against concurrent adders
	// from two sessions of the same account; the race can exceed the quota
	// by at most the number of concurrent adders minus one. Accepted limit.
	count, err := srv.pinRepo.CountPinsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pins")
	}
	if count >= srv.cfg.Access.MaxPins {
		return nil, domainerrors.ErrPinQuotaExceeded
	}

	existing, err := srv.pinRepo.FindPinsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pins for duplicate check")
	}
	for _, pin := range existing {
		if pin.Code == code {
			return nil, domainerrors.ErrPinDuplicate
		}
	}

	created, err := srv.pinRepo.CreatePin(ctx, &entity.Pin{
		UserID:    userID,
		DeviceID:  entity.DoorDeviceID,
		Code:      code,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pin")
	}

	srv.log(ctx).Info("PIN created",
		slog.String("user_id", userID),
		slog.String("pin_id", created.ID),
	)

	return created, nil
}

// DeletePin removes a PIN by identifier.
func (srv *credentialService) DeletePin(ctx context.Context, userID, pinID string) error {
	if err := srv.pinRepo.DeletePin(ctx, userID, pinID); err != nil {
		if errors.Is(err, repository.ErrPinNotFound) {
			return domainerrors.ErrPinNotFound
		}

		return errors.Wrap(err, "failed to delete pin")
	}

	srv.log(ctx).Info("PIN deleted",
		slog.String("user_id", userID),
		slog.String("pin_id", pinID),
	)

	return nil
}

// Verify compares the entered code against the cached list by exact string
// equality. Codes are compared in plaintext; attempt throttling lives in the
// door controller, not here.
func (srv *credentialService) Verify(code string, pins []*entity.Pin) (*entity.Pin, bool) {
	for _, pin := range pins {
		if pin.Code == code {
			return pin, true
		}
	}

	return nil, false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
