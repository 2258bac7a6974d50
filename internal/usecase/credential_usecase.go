// Package usecase defines the application-specific business rule interfaces.
package usecase

import (
	"context"

	"latch/internal/domain/entity"
)

// CredentialUsecase manages the bounded, per-user PIN collection.
type CredentialUsecase interface {
	// LoadPins fetches all PINs owned by userID. On fetch failure it logs
	// and returns an empty list instead of propagating: a first-time user
	// has no PIN collection yet and the caller must not crash on that.
	LoadPins(ctx context.Context, userID string) []*entity.Pin

	// AddPin validates and persists a new PIN. Validation rules run in a
	// fixed order and the first failure short-circuits with a specific
	// user-facing reason. No write is attempted on validation failure.
	AddPin(ctx context.Context, userID, code, name string) (*entity.Pin, error)

	// DeletePin removes a PIN by identifier. There is no undo; the caller
	// confirms before invoking.
	DeletePin(ctx context.Context, userID, pinID string) error

	// Verify compares an entered code against an in-memory PIN list by
	// exact string equality. Pure; no I/O, no rate limiting at this layer.
	Verify(code string, pins []*entity.Pin) (*entity.Pin, bool)
}
