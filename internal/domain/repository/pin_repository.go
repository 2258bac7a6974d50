// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"latch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for PIN persistence.
var (
	// ErrPinNotFound is returned when a PIN is not found.
	ErrPinNotFound = errors.New("pin not found")
)

// PinRepository defines the interface for PIN-related store operations.
// Reads are one-shot collection reads; there is no subscription on PINs.
type PinRepository interface {
	// CreatePin persists a new PIN and returns it with the store-assigned
	// identifier and creation timestamp filled in.
	CreatePin(ctx context.Context, pin *entity.Pin) (*entity.Pin, error)

	// FindPinsByUser retrieves all PINs owned by a user.
	FindPinsByUser(ctx context.Context, userID string) ([]*entity.Pin, error)

	// CountPinsByUser returns the number of PINs currently owned by a user.
	CountPinsByUser(ctx context.Context, userID string) (int, error)

	// DeletePin removes a PIN owned by userID by its identifier.
	DeletePin(ctx context.Context, userID, pinID string) error
}
