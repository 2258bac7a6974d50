package usecase

import (
	"context"

	"latch/internal/domain/entity"
)

// DoorView is what the UI renders after each door interaction: the active
// phase and an optional user-facing message. Recoverable authentication
// outcomes (PIN mismatch, biometric fallback) surface here, not as errors.
type DoorView struct {
	Phase   entity.DoorPhase `json:"phase"`
	Message string           `json:"message,omitempty"`
}

// DoorUsecase gates the door-open transition behind an authentication step.
// Closing is deliberately ungated: the asymmetry is a product decision and
// must be preserved. One unlock flow is tracked per user.
type DoorUsecase interface {
	// State reports the current phase for the user, derived from the mirror
	// when no unlock flow is active.
	State(ctx context.Context, user *entity.Account) DoorView

	// RequestOpen starts an unlock flow while the door is closed.
	RequestOpen(ctx context.Context, user *entity.Account) (DoorView, error)

	// ChooseBiometric runs the platform biometric prompt. If hardware is
	// absent or nothing is enrolled it falls back to the method choice with
	// an explanatory message instead of attempting authentication.
	ChooseBiometric(ctx context.Context, user *entity.Account) (DoorView, error)

	// ChoosePin switches the flow to PIN entry.
	ChoosePin(ctx context.Context, user *entity.Account) (DoorView, error)

	// SubmitPin verifies an entered code. A mismatch clears the buffer,
	// sets a generic error and stays in PIN entry.
	SubmitPin(ctx context.Context, user *entity.Account, code string) (DoorView, error)

	// Cancel abandons the transient state: method choice returns to closed,
	// biometric and PIN entry return to method choice. No partial side
	// effects remain.
	Cancel(ctx context.Context, user *entity.Account) (DoorView, error)

	// RequestClose closes the door with no authentication gate.
	RequestClose(ctx context.Context, user *entity.Account) (DoorView, error)
}
