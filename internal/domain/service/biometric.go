package service

import "context"

// BiometricOutcome is the result of a platform biometric prompt.
type BiometricOutcome string

const (
	// BiometricSuccess means the user passed biometric verification.
	BiometricSuccess BiometricOutcome = "success"
	// BiometricFailure means verification did not match.
	BiometricFailure BiometricOutcome = "failure"
	// BiometricCancelled means the user dismissed the prompt.
	BiometricCancelled BiometricOutcome = "cancelled"
)

// BiometricAuthenticator exposes the platform biometric capability. When
// hardware is absent or nothing is enrolled, callers must not invoke
// Authenticate and should steer the user to the PIN path instead.
type BiometricAuthenticator interface {
	// HasHardware reports whether biometric hardware is present.
	HasHardware() bool

	// IsEnrolled reports whether at least one biometric credential is enrolled.
	IsEnrolled() bool

	// Authenticate shows the platform prompt and reports the outcome.
	Authenticate(ctx context.Context, prompt string) (BiometricOutcome, error)
}
