// Package biometric adapts the platform biometric capability. Servers have
// no fingerprint reader, so the default provider reports the capability as
// absent and the door controller steers users to the PIN path; the
// simulator exists for development and tests.
package biometric

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"latch/config"
	"latch/internal/domain/service"
)

const (
	providerNone      = "none"
	providerSimulator = "simulator"
)

// New creates a BiometricAuthenticator based on configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.BiometricAuthenticator, error) {
	if cfg.Biometric == nil || cfg.Biometric.Provider == "" || cfg.Biometric.Provider == providerNone {
		logger.Info("Biometric hardware not configured, PIN is the only unlock method")

		return &noneAuthenticator{}, nil
	}

	if cfg.Biometric.Provider != providerSimulator {
		return nil, errors.Errorf("unknown biometric provider: %s", cfg.Biometric.Provider)
	}

	outcome := service.BiometricOutcome(cfg.Biometric.SimulatorOutcome)
	switch outcome {
	case service.BiometricSuccess, service.BiometricFailure, service.BiometricCancelled:
	case "":
		outcome = service.BiometricSuccess
	default:
		return nil, errors.Errorf("unknown simulator outcome: %s", cfg.Biometric.SimulatorOutcome)
	}

	logger.Info("Using biometric simulator", slog.String("outcome", string(outcome)))

	return &simulatorAuthenticator{outcome: outcome}, nil
}

// noneAuthenticator reports no biometric capability at all.
type noneAuthenticator struct{}

func (a *noneAuthenticator) HasHardware() bool { return false }
func (a *noneAuthenticator) IsEnrolled() bool  { return false }

func (a *noneAuthenticator) Authenticate(ctx context.Context, prompt string) (service.BiometricOutcome, error) {
	return service.BiometricFailure, errors.New("biometric hardware not present")
}

// simulatorAuthenticator always reports enrolled hardware and returns a
// fixed outcome.
type simulatorAuthenticator struct {
	outcome service.BiometricOutcome
}

func (a *simulatorAuthenticator) HasHardware() bool { return true }
func (a *simulatorAuthenticator) IsEnrolled() bool  { return true }

func (a *simulatorAuthenticator) Authenticate(ctx context.Context, prompt string) (service.BiometricOutcome, error) {
	return a.outcome, nil
}
