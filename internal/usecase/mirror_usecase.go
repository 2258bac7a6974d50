package usecase

import (
	"context"

	"latch/internal/domain/entity"
)

// MirrorUsecase keeps a local boolean read-model in sync with the remote
// store for the door and an open set of secondary devices. It is
// push-driven: correctness depends on the store delivering ordered,
// eventually-consistent snapshots per document.
type MirrorUsecase interface {
	// Start opens the door and devices subscriptions on behalf of the given
	// account. It is a no-op if already started.
	Start(ctx context.Context, user *entity.Account) error

	// Stop tears the subscriptions down deterministically. Safe to call on
	// every exit path, including error paths.
	Stop()

	// Device returns the last known snapshot for a device id.
	Device(id string) (*entity.DeviceState, bool)

	// Devices returns the last known snapshot of every mirrored device.
	Devices() []*entity.DeviceState

	// Door returns the last known door snapshot.
	Door() (*entity.DeviceState, bool)

	// SetStatus issues a narrow merge-write of the device's status field
	// plus lastUpdated and updatedBy. The local read-model is not touched
	// until the subscription echoes the write back.
	SetStatus(ctx context.Context, deviceID string, value bool, actor string) error

	// AddDevice creates a new window or light document and returns its id.
	AddDevice(ctx context.Context, kind entity.DeviceKind, name, actor string) (string, error)
}
