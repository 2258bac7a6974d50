package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"latch/config"
	deliverycontext "latch/internal/delivery/context"
	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/service"
	"latch/internal/usecase"

	"github.com/pkg/errors"
)

// mirrorService implements the MirrorUsecase interface. It holds a
// read-only cached copy of the remote device documents; the store remains
// the sole source of truth.
type mirrorService struct {
	store    service.StateStore
	notifier service.Notifier
	cfg      *config.Config
	logger   *slog.Logger

	mu      sync.RWMutex
	devices map[string]*entity.DeviceState
	seen    map[string]bool // device id -> observed during this subscription lifetime
	user    *entity.Account
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewMirrorService is the constructor for mirrorService.
func NewMirrorService(
	store service.StateStore,
	notifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MirrorUsecase {
	return &mirrorService{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		devices:  make(map[string]*entity.DeviceState),
		seen:     make(map[string]bool),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mirrorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start opens the door document watch and the devices collection watch.
// Without an authenticated account nothing is subscribed.
func (srv *mirrorService) Start(ctx context.Context, user *entity.Account) error {
	if user == nil {
		return domainerrors.ErrUnauthorized
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.cancel != nil {
		return nil
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	doorCh, err := srv.store.WatchDocument(subCtx, srv.cfg.Store.DoorDocument)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch door document")
	}

	devicesCh, err := srv.store.WatchCollection(subCtx, srv.cfg.Store.DevicesCollection)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch devices collection")
	}

	srv.user = user
	srv.cancel = cancel
	// A fresh subscription lifetime: every device's next snapshot counts as
	// the initial observation and must not notify.
	srv.seen = make(map[string]bool)

	srv.wg.Add(2)
	go srv.consume(subCtx, doorCh)
	go srv.consume(subCtx, devicesCh)

	srv.log(ctx).Info("Device mirror started",
		slog.String("user_id", user.ID),
		slog.String("door_document", srv.cfg.Store.DoorDocument),
		slog.String("devices_collection", srv.cfg.Store.DevicesCollection),
	)

	return nil
}

// Stop cancels the subscriptions and waits for both consumers to drain so
// no callback fires after the owner is gone. The last good snapshots stay
// visible.
func (srv *mirrorService) Stop() {
	srv.mu.Lock()
	cancel := srv.cancel
	srv.cancel = nil
	srv.user = nil
	srv.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	srv.wg.Wait()
}

// consume drains one snapshot stream until the store closes it.
func (srv *mirrorService) consume(ctx context.Context, snapshots <-chan *entity.DeviceState) {
	defer srv.wg.Done()

	for snapshot := range snapshots {
		if snapshot == nil {
			continue
		}
		srv.apply(ctx, snapshot)
	}
}

// apply updates the read model with one snapshot and emits a change alert
// when the boolean status flipped and this is not the first observation.
func (srv *mirrorService) apply(ctx context.Context, snapshot *entity.DeviceState) {
	srv.mu.Lock()
	previous := false
	if known, ok := srv.devices[snapshot.ID]; ok {
		previous = known.Status
	}
	first := !srv.seen[snapshot.ID]
	srv.seen[snapshot.ID] = true
	srv.devices[snapshot.ID] = snapshot
	user := srv.user
	srv.mu.Unlock()

	alert, ok := entity.TransitionAlert(snapshot.Kind, snapshot.Name, previous, snapshot.Status, first)
	if !ok || user == nil {
		return
	}

	// Fire-and-forget: a lost alert never blocks or fails the read model.
	if err := srv.notifier.Notify(ctx, user.ID, alert.Title, alert.Body); err != nil {
		srv.log(ctx).Warn("Failed to deliver change alert",
			slog.Any("error", err),
			slog.String("device_id", snapshot.ID),
		)
	}
}

// Device returns the last known snapshot for one device.
func (srv *mirrorService) Device(id string) (*entity.DeviceState, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	device, ok := srv.devices[id]

	return device, ok
}

// Devices returns the last known snapshot of every mirrored device.
func (srv *mirrorService) Devices() []*entity.DeviceState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	devices := make([]*entity.DeviceState, 0, len(srv.devices))
	for _, device := range srv.devices {
		devices = append(devices, device)
	}

	return devices
}

// Door returns the last known door snapshot.
func (srv *mirrorService) Door() (*entity.DeviceState, bool) {
	return srv.Device(entity.DoorDeviceID)
}

// SetStatus issues a merge-write containing only the status field plus
// lastUpdated and updatedBy. No optimistic local update happens here; the
// read model changes when the subscription echoes the write.
func (srv *mirrorService) SetStatus(ctx context.Context, deviceID string, value bool, actor string) error {
	kind := entity.KindDoor
	path := srv.cfg.Store.DoorDocument

	if deviceID != entity.DoorDeviceID {
		device, ok := srv.Device(deviceID)
		if !ok {
			return domainerrors.ErrDeviceNotFound
		}
		kind = device.Kind
		path = srv.cfg.Store.DevicesCollection + "/" + deviceID
	}

	fields := map[string]any{
		kind.StatusField():      value,
		entity.FieldLastUpdated: time.Now().UTC(),
		entity.FieldUpdatedBy:   actor,
	}

	if err := srv.store.MergeWrite(ctx, path, fields); err != nil {
		srv.log(ctx).Error("Merge write failed",
			slog.Any("error", err),
			slog.String("device_id", deviceID),
			slog.Bool("value", value),
		)

		return errors.Wrap(domainerrors.ErrStoreWriteFailed, err.Error())
	}

	return nil
}

// AddDevice creates a new secondary device document. The door is a fixed
// singleton and cannot be added.
func (srv *mirrorService) AddDevice(ctx context.Context, kind entity.DeviceKind, name, actor string) (string, error) {
	if !kind.Valid() || kind == entity.KindDoor {
		return "", domainerrors.ErrDeviceInvalidKind
	}

	fields := map[string]any{
		entity.FieldType:        string(kind),
		entity.FieldName:        name,
		kind.StatusField():      false,
		entity.FieldLastUpdated: time.Now().UTC(),
		entity.FieldUpdatedBy:   actor,
	}

	id, err := srv.store.CreateDocument(ctx, srv.cfg.Store.DevicesCollection, fields)
	if err != nil {
		return "", errors.Wrap(err, "failed to create device document")
	}

	srv.log(ctx).Info("Device created",
		slog.String("device_id", id),
		slog.String("kind", string(kind)),
	)

	return id, nil
}
