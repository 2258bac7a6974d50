package impl

import (
	"context"
	"log/slog"
	"sync"

	"latch/config"
	deliverycontext "latch/internal/delivery/context"
	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/service"
	"latch/internal/usecase"
)

const biometricPrompt = "Unlock the front door"

// doorFlow is the live state of one user's unlock or close operation. A
// flow exists only while the user is inside a transient phase; the resting
// phases (closed/open) are derived from the mirror so a remote writer
// changing the door is reflected immediately.
type doorFlow struct {
	phase   entity.DoorPhase
	session *entity.UnlockSession
}

// doorService implements the DoorUsecase interface as an explicit tagged
// state machine. Opening requires an authentication step; closing never
// does. That asymmetry is a product decision and is preserved here.
type doorService struct {
	mirror      usecase.MirrorUsecase
	credentials usecase.CredentialUsecase
	biometric   service.BiometricAuthenticator
	cfg         *config.Config
	logger      *slog.Logger

	mu    sync.Mutex
	flows map[string]*doorFlow // keyed by user id
}

// NewDoorService is the constructor for doorService.
func NewDoorService(
	mirror usecase.MirrorUsecase,
	credentials usecase.CredentialUsecase,
	biometric service.BiometricAuthenticator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DoorUsecase {
	return &doorService{
		mirror:      mirror,
		credentials: credentials,
		biometric:   biometric,
		cfg:         cfg,
		logger:      logger,
		flows:       make(map[string]*doorFlow),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *doorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// restingPhase derives the idle phase from the mirrored door state.
func (srv *doorService) restingPhase() entity.DoorPhase {
	if door, ok := srv.mirror.Door(); ok && door.Status {
		return entity.DoorOpen
	}

	return entity.DoorClosed
}

// view renders the current phase and message for a user. Callers must hold
// the mutex.
func (srv *doorService) viewLocked(userID string) usecase.DoorView {
	flow, ok := srv.flows[userID]
	if !ok {
		return usecase.DoorView{Phase: srv.restingPhase()}
	}

	view := usecase.DoorView{Phase: flow.phase}
	if flow.session != nil {
		view.Message = flow.session.Message
	}

	return view
}

// State reports the current phase for the user.
func (srv *doorService) State(ctx context.Context, user *entity.Account) usecase.DoorView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.viewLocked(user.ID)
}

// RequestOpen moves Closed -> AwaitingMethodChoice and creates the
// ephemeral unlock session.
func (srv *doorService) RequestOpen(ctx context.Context, user *entity.Account) (usecase.DoorView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if flow, ok := srv.flows[user.ID]; ok {
		if flow.phase == entity.DoorBusy {
			return srv.viewLocked(user.ID), domainerrors.ErrDoorBusy
		}

		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	if srv.restingPhase() != entity.DoorClosed {
		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	srv.flows[user.ID] = &doorFlow{
		phase:   entity.DoorAwaitingMethodChoice,
		session: &entity.UnlockSession{},
	}

	return srv.viewLocked(user.ID), nil
}

// ChoosePin moves the flow to PIN entry and snapshots the user's PIN
// collection into the session for verification.
func (srv *doorService) ChoosePin(ctx context.Context, user *entity.Account) (usecase.DoorView, error) {
	srv.mu.Lock()
	flow, ok := srv.flows[user.ID]
	if !ok || flow.phase != entity.DoorAwaitingMethodChoice {
		defer srv.mu.Unlock()

		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}
	srv.mu.Unlock()

	// Pull-based load; the session keeps a reference for comparison only.
	pins := srv.credentials.LoadPins(ctx, user.ID)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	flow, ok = srv.flows[user.ID]
	if !ok || flow.phase != entity.DoorAwaitingMethodChoice {
		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	flow.phase = entity.DoorAwaitingPinEntry
	flow.session.Method = entity.MethodPin
	flow.session.Pins = pins
	flow.session.Message = ""

	return srv.viewLocked(user.ID), nil
}

// ChooseBiometric runs the platform biometric prompt. Hardware absence or
// no enrollment short-circuits back to the method choice with an
// explanatory message, without ever invoking the prompt.
func (srv *doorService) ChooseBiometric(ctx context.Context, user *entity.Account) (usecase.DoorView, error) {
	srv.mu.Lock()
	flow, ok := srv.flows[user.ID]
	if !ok || flow.phase != entity.DoorAwaitingMethodChoice {
		defer srv.mu.Unlock()

		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	if !srv.biometric.HasHardware() || !srv.biometric.IsEnrolled() {
		flow.session.Message = "Biometric verification is not available on this device, use your PIN instead"
		defer srv.mu.Unlock()

		return srv.viewLocked(user.ID), nil
	}

	flow.phase = entity.DoorAwaitingBiometric
	flow.session.Method = entity.MethodBiometric
	flow.session.Message = ""
	srv.mu.Unlock()

	// The prompt blocks on user interaction; the mutex must not be held.
	outcome, err := srv.biometric.Authenticate(ctx, biometricPrompt)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	flow, ok = srv.flows[user.ID]
	if !ok || flow.phase != entity.DoorAwaitingBiometric {
		// The user cancelled while the prompt was up.
		return srv.viewLocked(user.ID), nil
	}

	if err != nil || outcome != service.BiometricSuccess {
		if err != nil {
			srv.log(ctx).Warn("Biometric authentication errored",
				slog.Any("error", err),
				slog.String("user_id", user.ID),
			)
		}
		flow.phase = entity.DoorAwaitingMethodChoice
		flow.session.Message = "Biometric verification did not complete, try again or use your PIN"

		return srv.viewLocked(user.ID), nil
	}

	return srv.openDoorLocked(ctx, user, flow)
}

// SubmitPin verifies one entered code against the session's PIN snapshot.
func (srv *doorService) SubmitPin(ctx context.Context, user *entity.Account, code string) (usecase.DoorView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	flow, ok := srv.flows[user.ID]
	if !ok || flow.phase != entity.DoorAwaitingPinEntry {
		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	flow.session.Buffer = code

	// Short codes are a format error; no verification is attempted.
	if len(code) < srv.cfg.Access.MinPinLength {
		flow.session.Buffer = ""
		flow.session.Message = "Enter at least 4 digits"

		return srv.viewLocked(user.ID), nil
	}

	if _, matched := srv.credentials.Verify(code, flow.session.Pins); !matched {
		// Never reveal which part of the entry was wrong, and clear the
		// buffer so partial feedback cannot guide guessing.
		flow.session.Buffer = ""
		flow.session.Failures++

		if flow.session.Failures >= srv.cfg.Access.MaxPinAttempts {
			delete(srv.flows, user.ID)
			srv.log(ctx).Warn("Unlock abandoned after repeated PIN failures",
				slog.String("user_id", user.ID),
				slog.Int("failures", srv.cfg.Access.MaxPinAttempts),
			)

			return usecase.DoorView{
				Phase:   srv.restingPhase(),
				Message: "Too many incorrect attempts",
			}, nil
		}

		flow.session.Message = "Incorrect PIN"

		return srv.viewLocked(user.ID), nil
	}

	return srv.openDoorLocked(ctx, user, flow)
}

// Cancel abandons the transient phase: method choice returns to closed,
// the credential prompts fall back to method choice. No partial side
// effects remain.
func (srv *doorService) Cancel(ctx context.Context, user *entity.Account) (usecase.DoorView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	flow, ok := srv.flows[user.ID]
	if !ok {
		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	switch flow.phase {
	case entity.DoorAwaitingMethodChoice:
		delete(srv.flows, user.ID)
	case entity.DoorAwaitingBiometric, entity.DoorAwaitingPinEntry:
		flow.phase = entity.DoorAwaitingMethodChoice
		flow.session.Buffer = ""
		flow.session.Message = ""
	case entity.DoorBusy:
		return srv.viewLocked(user.ID), domainerrors.ErrDoorBusy
	default:
		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	return srv.viewLocked(user.ID), nil
}

// RequestClose moves Open -> Busy -> Closed. Closing is not gated behind
// any authentication.
func (srv *doorService) RequestClose(ctx context.Context, user *entity.Account) (usecase.DoorView, error) {
	srv.mu.Lock()

	if flow, ok := srv.flows[user.ID]; ok {
		defer srv.mu.Unlock()
		if flow.phase == entity.DoorBusy {
			return srv.viewLocked(user.ID), domainerrors.ErrDoorBusy
		}

		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	if srv.restingPhase() != entity.DoorOpen {
		defer srv.mu.Unlock()

		return srv.viewLocked(user.ID), domainerrors.ErrDoorInvalidTransition
	}

	srv.flows[user.ID] = &doorFlow{phase: entity.DoorBusy}
	srv.mu.Unlock()

	err := srv.mirror.SetStatus(ctx, entity.DoorDeviceID, false, user.ID)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	delete(srv.flows, user.ID)

	if err != nil {
		srv.log(ctx).Error("Door close write failed",
			slog.Any("error", err),
			slog.String("user_id", user.ID),
		)

		return usecase.DoorView{Phase: entity.DoorOpen}, err
	}

	srv.log(ctx).Info("Door closed", slog.String("user_id", user.ID))

	return usecase.DoorView{Phase: entity.DoorClosed}, nil
}

// openDoorLocked performs the Busy -> Open leg after a successful
// verification. Callers hold the mutex; it is released around the write so
// the state machine stays observable (and cancellable) while the store
// round-trip is in flight. Exactly one write is issued.
func (srv *doorService) openDoorLocked(ctx context.Context, user *entity.Account, flow *doorFlow) (usecase.DoorView, error) {
	priorPhase := flow.phase
	flow.phase = entity.DoorBusy
	flow.session.Buffer = ""
	flow.session.Message = ""
	srv.mu.Unlock()

	err := srv.mirror.SetStatus(ctx, entity.DoorDeviceID, true, user.ID)

	srv.mu.Lock()

	if err != nil {
		// Never get stuck in Busy: fall back to the pre-write phase with a
		// surfaced error so the UI stays re-attemptable.
		flow.phase = priorPhase
		flow.session.Message = domainerrors.ErrStoreWriteFailed.Message()
		srv.log(ctx).Error("Door open write failed",
			slog.Any("error", err),
			slog.String("user_id", user.ID),
		)

		return srv.viewLocked(user.ID), err
	}

	delete(srv.flows, user.ID)
	srv.log(ctx).Info("Door opened",
		slog.String("user_id", user.ID),
		slog.String("method", string(flow.session.Method)),
	)

	return usecase.DoorView{Phase: entity.DoorOpen}, nil
}
