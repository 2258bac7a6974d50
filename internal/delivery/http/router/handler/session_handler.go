package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"latch/internal/delivery/http/middleware"
	"latch/internal/delivery/http/response"
	"latch/internal/usecase"
)

// SessionHandler starts and stops the device synchronization session. The
// mirror runs at most one session per process, so the handler records which
// account owns it: a second account cannot hijack or tear down a running
// session.
type SessionHandler struct {
	uc     usecase.MirrorUsecase
	logger *slog.Logger

	mu    sync.Mutex
	owner string
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.MirrorUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Start opens the store subscriptions for the authenticated account.
// Idempotent for the owning account; a different account gets a conflict
// while a session is running.
func (h *SessionHandler) Start(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.owner != "" && h.owner != account.ID {
		return response.Error(c, http.StatusConflict, "SESSION_ACTIVE",
			"A synchronization session for another account is already running", "")
	}

	if err := h.uc.Start(c.Request().Context(), account); err != nil {
		return errors.WithStack(err)
	}
	h.owner = account.ID

	return response.Success(c, http.StatusOK, nil, "Synchronization started")
}

// Stop tears the subscriptions down. Only the owning account may stop a
// running session; with no session running it is a no-op.
func (h *SessionHandler) Stop(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.owner != "" && h.owner != account.ID {
		return response.Error(c, http.StatusForbidden, "NOT_SESSION_OWNER",
			"Only the session owner can stop synchronization", "")
	}

	h.uc.Stop()
	h.owner = ""

	return response.Success(c, http.StatusOK, nil, "Synchronization stopped")
}
