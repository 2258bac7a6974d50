package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"latch/internal/delivery/http/middleware"
	"latch/internal/delivery/http/response"
	"latch/internal/usecase"
)

// DoorHandler holds dependencies for door flow handlers. Every endpoint
// returns the resulting door view so the client can render the next step.
type DoorHandler struct {
	uc     usecase.DoorUsecase
	logger *slog.Logger
}

// NewDoorHandler is the constructor for DoorHandler, injected by Fx.
func NewDoorHandler(uc usecase.DoorUsecase, logger *slog.Logger) *DoorHandler {
	return &DoorHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitPinInput is the request body for a PIN entry attempt.
type SubmitPinInput struct {
	Code string `json:"code"`
}

// State reports the current door phase for the user.
func (h *DoorHandler) State(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view := h.uc.State(c.Request().Context(), account)

	return response.Success(c, http.StatusOK, view, "")
}

// Open starts the unlock flow.
func (h *DoorHandler) Open(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.RequestOpen(c.Request().Context(), account)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Biometric runs the biometric authentication step.
func (h *DoorHandler) Biometric(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.ChooseBiometric(c.Request().Context(), account)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Pin switches the unlock flow to PIN entry.
func (h *DoorHandler) Pin(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.ChoosePin(c.Request().Context(), account)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SubmitPin verifies an entered code.
func (h *DoorHandler) SubmitPin(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input SubmitPinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid PIN entry input")
	}

	view, err := h.uc.SubmitPin(c.Request().Context(), account, input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Cancel abandons the current unlock step.
func (h *DoorHandler) Cancel(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.Cancel(c.Request().Context(), account)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Close closes the door. No authentication step is required beyond the
// bearer token.
func (h *DoorHandler) Close(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.RequestClose(c.Request().Context(), account)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
