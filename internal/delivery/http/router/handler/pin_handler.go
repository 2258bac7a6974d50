// Package handler contains the HTTP handlers for the application.
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

// PinHandler holds dependencies for PIN-related handlers.
type PinHandler struct {
	uc     usecase.CredentialUsecase
	logger *slog.Logger
}

// NewPinHandler is the constructor for PinHandler, injected by Fx.
func NewPinHandler(uc usecase.CredentialUsecase, logger *slog.Logger) *PinHandler {
	return &PinHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePinInput is the request body for creating a PIN. Code rules
// (length, digits, quota, duplicates) are enforced by the usecase so the
// caller gets the specific reason in a fixed order; only the name length
// cap lives at the delivery layer.
type CreatePinInput struct {
	Code string `json:"code"`
	Name string `json:"name" validate:"max=20"`
}

// ListPins returns every PIN the user owns.
func (h *PinHandler) ListPins(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	pins := h.uc.LoadPins(c.Request().Context(), account.ID)

	return response.Success(c, http.StatusOK, pins, "PINs retrieved successfully")
}

// CreatePin validates and stores a new PIN.
func (h *PinHandler) CreatePin(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input CreatePinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid PIN input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	pin, err := h.uc.AddPin(c.Request().Context(), account.ID, input.Code, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pin, "PIN created successfully")
}

// DeletePin removes a PIN by id. There is no undo.
func (h *PinHandler) DeletePin(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.DeletePin(c.Request().Context(), account.ID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "PIN deleted successfully")
}
