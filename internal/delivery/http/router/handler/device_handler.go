package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"latch/internal/delivery/http/middleware"
	"latch/internal/delivery/http/response"
	"latch/internal/domain/entity"
	"latch/internal/usecase"
)

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc     usecase.MirrorUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.MirrorUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateDeviceInput is the request body for adding a secondary device. The
// door is a fixed singleton and cannot be created here.
type CreateDeviceInput struct {
	Kind string `json:"kind" validate:"required,oneof=window light"`
	Name string `json:"name" validate:"required,max=40"`
}

// SetStatusInput is the request body for a status write.
type SetStatusInput struct {
	Value *bool `json:"value" validate:"required"`
}

// ListDevices returns the mirrored snapshot of every known device.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, h.uc.Devices(), "Devices retrieved successfully")
}

// GetDevice returns the mirrored snapshot of one device.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	device, ok := h.uc.Device(c.Param("id"))
	if !ok {
		return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// CreateDevice adds a new window or light document to the remote store.
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input CreateDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	id, err := h.uc.AddDevice(c.Request().Context(), entity.DeviceKind(input.Kind), input.Name, account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Device created successfully")
}

// SetStatus writes the device's boolean status to the remote store. The
// mirrored snapshot updates only when the subscription echoes the write.
// The door is off limits here: opening and closing it must go through the
// door endpoints so the unlock flow cannot be skipped.
func (h *DeviceHandler) SetStatus(c echo.Context) error {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if c.Param("id") == entity.DoorDeviceID {
		return response.Error(c, http.StatusForbidden, "DOOR_WRITE_FORBIDDEN",
			"The door can only be operated through the door endpoints", "")
	}

	var input SetStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetStatus(c.Request().Context(), c.Param("id"), *input.Value, account.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}
