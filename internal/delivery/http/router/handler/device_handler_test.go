package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"latch/internal/delivery/http/validator"
	"latch/internal/domain/entity"
	mockusecase "latch/internal/mocks/usecase"
)

func handlerLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testAccount(id string) *entity.Account {
	return &entity.Account{
		ID:    id,
		Email: id + "@example.com",
	}
}

// newTestContext builds an echo context with the validator wired and the
// given account resolved, the way the auth middleware leaves it.
func newTestContext(t *testing.T, method, target, body string, account *entity.Account) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if account != nil {
		c.Set("account", account)
	}

	return c, rec
}

func TestDeviceHandler_SetStatusRejectsDoor(t *testing.T) {
	mirror := mockusecase.NewMockMirrorUsecase(t)
	handler := NewDeviceHandler(mirror, handlerLogger())

	c, rec := newTestContext(t, http.MethodPut, "/api/devices/door/status", `{"value":true}`, testAccount("user-1"))
	c.SetParamNames("id")
	c.SetParamValues(entity.DoorDeviceID)

	require.NoError(t, handler.SetStatus(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "DOOR_WRITE_FORBIDDEN")
	// The mock fails the test if SetStatus reaches the mirror.
}

func TestDeviceHandler_SetStatusWritesSecondaryDevice(t *testing.T) {
	mirror := mockusecase.NewMockMirrorUsecase(t)
	mirror.EXPECT().SetStatus(mock.Anything, "d1", true, "user-1").Return(nil)
	handler := NewDeviceHandler(mirror, handlerLogger())

	c, rec := newTestContext(t, http.MethodPut, "/api/devices/d1/status", `{"value":true}`, testAccount("user-1"))
	c.SetParamNames("id")
	c.SetParamValues("d1")

	require.NoError(t, handler.SetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
