package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	mockusecase "latch/internal/mocks/usecase"
)

func TestPinHandler_CreatePinRejectsLongName(t *testing.T) {
	creds := mockusecase.NewMockCredentialUsecase(t)
	handler := NewPinHandler(creds, handlerLogger())

	body := `{"code":"1234","name":"` + strings.Repeat("n", 21) + `"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/pins", body, testAccount("user-1"))

	err := handler.CreatePin(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	// The mock fails the test if AddPin is reached.
}

func TestPinHandler_CreatePinAcceptsMaxLengthName(t *testing.T) {
	name := strings.Repeat("n", 20)
	creds := mockusecase.NewMockCredentialUsecase(t)
	creds.EXPECT().AddPin(mock.Anything, "user-1", "1234", name).
		Return(&entity.Pin{ID: "p1", UserID: "user-1", Code: "1234", Name: name}, nil)
	handler := NewPinHandler(creds, handlerLogger())

	body := `{"code":"1234","name":"` + name + `"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/pins", body, testAccount("user-1"))

	require.NoError(t, handler.CreatePin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
