package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockusecase "latch/internal/mocks/usecase"
)

func TestSessionHandler_StopRequiresOwner(t *testing.T) {
	owner := testAccount("user-1")
	other := testAccount("user-2")

	mirror := mockusecase.NewMockMirrorUsecase(t)
	mirror.EXPECT().Start(mock.Anything, owner).Return(nil).Once()
	handler := NewSessionHandler(mirror, handlerLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/session", "", owner)
	require.NoError(t, handler.Start(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Another account cannot tear the session down.
	c, rec = newTestContext(t, http.MethodDelete, "/api/session", "", other)
	require.NoError(t, handler.Stop(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_SESSION_OWNER")

	// The owner can.
	mirror.EXPECT().Stop().Once()
	c, rec = newTestContext(t, http.MethodDelete, "/api/session", "", owner)
	require.NoError(t, handler.Stop(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_StartConflictsAcrossAccounts(t *testing.T) {
	owner := testAccount("user-1")
	other := testAccount("user-2")

	mirror := mockusecase.NewMockMirrorUsecase(t)
	mirror.EXPECT().Start(mock.Anything, owner).Return(nil).Once()
	handler := NewSessionHandler(mirror, handlerLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/session", "", owner)
	require.NoError(t, handler.Start(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(t, http.MethodPost, "/api/session", "", other)
	require.NoError(t, handler.Start(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_ACTIVE")

	// After the owner stops, the other account may start its own session.
	mirror.EXPECT().Stop().Once()
	c, _ = newTestContext(t, http.MethodDelete, "/api/session", "", owner)
	require.NoError(t, handler.Stop(c))

	mirror.EXPECT().Start(mock.Anything, other).Return(nil).Once()
	c, rec = newTestContext(t, http.MethodPost, "/api/session", "", other)
	require.NoError(t, handler.Start(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
