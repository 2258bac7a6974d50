package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latch/internal/domain/entity"
	"latch/internal/domain/repository"
)

func TestPinRepository_Lifecycle(t *testing.T) {
	repo := NewPinRepository()
	ctx := context.Background()

	created, err := repo.CreatePin(ctx, &entity.Pin{
		UserID: "user-1",
		Code:   "1234",
		Name:   "Front door",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	count, err := repo.CountPinsByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Other users never see it.
	pins, err := repo.FindPinsByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, pins)

	pins, err = repo.FindPinsByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "1234", pins[0].Code)

	require.NoError(t, repo.DeletePin(ctx, "user-1", created.ID))

	count, err = repo.CountPinsByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPinRepository_DeleteMissing(t *testing.T) {
	repo := NewPinRepository()

	err := repo.DeletePin(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, repository.ErrPinNotFound)
}
