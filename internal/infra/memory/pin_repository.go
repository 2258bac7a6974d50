package memory

import (
	"context"
	"sync"
	"time"

	"latch/internal/domain/entity"
	"latch/internal/domain/repository"

	"github.com/google/uuid"
)

// PinRepository is an in-memory PinRepository for development and tests.
type PinRepository struct {
	mu   sync.Mutex
	pins map[string][]*entity.Pin // keyed by user id
}

// NewPinRepository creates an empty in-memory PIN repository.
func NewPinRepository() *PinRepository {
	return &PinRepository{
		pins: make(map[string][]*entity.Pin),
	}
}

var _ repository.PinRepository = (*PinRepository)(nil)

// CreatePin persists a new PIN with a generated identifier and timestamp.
func (r *PinRepository) CreatePin(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *pin
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now().UTC()

	r.pins[pin.UserID] = append(r.pins[pin.UserID], &created)

	copied := created

	return &copied, nil
}

// FindPinsByUser retrieves all PINs owned by a user.
func (r *PinRepository) FindPinsByUser(ctx context.Context, userID string) ([]*entity.Pin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.pins[userID]
	result := make([]*entity.Pin, 0, len(owned))
	for _, pin := range owned {
		copied := *pin
		result = append(result, &copied)
	}

	return result, nil
}

// CountPinsByUser returns the number of PINs a user currently holds.
func (r *PinRepository) CountPinsByUser(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pins[userID]), nil
}

// DeletePin removes a PIN owned by userID by its identifier.
func (r *PinRepository) DeletePin(ctx context.Context, userID, pinID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.pins[userID]
	for i, pin := range owned {
		if pin.ID == pinID {
			r.pins[userID] = append(owned[:i], owned[i+1:]...)

			return nil
		}
	}

	return repository.ErrPinNotFound
}
