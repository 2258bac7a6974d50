package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"latch/internal/domain/entity"
	"latch/internal/domain/repository"
)

// Document field names of the PIN collection.
const (
	pinFieldUserID    = "userId"
	pinFieldDeviceID  = "deviceId"
	pinFieldCode      = "code"
	pinFieldName      = "name"
	pinFieldCreatedAt = "createdAt"
)

// PinRepository implements repository.PinRepository on a Firestore
// collection. One document per PIN, owner recorded in the userId field.
type PinRepository struct {
	client     *firestore.Client
	collection string
}

// NewPinRepository wraps an initialized Firestore client.
func NewPinRepository(client *firestore.Client, collection string) *PinRepository {
	return &PinRepository{
		client:     client,
		collection: collection,
	}
}

var _ repository.PinRepository = (*PinRepository)(nil)

// CreatePin persists a new PIN. The identifier and creation timestamp are
// assigned by the store and read back before returning.
func (r *PinRepository) CreatePin(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, map[string]any{
		pinFieldUserID:    pin.UserID,
		pinFieldDeviceID:  pin.DeviceID,
		pinFieldCode:      pin.Code,
		pinFieldName:      pin.Name,
		pinFieldCreatedAt: firestore.ServerTimestamp,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pin document")
	}

	snapshot, err := ref.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back created pin")
	}

	return pinFromSnapshot(snapshot), nil
}

// FindPinsByUser retrieves all PINs owned by a user.
func (r *PinRepository) FindPinsByUser(ctx context.Context, userID string) ([]*entity.Pin, error) {
	iter := r.client.Collection(r.collection).Where(pinFieldUserID, "==", userID).Documents(ctx)
	defer iter.Stop()

	var pins []*entity.Pin
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate pins")
		}
		pins = append(pins, pinFromSnapshot(snapshot))
	}

	return pins, nil
}

// CountPinsByUser returns the number of PINs a user currently holds.
func (r *PinRepository) CountPinsByUser(ctx context.Context, userID string) (int, error) {
	docs, err := r.client.Collection(r.collection).
		Where(pinFieldUserID, "==", userID).
		Select().
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pins")
	}

	return len(docs), nil
}

// DeletePin removes a PIN after confirming it belongs to userID.
func (r *PinRepository) DeletePin(ctx context.Context, userID, pinID string) error {
	ref := r.client.Collection(r.collection).Doc(pinID)

	snapshot, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPinNotFound
		}

		return errors.Wrap(err, "failed to load pin for delete")
	}

	if owner, _ := snapshot.Data()[pinFieldUserID].(string); owner != userID {
		return repository.ErrPinNotFound
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete pin")
	}

	return nil
}

func pinFromSnapshot(snapshot *firestore.DocumentSnapshot) *entity.Pin {
	fields := snapshot.Data()

	userID, _ := fields[pinFieldUserID].(string)
	deviceID, _ := fields[pinFieldDeviceID].(string)
	code, _ := fields[pinFieldCode].(string)
	name, _ := fields[pinFieldName].(string)
	createdAt, _ := fields[pinFieldCreatedAt].(time.Time)

	return &entity.Pin{
		ID:        snapshot.Ref.ID,
		UserID:    userID,
		DeviceID:  deviceID,
		Code:      code,
		Name:      name,
		CreatedAt: createdAt,
	}
}
