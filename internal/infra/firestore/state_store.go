// Package firestore adapts Cloud Firestore to the store interfaces. It is
// the production backend for device state and PIN persistence: per-document
// ordered snapshot listeners, field-merge writes resolving last-write-wins,
// no transactions across documents.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"latch/internal/domain/entity"
	"latch/internal/domain/service"
)

const (
	snapshotBuffer = 16
	restartDelay   = time.Second
)

// StateStore implements service.StateStore on a Firestore client.
type StateStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewStateStore wraps an initialized Firestore client.
func NewStateStore(client *firestore.Client, logger *slog.Logger) *StateStore {
	return &StateStore{
		client: client,
		logger: logger,
	}
}

var _ service.StateStore = (*StateStore)(nil)

// WatchDocument streams snapshots of a single document until ctx is
// cancelled. Listener errors are logged and the listener is restarted; the
// consumer keeps its last good snapshot meanwhile.
func (s *StateStore) WatchDocument(ctx context.Context, path string) (<-chan *entity.DeviceState, error) {
	ch := make(chan *entity.DeviceState, snapshotBuffer)

	go func() {
		defer close(ch)

		for ctx.Err() == nil {
			iter := s.client.Doc(path).Snapshots(ctx)
			for {
				snapshot, err := iter.Next()
				if err != nil {
					iter.Stop()
					if status.Code(err) == codes.Canceled || ctx.Err() != nil {
						return
					}
					s.logger.Warn("Document listener dropped, restarting",
						slog.Any("error", err),
						slog.String("path", path),
					)
					sleepCtx(ctx, restartDelay)

					break
				}
				if !snapshot.Exists() {
					continue
				}
				deliver(ctx, ch, entity.DeviceFromFields(snapshot.Ref.ID, snapshot.Data()))
			}
		}
	}()

	return ch, nil
}

// WatchCollection streams one snapshot per added or modified document in a
// collection until ctx is cancelled.
func (s *StateStore) WatchCollection(ctx context.Context, path string) (<-chan *entity.DeviceState, error) {
	ch := make(chan *entity.DeviceState, snapshotBuffer)

	go func() {
		defer close(ch)

		for ctx.Err() == nil {
			iter := s.client.Collection(path).Snapshots(ctx)
			for {
				querySnapshot, err := iter.Next()
				if err != nil {
					iter.Stop()
					if status.Code(err) == codes.Canceled || ctx.Err() != nil {
						return
					}
					s.logger.Warn("Collection listener dropped, restarting",
						slog.Any("error", err),
						slog.String("path", path),
					)
					sleepCtx(ctx, restartDelay)

					break
				}
				for _, change := range querySnapshot.Changes {
					if change.Kind == firestore.DocumentRemoved {
						continue
					}
					deliver(ctx, ch, entity.DeviceFromFields(change.Doc.Ref.ID, change.Doc.Data()))
				}
			}
		}
	}()

	return ch, nil
}

// MergeWrite sets only the named fields, leaving all others untouched.
func (s *StateStore) MergeWrite(ctx context.Context, path string, fields map[string]any) error {
	if _, err := s.client.Doc(path).Set(ctx, fields, firestore.MergeAll); err != nil {
		return errors.Wrapf(err, "merge write to %s failed", path)
	}

	return nil
}

// CreateDocument adds a document with a store-assigned identifier.
func (s *StateStore) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", errors.Wrapf(err, "create document in %s failed", collection)
	}

	return ref.ID, nil
}

func deliver(ctx context.Context, ch chan<- *entity.DeviceState, snapshot *entity.DeviceState) {
	select {
	case ch <- snapshot:
	case <-ctx.Done():
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
