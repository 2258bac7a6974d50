// Package memory provides in-memory implementations of the store
// interfaces for development and tests. The fake preserves the contracts
// that matter: field-level last-write-wins, per-document snapshot ordering,
// and no ordering guarantee across documents.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"latch/config"
	"latch/internal/domain/entity"
	"latch/internal/domain/service"
)

const snapshotBuffer = 16

type watcher struct {
	// prefix is the collection path for collection watchers, or the exact
	// document path for document watchers.
	prefix   string
	document bool
	ch       chan *entity.DeviceState
}

// StateStore is an in-memory multi-writer document store.
type StateStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]any
	watchers []*watcher
	nextID   int
}

// NewStateStore creates the store and seeds the fixed door singleton at the
// configured document path.
func NewStateStore(cfg *config.Config) *StateStore {
	store := &StateStore{
		docs: make(map[string]map[string]any),
	}

	if cfg != nil && cfg.Store != nil && cfg.Store.DoorDocument != "" {
		store.docs[cfg.Store.DoorDocument] = map[string]any{
			entity.FieldType:   string(entity.KindDoor),
			entity.FieldName:   "Front door",
			entity.FieldIsOpen: false,
		}
	}

	return store
}

var _ service.StateStore = (*StateStore)(nil)

// WatchDocument opens a live subscription on a single document. The current
// state, if any, is delivered as the initial snapshot, matching the remote
// store's listener behaviour.
func (s *StateStore) WatchDocument(ctx context.Context, path string) (<-chan *entity.DeviceState, error) {
	return s.watch(ctx, path, true)
}

// WatchCollection opens a live subscription on a collection. Existing
// documents are delivered as initial snapshots.
func (s *StateStore) WatchCollection(ctx context.Context, path string) (<-chan *entity.DeviceState, error) {
	return s.watch(ctx, path, false)
}

func (s *StateStore) watch(ctx context.Context, path string, document bool) (<-chan *entity.DeviceState, error) {
	w := &watcher{
		prefix:   path,
		document: document,
		ch:       make(chan *entity.DeviceState, snapshotBuffer),
	}

	s.mu.Lock()
	s.watchers = append(s.watchers, w)
	if document {
		if fields, ok := s.docs[path]; ok {
			w.ch <- snapshotOf(path, fields)
		}
	} else {
		for docPath, fields := range s.docs {
			if inCollection(docPath, path) {
				w.ch <- snapshotOf(docPath, fields)
			}
		}
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, registered := range s.watchers {
			if registered == w {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)

				break
			}
		}
		close(w.ch)
		s.mu.Unlock()
	}()

	return w.ch, nil
}

// MergeWrite updates only the named fields, leaving all others untouched.
// Concurrent writers resolve last-write-wins per field.
func (s *StateStore) MergeWrite(ctx context.Context, path string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[path]
	if !ok {
		doc = make(map[string]any)
		s.docs[path] = doc
	}
	for key, value := range fields {
		doc[key] = value
	}

	s.broadcastLocked(path, doc)

	return nil
}

// CreateDocument adds a document with a store-assigned identifier.
func (s *StateStore) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := "d" + strconv.Itoa(s.nextID)
	path := collection + "/" + id

	doc := make(map[string]any, len(fields))
	for key, value := range fields {
		doc[key] = value
	}
	s.docs[path] = doc

	s.broadcastLocked(path, doc)

	return id, nil
}

// broadcastLocked delivers a snapshot to every matching watcher while the
// store lock is held, which is what guarantees per-document ordering.
func (s *StateStore) broadcastLocked(path string, fields map[string]any) {
	for _, w := range s.watchers {
		match := false
		if w.document {
			match = w.prefix == path
		} else {
			match = inCollection(path, w.prefix)
		}
		if !match {
			continue
		}

		snapshot := snapshotOf(path, fields)
		select {
		case w.ch <- snapshot:
		default:
			// Writers must not block on the store lock, so a consumer that
			// stopped draining loses its oldest snapshot. The latest write
			// always lands and the consumer converges on the current state.
			select {
			case <-w.ch:
			default:
			}
			select {
			case w.ch <- snapshot:
			default:
			}
		}
	}
}

func snapshotOf(path string, fields map[string]any) *entity.DeviceState {
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}

	return entity.DeviceFromFields(docID(path), copied)
}

// inCollection reports whether docPath is an immediate child of collection.
func inCollection(docPath, collection string) bool {
	if !strings.HasPrefix(docPath, collection+"/") {
		return false
	}

	return !strings.Contains(strings.TrimPrefix(docPath, collection+"/"), "/")
}

func docID(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
