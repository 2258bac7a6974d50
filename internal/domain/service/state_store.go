// Package service defines interfaces for external capabilities consumed by
// the usecase layer.
package service

import (
	"context"

	"latch/internal/domain/entity"
)

// StateStore is the multi-writer remote document store holding device state.
// Conflicts resolve last-write-wins at the field level. Each watched
// document delivers snapshots in a total order consistent with writes to
// that document, but there is no ordering guarantee across documents: a
// door watch and a devices-collection watch may observe updates in
// different relative orders, and callers must not assume atomicity between
// them.
type StateStore interface {
	// WatchDocument opens a live subscription on a single document. The
	// returned channel never terminates on its own; it is closed only when
	// ctx is cancelled. Device kind resolution happens once here, at the
	// data-mapping boundary.
	WatchDocument(ctx context.Context, path string) (<-chan *entity.DeviceState, error)

	// WatchCollection opens a live subscription on a collection, delivering
	// one snapshot per added or changed document.
	WatchCollection(ctx context.Context, path string) (<-chan *entity.DeviceState, error)

	// MergeWrite updates only the named fields of a document, leaving all
	// others untouched. A full-document overwrite would race with concurrent
	// writers mutating other fields.
	MergeWrite(ctx context.Context, path string, fields map[string]any) error

	// CreateDocument adds a new document to a collection and returns its
	// store-assigned identifier.
	CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error)
}
