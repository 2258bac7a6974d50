package service

import "context"

// Notifier emits a human-readable alert to a user's devices. Delivery is
// fire-and-forget; the core requires no delivery guarantee.
type Notifier interface {
	Notify(ctx context.Context, userID, title, body string) error
}
