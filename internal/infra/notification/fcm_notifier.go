// Package notification delivers device change alerts.
package notification

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"

	"latch/internal/domain/service"
)

// userTopic returns the per-user FCM topic every client of an account
// subscribes to.
func userTopic(userID string) string {
	return "user-" + userID
}

// fcmNotifier implements service.Notifier using Firebase Cloud Messaging.
type fcmNotifier struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFCMNotifier creates a push notifier backed by Firebase Cloud Messaging.
func NewFCMNotifier(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.Notifier, error) {
	if app == nil {
		return nil, errors.New("fcm notifier requires firebase configuration")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmNotifier{
		client: client,
		logger: logger,
	}, nil
}

// Notify sends the alert to the user's topic. Fire-and-forget: delivery is
// not guaranteed and failures are the caller's to log, not to retry.
func (n *fcmNotifier) Notify(ctx context.Context, userID, title, body string) error {
	message := &messaging.Message{
		Topic: userTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := n.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
