package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/service"
)

// firebaseVerifier validates Firebase ID tokens against the project's
// signing keys.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a TokenService backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.TokenService, error) {
	if app == nil {
		return nil, errors.New("firebase verifier requires firebase configuration")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates the ID token and maps the Firebase user to an account.
func (v *firebaseVerifier) Verify(ctx context.Context, tokenString string) (*entity.Account, error) {
	token, err := v.client.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("Invalid or expired token")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	verified, _ := token.Claims["email_verified"].(bool)

	return &entity.Account{
		ID:            token.UID,
		Email:         email,
		DisplayName:   name,
		EmailVerified: verified,
	}, nil
}
