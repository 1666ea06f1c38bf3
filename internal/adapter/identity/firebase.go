// Package identity verifies bearer tokens against Firebase Authentication.
package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
)

type FirebaseVerifier struct {
	client *auth.Client
}

var _ ports.TokenVerifier = (*FirebaseVerifier)(nil)

// NewFirebaseVerifier builds a verifier from a service-account credentials
// file. An empty path falls back to application default credentials.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (domain.Principal, error) {
	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		// Keep the upstream reason for server-side logs; callers match on
		// the sentinel and return a generic 401.
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	principal := domain.Principal{ID: verified.UID}
	if email, ok := verified.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := verified.Claims["name"].(string); ok {
		principal.Name = name
	}

	return principal, nil
}
