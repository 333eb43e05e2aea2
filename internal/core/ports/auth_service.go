package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// AuthService covers the credential store, token issuer, and identity
// resolver.
type AuthService interface {
	// Register creates an account and returns a signed session token plus
	// the public user view. Fails with domain.ErrUserExists when the email
	// is taken.
	Register(ctx context.Context, email, name, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a fresh session token plus the
	// public user view. Fails with domain.ErrInvalidCredentials on unknown
	// email or hash mismatch.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves a bearer token to the stored user. Fails with
	// domain.ErrUnauthenticated when the token is empty,
	// domain.ErrTokenExpired / domain.ErrTokenInvalid from validation, and
	// domain.ErrUserNotFound when the subject no longer exists.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
