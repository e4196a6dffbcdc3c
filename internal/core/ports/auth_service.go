package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// AuthService issues and verifies bearer credentials.
type AuthService interface {
	// Login checks the username/password pair and returns a signed token
	// plus the sanitized user on success.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify validates the token signature and expiry, then re-fetches the
	// user so a deactivated or deleted account fails even while the token
	// itself is still cryptographically valid.
	Verify(ctx context.Context, token string) (*domain.User, error)
}
