package ports

import (
	"context"
	"time"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// AuthRepository defines the interface for user lookup and login stamping.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// RecordLogin writes the last_login_at timestamp back to the user file.
	RecordLogin(ctx context.Context, id string, at time.Time) error
}
