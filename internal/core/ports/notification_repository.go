package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// NotificationRepository persists dashboard notifications in a single
// resource file.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	Update(ctx context.Context, id string, mutate func(*domain.Notification)) (*domain.Notification, error)
	Delete(ctx context.Context, id string) error
	UpdateEach(ctx context.Context, mutate func(*domain.Notification) bool) (int, error)
}
