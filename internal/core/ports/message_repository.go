package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// MessageRepository persists contact messages in a single resource file.
type MessageRepository interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	Update(ctx context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
	// UpdateEach applies mutate to every record for which it returns true
	// and reports how many records changed. Zero matches is not an error.
	UpdateEach(ctx context.Context, mutate func(*domain.Message) bool) (int, error)
}
