package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// CreateMessageInput carries a contact-form submission.
type CreateMessageInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Body     string
	Service  string
	Language string
}

// UpdateMessageInput is a partial patch. Nil fields are left untouched.
// Status is written as-is: the message status flow is advisory, not enforced.
type UpdateMessageInput struct {
	Subject *string
	Body    *string
	Status  *string
}

// ListMessagesFilter narrows the message list by exact field match.
type ListMessagesFilter struct {
	Status  string // optional
	Service string // optional
}

// MessageService defines use-case operations for contact messages.
type MessageService interface {
	List(ctx context.Context, filter ListMessagesFilter) ([]domain.Message, error)
	Create(ctx context.Context, input CreateMessageInput) (*domain.Message, error)
	Update(ctx context.Context, id string, input UpdateMessageInput) (*domain.Message, error)
	Delete(ctx context.Context, id string) error

	// Named status actions; each is a fixed patch over the matched record.
	MarkRead(ctx context.Context, id string) (*domain.Message, error)
	Reply(ctx context.Context, id, reply string) (*domain.Message, error)
	Resolve(ctx context.Context, id string) (*domain.Message, error)
	Archive(ctx context.Context, id string) (*domain.Message, error)
	// MarkAllRead marks every "new" message read and returns the count.
	// Calling it again immediately returns 0 with no error.
	MarkAllRead(ctx context.Context) (int, error)
}
