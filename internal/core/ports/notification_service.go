package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// CreateNotificationInput carries a new dashboard notification.
type CreateNotificationInput struct {
	Title    string
	Body     string
	Category string
	Priority string
}

// ListNotificationsFilter narrows the notification list.
type ListNotificationsFilter struct {
	Category string // optional
	Priority string // optional
	Unread   bool   // when true, only unread notifications
}

// NotificationService defines use-case operations for notifications.
type NotificationService interface {
	List(ctx context.Context, filter ListNotificationsFilter) ([]domain.Notification, error)
	Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
