package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// NotificationService implements dashboard notification use cases.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

func (s *NotificationService) List(ctx context.Context, filter ports.ListNotificationsFilter) ([]domain.Notification, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && n.Priority != filter.Priority {
			continue
		}
		if filter.Unread && n.Read {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *NotificationService) Create(ctx context.Context, input ports.CreateNotificationInput) (*domain.Notification, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	now := time.Now().UTC()
	notification := &domain.Notification{
		Title:     input.Title,
		Body:      input.Body,
		Category:  input.Category,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		s.log.Error().Err(err).Str("category", input.Category).Msg("failed to create notification")
		return nil, err
	}
	return created, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.Update(ctx, id, func(n *domain.Notification) {
		n.Read = true
		n.UpdatedAt = time.Now().UTC()
	})
}

// MarkAllRead flips every unread notification. Idempotent: a second call
// matches nothing and returns 0.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	return s.repo.UpdateEach(ctx, func(n *domain.Notification) bool {
		if n.Read {
			return false
		}
		n.Read = true
		n.UpdatedAt = time.Now().UTC()
		return true
	})
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
