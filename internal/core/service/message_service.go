package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/api/metrics"
	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// Notifier queues an admin notification without blocking the caller.
// A nil notifier disables fan-out.
type Notifier interface {
	Notify(input ports.CreateNotificationInput)
}

// MessageService implements contact-message use cases. Creating a message
// also fans out a dashboard notification through the notifier.
type MessageService struct {
	repo     ports.MessageRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, notifier Notifier, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, notifier: notifier, log: log}
}

func (s *MessageService) List(ctx context.Context, filter ports.ListMessagesFilter) ([]domain.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Non-nil even when everything is filtered out, so the list envelope
	// serializes as [] rather than null.
	out := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		if filter.Status != "" && string(m.Status) != filter.Status {
			continue
		}
		if filter.Service != "" && m.Service != filter.Service {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MessageService) Create(ctx context.Context, input ports.CreateMessageInput) (*domain.Message, error) {
	now := time.Now().UTC()
	message := &domain.Message{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Body:      input.Body,
		Service:   input.Service,
		Language:  input.Language,
		Status:    domain.MessageNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create message")
		return nil, err
	}

	s.log.Info().Str("message_id", created.ID).Str("service", created.Service).Msg("contact message received")

	if s.notifier != nil {
		s.notifier.Notify(ports.CreateNotificationInput{
			Title:    "New contact message from " + created.Name,
			Body:     created.Subject,
			Category: domain.NotificationCategoryMessage,
			Priority: domain.PriorityNormal,
		})
	}
	return created, nil
}

func (s *MessageService) Update(ctx context.Context, id string, input ports.UpdateMessageInput) (*domain.Message, error) {
	return s.repo.Update(ctx, id, func(m *domain.Message) {
		if input.Subject != nil {
			m.Subject = *input.Subject
		}
		if input.Body != nil {
			m.Body = *input.Body
		}
		if input.Status != nil {
			m.Status = domain.MessageStatus(*input.Status)
		}
		m.UpdatedAt = time.Now().UTC()
	})
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	m, err := s.patch(ctx, id, func(m *domain.Message) {
		m.Status = domain.MessageRead
	})
	if err != nil {
		return nil, err
	}
	metrics.MessageActionsTotal.WithLabelValues("read").Inc()
	return m, nil
}

func (s *MessageService) Reply(ctx context.Context, id, reply string) (*domain.Message, error) {
	m, err := s.patch(ctx, id, func(m *domain.Message) {
		now := time.Now().UTC()
		m.Status = domain.MessageReplied
		m.Reply = reply
		m.RepliedAt = &now
	})
	if err != nil {
		return nil, err
	}
	metrics.MessageActionsTotal.WithLabelValues("reply").Inc()
	s.log.Info().Str("message_id", id).Msg("message replied")
	return m, nil
}

func (s *MessageService) Resolve(ctx context.Context, id string) (*domain.Message, error) {
	m, err := s.patch(ctx, id, func(m *domain.Message) {
		m.Status = domain.MessageResolved
	})
	if err != nil {
		return nil, err
	}
	metrics.MessageActionsTotal.WithLabelValues("resolve").Inc()
	return m, nil
}

func (s *MessageService) Archive(ctx context.Context, id string) (*domain.Message, error) {
	m, err := s.patch(ctx, id, func(m *domain.Message) {
		m.Status = domain.MessageArchived
	})
	if err != nil {
		return nil, err
	}
	metrics.MessageActionsTotal.WithLabelValues("archive").Inc()
	return m, nil
}

// MarkAllRead flips every "new" message to "read". Running it twice is
// harmless: the second call matches nothing and returns 0.
func (s *MessageService) MarkAllRead(ctx context.Context) (int, error) {
	n, err := s.repo.UpdateEach(ctx, func(m *domain.Message) bool {
		if m.Status != domain.MessageNew {
			return false
		}
		m.Status = domain.MessageRead
		m.UpdatedAt = time.Now().UTC()
		return true
	})
	if err != nil {
		return 0, err
	}
	metrics.MessageActionsTotal.WithLabelValues("read_all").Inc()
	return n, nil
}

func (s *MessageService) patch(ctx context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error) {
	return s.repo.Update(ctx, id, func(m *domain.Message) {
		mutate(m)
		m.UpdatedAt = time.Now().UTC()
	})
}
