package service

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// ReportService aggregates counts across the resource files for the admin
// dashboard.
type ReportService struct {
	customers     ports.CustomerRepository
	messages      ports.MessageRepository
	notifications ports.NotificationRepository
}

func NewReportService(
	customers ports.CustomerRepository,
	messages ports.MessageRepository,
	notifications ports.NotificationRepository,
) *ReportService {
	return &ReportService{customers: customers, messages: messages, notifications: notifications}
}

func (s *ReportService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.DashboardSummary{
		TotalCustomers:    len(customers),
		CustomersByStatus: make(map[string]int),
		TotalMessages:     len(messages),
		MessagesByStatus:  make(map[string]int),
	}
	for _, c := range customers {
		summary.CustomersByStatus[string(c.Status)]++
	}
	for _, m := range messages {
		summary.MessagesByStatus[string(m.Status)]++
		if m.Status == domain.MessageNew {
			summary.UnreadMessages++
		}
	}
	for _, n := range notifications {
		if !n.Read {
			summary.UnreadNotifications++
		}
	}
	return summary, nil
}
