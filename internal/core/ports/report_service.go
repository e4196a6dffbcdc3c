package ports

import "context"

// DashboardSummary is the aggregate view behind the admin reports page.
type DashboardSummary struct {
	TotalCustomers      int            `json:"total_customers"`
	CustomersByStatus   map[string]int `json:"customers_by_status"`
	TotalMessages       int            `json:"total_messages"`
	UnreadMessages      int            `json:"unread_messages"`
	MessagesByStatus    map[string]int `json:"messages_by_status"`
	UnreadNotifications int            `json:"unread_notifications"`
}

// ReportService aggregates counts across the resource files.
type ReportService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
