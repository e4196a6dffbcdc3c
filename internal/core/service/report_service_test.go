package service

import (
	"context"
	"testing"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

func TestReportService_Summary(t *testing.T) {
	customers := &stubCustomerRepo{customers: []domain.Customer{
		{ID: "CUST-0001", Status: domain.CustomerActive},
		{ID: "CUST-0002", Status: domain.CustomerActive},
		{ID: "CUST-0003", Status: domain.CustomerProspect},
	}}
	messages := &stubMessageRepo{messages: []domain.Message{
		{ID: "MSG-0001", Status: domain.MessageNew},
		{ID: "MSG-0002", Status: domain.MessageNew},
		{ID: "MSG-0003", Status: domain.MessageReplied},
	}}
	notifications := &stubNotificationRepo{notifications: []domain.Notification{
		{ID: "NTF-0001", Read: true},
		{ID: "NTF-0002"},
	}}

	svc := NewReportService(customers, messages, notifications)
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.TotalCustomers != 3 {
		t.Fatalf("total customers: %d", summary.TotalCustomers)
	}
	if summary.CustomersByStatus[string(domain.CustomerActive)] != 2 {
		t.Fatalf("customers by status: %+v", summary.CustomersByStatus)
	}
	if summary.TotalMessages != 3 || summary.UnreadMessages != 2 {
		t.Fatalf("messages: total=%d unread=%d", summary.TotalMessages, summary.UnreadMessages)
	}
	if summary.MessagesByStatus[string(domain.MessageReplied)] != 1 {
		t.Fatalf("messages by status: %+v", summary.MessagesByStatus)
	}
	if summary.UnreadNotifications != 1 {
		t.Fatalf("unread notifications: %d", summary.UnreadNotifications)
	}
}

func TestReportService_Summary_Empty(t *testing.T) {
	svc := NewReportService(&stubCustomerRepo{}, &stubMessageRepo{}, &stubNotificationRepo{})
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCustomers != 0 || summary.TotalMessages != 0 || summary.UnreadNotifications != 0 {
		t.Fatalf("expected zero counts: %+v", summary)
	}
}
