package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

type stubNotificationRepo struct {
	notifications []domain.Notification
	nextID        int
}

func (r *stubNotificationRepo) List(_ context.Context) ([]domain.Notification, error) {
	if r.notifications == nil {
		return nil, nil
	}
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.nextID++
	n.ID = fmt.Sprintf("NTF-%04d", r.nextID)
	r.notifications = append(r.notifications, *n)
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) Update(_ context.Context, id string, mutate func(*domain.Notification)) (*domain.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			mutate(&r.notifications[i])
			clone := r.notifications[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubNotificationRepo) Delete(_ context.Context, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubNotificationRepo) UpdateEach(_ context.Context, mutate func(*domain.Notification) bool) (int, error) {
	n := 0
	for i := range r.notifications {
		if mutate(&r.notifications[i]) {
			n++
		}
	}
	return n, nil
}

func TestNotificationService_Create_DefaultPriority(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateNotificationInput{
		Title:    "Backup finished",
		Category: domain.NotificationCategorySystem,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Priority != domain.PriorityNormal {
		t.Fatalf("expected default priority normal, got %s", created.Priority)
	}
	if created.Read {
		t.Fatalf("new notification must be unread")
	}
}

func TestNotificationService_List_Filters(t *testing.T) {
	repo := &stubNotificationRepo{}
	now := time.Now().UTC()
	repo.notifications = []domain.Notification{
		{ID: "NTF-0001", Category: domain.NotificationCategoryMessage, Priority: domain.PriorityNormal, Read: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "NTF-0002", Category: domain.NotificationCategorySystem, Priority: domain.PriorityHigh, CreatedAt: now.Add(-time.Hour)},
		{ID: "NTF-0003", Category: domain.NotificationCategoryMessage, Priority: domain.PriorityHigh, CreatedAt: now},
	}
	svc := NewNotificationService(repo, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListNotificationsFilter{Category: domain.NotificationCategoryMessage})
	if err != nil || len(out) != 2 {
		t.Fatalf("category filter: %v, got %d", err, len(out))
	}
	if out[0].ID != "NTF-0003" {
		t.Fatalf("expected newest first, got %s", out[0].ID)
	}

	out, err = svc.List(context.Background(), ports.ListNotificationsFilter{Unread: true})
	if err != nil || len(out) != 2 {
		t.Fatalf("unread filter: %v, got %d", err, len(out))
	}

	out, err = svc.List(context.Background(), ports.ListNotificationsFilter{Priority: domain.PriorityHigh, Unread: true})
	if err != nil || len(out) != 2 {
		t.Fatalf("combined filter: %v, got %d", err, len(out))
	}
}

func TestNotificationService_List_EmptyIsNotNil(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{}, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListNotificationsFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil {
		t.Fatalf("empty list must be non-nil so it serializes as []")
	}
}

func TestNotificationService_MarkAllRead_Idempotent(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateNotificationInput{Title: "t"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := svc.MarkAllRead(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("first run: n=%d err=%v", n, err)
	}
	n, err = svc.MarkAllRead(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("second run should match nothing: n=%d err=%v", n, err)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateNotificationInput{Title: "t"})
	updated, err := svc.MarkRead(context.Background(), created.ID)
	if err != nil || !updated.Read {
		t.Fatalf("mark read: %v, read=%v", err, updated.Read)
	}
}
