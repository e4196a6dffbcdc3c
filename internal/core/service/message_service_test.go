package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

type stubMessageRepo struct {
	messages []domain.Message
	nextID   int
}

func (r *stubMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	if r.messages == nil {
		// The store hands back a nil slice before the file exists.
		return nil, nil
	}
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.nextID++
	m.ID = fmt.Sprintf("MSG-%04d", r.nextID)
	r.messages = append(r.messages, *m)
	clone := *m
	return &clone, nil
}

func (r *stubMessageRepo) Update(_ context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error) {
	for i := range r.messages {
		if r.messages[i].ID == id {
			mutate(&r.messages[i])
			clone := r.messages[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubMessageRepo) UpdateEach(_ context.Context, mutate func(*domain.Message) bool) (int, error) {
	n := 0
	for i := range r.messages {
		if mutate(&r.messages[i]) {
			n++
		}
	}
	return n, nil
}

type stubNotifier struct {
	inputs []ports.CreateNotificationInput
}

func (n *stubNotifier) Notify(input ports.CreateNotificationInput) {
	n.inputs = append(n.inputs, input)
}

func TestMessageService_Create_FansOutNotification(t *testing.T) {
	repo := &stubMessageRepo{}
	notifier := &stubNotifier{}
	svc := NewMessageService(repo, notifier, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateMessageInput{
		Name:    "Sara",
		Email:   "sara@example.com",
		Subject: "Deep cleaning quote",
		Body:    "Please call me back.",
		Service: "deep-cleaning",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.MessageNew {
		t.Fatalf("expected status new, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}

	if len(notifier.inputs) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.inputs))
	}
	n := notifier.inputs[0]
	if n.Category != domain.NotificationCategoryMessage {
		t.Fatalf("unexpected category: %s", n.Category)
	}
	if n.Title != "New contact message from Sara" {
		t.Fatalf("unexpected title: %s", n.Title)
	}
}

func TestMessageService_Create_NilNotifier(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, nil, zerolog.Nop())
	if _, err := svc.Create(context.Background(), ports.CreateMessageInput{Name: "x"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}

func TestMessageService_StatusActions(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateMessageInput{Name: "a"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	m, err := svc.MarkRead(context.Background(), created.ID)
	if err != nil || m.Status != domain.MessageRead {
		t.Fatalf("mark read: %v, status %s", err, m.Status)
	}

	m, err = svc.Reply(context.Background(), created.ID, "We will call you tomorrow.")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if m.Status != domain.MessageReplied || m.Reply != "We will call you tomorrow." || m.RepliedAt == nil {
		t.Fatalf("reply not recorded: %+v", m)
	}

	m, err = svc.Resolve(context.Background(), created.ID)
	if err != nil || m.Status != domain.MessageResolved {
		t.Fatalf("resolve: %v, status %s", err, m.Status)
	}

	m, err = svc.Archive(context.Background(), created.ID)
	if err != nil || m.Status != domain.MessageArchived {
		t.Fatalf("archive: %v, status %s", err, m.Status)
	}
}

func TestMessageService_StatusNotEnforced(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateMessageInput{Name: "a"})
	if _, err := svc.Archive(context.Background(), created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	// Any patch is accepted regardless of the current status.
	status := string(domain.MessageNew)
	m, err := svc.Update(context.Background(), created.ID, ports.UpdateMessageInput{Status: &status})
	if err != nil || m.Status != domain.MessageNew {
		t.Fatalf("expected status to be written back as-is: %v, %+v", err, m)
	}
}

func TestMessageService_MarkAllRead_Idempotent(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateMessageInput{Name: "a"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// One already replied; it must not be touched.
	if _, err := svc.Reply(context.Background(), repo.messages[0].ID, "done"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	n, err := svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 messages marked, got %d", n)
	}
	for _, m := range repo.messages {
		if m.Status == domain.MessageNew {
			t.Fatalf("message %s still new", m.ID)
		}
	}
	if repo.messages[0].Status != domain.MessageReplied {
		t.Fatalf("replied message was touched: %s", repo.messages[0].Status)
	}

	n, err = svc.MarkAllRead(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("second run should match nothing: n=%d err=%v", n, err)
	}
}

func TestMessageService_List_FilterAndOrder(t *testing.T) {
	repo := &stubMessageRepo{}
	now := time.Now().UTC()
	repo.messages = []domain.Message{
		{ID: "MSG-0001", Service: "deep-cleaning", Status: domain.MessageNew, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "MSG-0002", Service: "sofa-cleaning", Status: domain.MessageRead, CreatedAt: now.Add(-time.Hour)},
		{ID: "MSG-0003", Service: "deep-cleaning", Status: domain.MessageNew, CreatedAt: now},
	}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListMessagesFilter{Service: "deep-cleaning"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].ID != "MSG-0003" || out[1].ID != "MSG-0001" {
		t.Fatalf("expected newest first, got %s, %s", out[0].ID, out[1].ID)
	}

	out, err = svc.List(context.Background(), ports.ListMessagesFilter{Status: string(domain.MessageRead)})
	if err != nil || len(out) != 1 || out[0].ID != "MSG-0002" {
		t.Fatalf("status filter failed: %v, %+v", err, out)
	}
}

func TestMessageService_List_EmptyIsNotNil(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, nil, zerolog.Nop())

	out, err := svc.List(context.Background(), ports.ListMessagesFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil {
		t.Fatalf("empty list must be non-nil so it serializes as []")
	}

	data, err := json.Marshal(out)
	if err != nil || string(data) != "[]" {
		t.Fatalf("expected [], got %s (%v)", data, err)
	}
}

func TestMessageService_Update_NotFound(t *testing.T) {
	svc := NewMessageService(&stubMessageRepo{}, nil, zerolog.Nop())
	if _, err := svc.MarkRead(context.Background(), "MSG-9999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
