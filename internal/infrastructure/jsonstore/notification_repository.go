package jsonstore

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// NotificationRepository stores dashboard notifications in
// notifications.json, seeded with a single welcome entry.
type NotificationRepository struct {
	coll *Collection[domain.Notification]
}

func NewNotificationRepository(opts Options) *NotificationRepository {
	return &NotificationRepository{coll: NewCollection(opts, "notifications", seedNotifications)}
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	return r.coll.All(ctx)
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	var created domain.Notification
	err := r.coll.Mutate(ctx, func(items []domain.Notification) ([]domain.Notification, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		n.ID = NextID("NTF", ids)
		created = *n
		return append([]domain.Notification{created}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *NotificationRepository) Update(ctx context.Context, id string, mutate func(*domain.Notification)) (*domain.Notification, error) {
	var updated domain.Notification
	err := r.coll.Mutate(ctx, func(items []domain.Notification) ([]domain.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				mutate(&items[i])
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.coll.Mutate(ctx, func(items []domain.Notification) ([]domain.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func (r *NotificationRepository) UpdateEach(ctx context.Context, mutate func(*domain.Notification) bool) (int, error) {
	changed := 0
	err := r.coll.Mutate(ctx, func(items []domain.Notification) ([]domain.Notification, error) {
		for i := range items {
			if mutate(&items[i]) {
				changed++
			}
		}
		return items, nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}
