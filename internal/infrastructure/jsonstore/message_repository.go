package jsonstore

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// MessageRepository stores contact messages in messages.json.
type MessageRepository struct {
	coll *Collection[domain.Message]
}

func NewMessageRepository(opts Options) *MessageRepository {
	return &MessageRepository{coll: NewCollection[domain.Message](opts, "messages", nil)}
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	return r.coll.All(ctx)
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	var created domain.Message
	err := r.coll.Mutate(ctx, func(items []domain.Message) ([]domain.Message, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		m.ID = NextID("MSG", ids)
		created = *m
		return append([]domain.Message{created}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MessageRepository) Update(ctx context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error) {
	var updated domain.Message
	err := r.coll.Mutate(ctx, func(items []domain.Message) ([]domain.Message, error) {
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

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return r.coll.Mutate(ctx, func(items []domain.Message) ([]domain.Message, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func (r *MessageRepository) UpdateEach(ctx context.Context, mutate func(*domain.Message) bool) (int, error) {
	changed := 0
	err := r.coll.Mutate(ctx, func(items []domain.Message) ([]domain.Message, error) {
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
