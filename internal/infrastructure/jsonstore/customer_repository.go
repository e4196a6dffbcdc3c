package jsonstore

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// CustomerRepository stores customer records in customers.json.
type CustomerRepository struct {
	coll *Collection[domain.Customer]
}

func NewCustomerRepository(opts Options) *CustomerRepository {
	return &CustomerRepository{coll: NewCollection[domain.Customer](opts, "customers", nil)}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	return r.coll.All(ctx)
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	var created domain.Customer
	err := r.coll.Mutate(ctx, func(items []domain.Customer) ([]domain.Customer, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		c.ID = NextID("CUST", ids)
		created = *c
		return append([]domain.Customer{created}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, mutate func(*domain.Customer)) (*domain.Customer, error) {
	var updated domain.Customer
	err := r.coll.Mutate(ctx, func(items []domain.Customer) ([]domain.Customer, error) {
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

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.coll.Mutate(ctx, func(items []domain.Customer) ([]domain.Customer, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}
