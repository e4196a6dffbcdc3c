package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// CustomerRepository persists customers in a single resource file.
type CustomerRepository interface {
	// List returns all customers, newest first.
	List(ctx context.Context) ([]domain.Customer, error)
	// Create assigns the next CUST id, prepends the record, and writes the
	// file back.
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	// Update applies mutate to the record with the given id and writes the
	// file back. Returns domain.ErrNotFound when the id is unknown.
	Update(ctx context.Context, id string, mutate func(*domain.Customer)) (*domain.Customer, error)
	// Delete removes the record. Returns domain.ErrNotFound when the id is
	// unknown.
	Delete(ctx context.Context, id string) error
}
