package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// CreateCustomerInput carries the fields for a new customer record.
type CreateCustomerInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	District    string
	ServiceType string
	Notes       string
	Status      string
}

// UpdateCustomerInput is a partial patch. Nil fields are left untouched.
type UpdateCustomerInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	District    *string
	ServiceType *string
	Notes       *string
	Status      *string
}

// ListCustomersFilter narrows the customer list by exact field match.
type ListCustomersFilter struct {
	Status      string // optional
	ServiceType string // optional
}

// CustomerService defines use-case operations for customer records.
type CustomerService interface {
	List(ctx context.Context, filter ListCustomersFilter) ([]domain.Customer, error)
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
