package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// CustomerService implements customer record use cases over the flat-file
// repository.
type CustomerService struct {
	repo ports.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) List(ctx context.Context, filter ports.ListCustomersFilter) ([]domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		if filter.ServiceType != "" && c.ServiceType != filter.ServiceType {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	status := domain.CustomerStatus(input.Status)
	if status == "" {
		status = domain.CustomerActive
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		District:    input.District,
		ServiceType: input.ServiceType,
		Notes:       input.Notes,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	s.log.Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	return s.repo.Update(ctx, id, func(c *domain.Customer) {
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.Email != nil {
			c.Email = *input.Email
		}
		if input.Phone != nil {
			c.Phone = *input.Phone
		}
		if input.Address != nil {
			c.Address = *input.Address
		}
		if input.District != nil {
			c.District = *input.District
		}
		if input.ServiceType != nil {
			c.ServiceType = *input.ServiceType
		}
		if input.Notes != nil {
			c.Notes = *input.Notes
		}
		if input.Status != nil {
			c.Status = domain.CustomerStatus(*input.Status)
		}
		c.UpdatedAt = time.Now().UTC()
	})
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
