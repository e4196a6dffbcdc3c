package handler

import "github.com/lamsaclean/backoffice-api/internal/core/domain"

type createCustomerRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Phone       string `json:"phone"        validate:"required"`
	Address     string `json:"address"`
	District    string `json:"district"`
	ServiceType string `json:"service_type"`
	Notes       string `json:"notes"`
	Status      string `json:"status"       validate:"omitempty,oneof=active inactive prospect"`
}

// updateCustomerRequest is a partial patch: absent fields stay untouched.
type updateCustomerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	District    *string `json:"district"`
	ServiceType *string `json:"service_type"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"       validate:"omitempty,oneof=active inactive prospect"`
}

type listCustomersResponse struct {
	Data  []domain.Customer `json:"data"`
	Total int               `json:"total"`
}
