package domain

import "time"

// CustomerStatus is the lifecycle tag on a customer record.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerProspect CustomerStatus = "prospect"
)

// Customer is a client of the cleaning company, managed from the back office.
type Customer struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address,omitempty"`
	District    string         `json:"district,omitempty"`
	ServiceType string         `json:"service_type,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Status      CustomerStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
