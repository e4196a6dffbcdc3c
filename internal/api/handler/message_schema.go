package handler

import "github.com/lamsaclean/backoffice-api/internal/core/domain"

// contactRequest is the public contact-form payload.
type contactRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"    validate:"required"`
	Subject  string `json:"subject"`
	Body     string `json:"body"     validate:"required"`
	Service  string `json:"service"`
	Language string `json:"language" validate:"omitempty,oneof=ar en"`
}

type updateMessageRequest struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
	Status  *string `json:"status" validate:"omitempty,oneof=new read replied resolved archived"`
}

type replyMessageRequest struct {
	Reply string `json:"reply" validate:"required"`
}

type listMessagesResponse struct {
	Data  []domain.Message `json:"data"`
	Total int              `json:"total"`
}
