package domain

import "time"

// MessageStatus tags a contact message. The usual flow is
// new → read → replied → resolved, with archived as a terminal side exit.
// Statuses are plain data: any status can be written through the generic
// update path and no transition is rejected.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageResolved MessageStatus = "resolved"
	MessageArchived MessageStatus = "archived"
)

// Message is a contact-form submission from the public site.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject,omitempty"`
	Body      string        `json:"body"`
	Service   string        `json:"service,omitempty"`
	Language  string        `json:"language,omitempty"` // "ar" or "en"
	Status    MessageStatus `json:"status"`
	Reply     string        `json:"reply,omitempty"`
	RepliedAt *time.Time    `json:"replied_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
