package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage records one inbound contact-form submission. Rows are
// write-only from the application's perspective; no page reads them back.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
