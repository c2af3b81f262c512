package appointments

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a confirmed booking persisted at the end of a
// conversation. Rows are never mutated or deleted.
type Appointment struct {
	ID          uuid.UUID
	RequesterID int64
	Name        string
	Phone       string
	ScheduledAt time.Time
	CreatedAt   time.Time
}

// CreateRequest carries the fields collected during a conversation.
type CreateRequest struct {
	RequesterID int64
	Name        string
	Phone       string
	ScheduledAt time.Time
}

// Validate checks the request before it touches storage. Name and
// phone are free text and intentionally not format-validated.
func (r *CreateRequest) Validate() error {
	if r.RequesterID == 0 {
		return ErrMissingRequester
	}
	if r.Name == "" {
		return ErrInvalidName
	}
	if r.Phone == "" {
		return ErrMissingPhone
	}
	if r.ScheduledAt.IsZero() {
		return ErrMissingSchedule
	}
	return nil
}
