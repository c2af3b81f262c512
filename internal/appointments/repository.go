package appointments

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for appointment storage
type Repository interface {
	Create(ctx context.Context, req *CreateRequest) (*Appointment, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]Appointment, error)
}

// InMemoryRepository is a Repository backed by a map, used when no
// database is configured (local development, tests).
type InMemoryRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*Appointment
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		appointments: make(map[uuid.UUID]*Appointment),
	}
}

// Create stores a new appointment in memory
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	appt := &Appointment{
		ID:          uuid.New(),
		RequesterID: req.RequesterID,
		Name:        req.Name,
		Phone:       req.Phone,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	r.mu.Lock()
	r.appointments[appt.ID] = appt
	r.mu.Unlock()

	return appt, nil
}

// ListByRequester returns the requester's appointments ordered by
// scheduled time.
func (r *InMemoryRepository) ListByRequester(ctx context.Context, requesterID int64) ([]Appointment, error) {
	r.mu.RLock()
	var out []Appointment
	for _, appt := range r.appointments {
		if appt.RequesterID == requesterID {
			out = append(out, *appt)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}
