package appointments

import (
	"context"

	"github.com/tire-service/booking-bot/internal/observability/metrics"
	"github.com/tire-service/booking-bot/pkg/logging"
)

// Service wraps the repository with logging and metrics.
type Service struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.BotMetrics
}

// NewService constructs an appointments service.
func NewService(repo Repository, logger *logging.Logger, m *metrics.BotMetrics) *Service {
	if repo == nil {
		panic("appointments: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger, metrics: m}
}

// Create persists a confirmed booking.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	appt, err := s.repo.Create(ctx, req)
	if err != nil {
		s.metrics.ObserveBooking("storage_error")
		s.logger.Error("appointment create failed",
			"error", err,
			"requester_id", req.RequesterID,
		)
		return nil, err
	}
	s.metrics.ObserveBooking("created")
	s.logger.Info("appointment created",
		"appointment_id", appt.ID,
		"requester_id", appt.RequesterID,
		"scheduled_at", appt.ScheduledAt,
	)
	return appt, nil
}

// ListByRequester returns the requester's bookings.
func (s *Service) ListByRequester(ctx context.Context, requesterID int64) ([]Appointment, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}
