// Package notify delivers booking summaries to the administrative
// chat. Delivery is best-effort: the booking is already committed by
// the time a notification goes out, so failures are logged, counted
// and otherwise swallowed.
package notify

import (
	"context"
	"fmt"

	"github.com/tire-service/booking-bot/internal/appointments"
	"github.com/tire-service/booking-bot/internal/observability/metrics"
	"github.com/tire-service/booking-bot/internal/schedule"
	"github.com/tire-service/booking-bot/pkg/logging"
)

// Messenger sends plain text to a chat.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// Service handles sending notifications to the shop administrator.
type Service struct {
	messenger   Messenger
	adminChatID int64
	logger      *logging.Logger
	metrics     *metrics.BotMetrics
}

// NewService creates a notification service.
func NewService(messenger Messenger, adminChatID int64, logger *logging.Logger, m *metrics.BotMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		messenger:   messenger,
		adminChatID: adminChatID,
		logger:      logger,
		metrics:     m,
	}
}

// BookingConfirmed notifies the administrator about a new appointment.
func (s *Service) BookingConfirmed(ctx context.Context, appt *appointments.Appointment) {
	if s.messenger == nil || s.adminChatID == 0 {
		s.logger.Debug("notify: admin channel not configured, skipping")
		return
	}

	text := fmt.Sprintf("Новая запись:\nИмя: %s\nТелефон: %s\nДата и время: %s",
		appt.Name,
		appt.Phone,
		appt.ScheduledAt.Format(schedule.DateTimeLayout),
	)

	if err := s.messenger.SendText(ctx, s.adminChatID, text); err != nil {
		s.metrics.ObserveNotify("error")
		s.logger.Error("notify: admin delivery failed",
			"error", err,
			"appointment_id", appt.ID,
		)
		return
	}
	s.metrics.ObserveNotify("sent")
	s.logger.Info("notify: admin notified", "appointment_id", appt.ID)
}
