package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tire-service/booking-bot/internal/appointments"
	"github.com/tire-service/booking-bot/pkg/logging"
)

type fakeMessenger struct {
	chatIDs []int64
	texts   []string
	err     error
}

func (f *fakeMessenger) SendText(_ context.Context, chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
	return f.err
}

func sampleAppointment() *appointments.Appointment {
	return &appointments.Appointment{
		ID:          uuid.New(),
		RequesterID: 100500,
		Name:        "Ivan",
		Phone:       "+79990001122",
		ScheduledAt: time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC),
	}
}

func TestBookingConfirmedSendsSummary(t *testing.T) {
	m := &fakeMessenger{}
	svc := NewService(m, 7285220061, logging.New("error"), nil)

	svc.BookingConfirmed(context.Background(), sampleAppointment())

	require.Len(t, m.texts, 1)
	assert.Equal(t, int64(7285220061), m.chatIDs[0])
	assert.Contains(t, m.texts[0], "Ivan")
	assert.Contains(t, m.texts[0], "+79990001122")
	assert.Contains(t, m.texts[0], "25.12.2025 14:30")
}

func TestBookingConfirmedSwallowsDeliveryError(t *testing.T) {
	m := &fakeMessenger{err: errors.New("telegram unavailable")}
	svc := NewService(m, 42, logging.New("error"), nil)

	// Must not panic or propagate: the booking is already committed.
	svc.BookingConfirmed(context.Background(), sampleAppointment())

	require.Len(t, m.texts, 1)
}

func TestBookingConfirmedSkipsWhenUnconfigured(t *testing.T) {
	m := &fakeMessenger{}
	svc := NewService(m, 0, logging.New("error"), nil)

	svc.BookingConfirmed(context.Background(), sampleAppointment())

	assert.Empty(t, m.texts)
}
