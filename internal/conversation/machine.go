// Package conversation drives the multi-step booking dialogue:
// collect name, phone, date and time, then persist the appointment and
// alert the administrator. One session per requester, reset on
// completion, cancellation or an unrecognized command.
package conversation

import (
	"context"

	"github.com/tire-service/booking-bot/internal/appointments"
	"github.com/tire-service/booking-bot/internal/observability/metrics"
	"github.com/tire-service/booking-bot/internal/schedule"
	"github.com/tire-service/booking-bot/pkg/logging"
)

const choicesPerRow = 3

// Booker persists confirmed bookings.
type Booker interface {
	Create(ctx context.Context, req *appointments.CreateRequest) (*appointments.Appointment, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]appointments.Appointment, error)
}

// Notifier alerts the administrator about a confirmed booking.
// Fire-and-forget: implementations must not fail the booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, appt *appointments.Appointment)
}

// Reply is an outbound message for the transport to render. Choices,
// when present, become a one-tap reply keyboard.
type Reply struct {
	Text           string
	Choices        [][]string
	RemoveKeyboard bool
}

// Machine advances sessions through the booking dialogue.
type Machine struct {
	sessions *SessionStore
	schedule *schedule.Generator
	booker   Booker
	notifier Notifier
	logger   *logging.Logger
	metrics  *metrics.BotMetrics
}

// Config carries Machine dependencies.
type Config struct {
	Sessions *SessionStore
	Schedule *schedule.Generator
	Booker   Booker
	Notifier Notifier
	Logger   *logging.Logger
	Metrics  *metrics.BotMetrics
}

// NewMachine constructs the state machine.
func NewMachine(cfg Config) *Machine {
	if cfg.Booker == nil {
		panic("conversation: booker required")
	}
	if cfg.Sessions == nil {
		cfg.Sessions = NewSessionStore()
	}
	if cfg.Schedule == nil {
		cfg.Schedule = schedule.NewGenerator()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Machine{
		sessions: cfg.Sessions,
		schedule: cfg.Schedule,
		booker:   cfg.Booker,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// HandleCommand processes a slash command from a requester.
func (m *Machine) HandleCommand(ctx context.Context, requesterID int64, command string) []Reply {
	m.metrics.ObserveUpdate("command")

	switch command {
	case "start":
		m.sessions.Put(Session{RequesterID: requesterID, State: StateName})
		m.logger.Info("session started", "requester_id", requesterID)
		return []Reply{{
			Text:           "Привет! Я бот для записи на шиномонтаж.\nКак вас зовут?",
			RemoveKeyboard: true,
		}}
	case "cancel":
		m.sessions.Delete(requesterID)
		m.logger.Info("session cancelled", "requester_id", requesterID)
		return []Reply{{
			Text:           "Запись отменена. Чтобы начать заново, отправьте /start.",
			RemoveKeyboard: true,
		}}
	case "my":
		return m.listBookings(ctx, requesterID)
	default:
		// Unrecognized commands discard the session so the user is
		// never stuck mid-flow with a stale keyboard.
		m.sessions.Delete(requesterID)
		return []Reply{{
			Text:           "Я вас не понял. Отправьте /start, чтобы записаться на шиномонтаж.",
			RemoveKeyboard: true,
		}}
	}
}

// HandleText processes a plain message from a requester.
func (m *Machine) HandleText(ctx context.Context, requesterID int64, text string) []Reply {
	m.metrics.ObserveUpdate("text")

	sess, ok := m.sessions.Get(requesterID)
	if !ok {
		return []Reply{{Text: "Отправьте /start, чтобы записаться на шиномонтаж."}}
	}

	switch sess.State {
	case StateName:
		sess.Name = text
		sess.State = StatePhone
		m.sessions.Put(sess)
		return []Reply{{Text: "Укажите ваш номер телефона:"}}

	case StatePhone:
		sess.Phone = text
		sess.State = StateDate
		m.sessions.Put(sess)
		return []Reply{{
			Text:    "Выберите дату для записи:",
			Choices: chunk(m.schedule.Dates(), choicesPerRow),
		}}

	case StateDate:
		sess.Date = text
		sess.State = StateTime
		m.sessions.Put(sess)
		return []Reply{{
			Text:    "Выберите время:",
			Choices: chunk(m.schedule.TimeSlots(), choicesPerRow),
		}}

	case StateTime:
		return m.confirm(ctx, sess, text)

	default:
		return []Reply{{Text: "Отправьте /start, чтобы записаться на шиномонтаж."}}
	}
}

// confirm parses the collected date/time pair and commits the booking.
func (m *Machine) confirm(ctx context.Context, sess Session, timeOfDay string) []Reply {
	scheduledAt, err := schedule.ParseDateTime(sess.Date, timeOfDay)
	if err != nil {
		// Free text did not match an offered slot: re-prompt the same
		// step instead of dropping the session.
		m.metrics.ObserveBooking("bad_datetime")
		m.logger.Warn("unparseable date/time",
			"requester_id", sess.RequesterID,
			"date", sess.Date,
			"time", timeOfDay,
		)
		return []Reply{{
			Text:    "Не получилось распознать время. Выберите время из списка:",
			Choices: chunk(m.schedule.TimeSlots(), choicesPerRow),
		}}
	}

	appt, err := m.booker.Create(ctx, &appointments.CreateRequest{
		RequesterID: sess.RequesterID,
		Name:        sess.Name,
		Phone:       sess.Phone,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		// Storage failure: nothing was persisted. Reset so /start
		// begins a fresh flow with no residual fields.
		m.sessions.Delete(sess.RequesterID)
		return []Reply{{
			Text:           "Извините, произошла ошибка при сохранении записи. Попробуйте ещё раз: /start",
			RemoveKeyboard: true,
		}}
	}

	if m.notifier != nil {
		m.notifier.BookingConfirmed(ctx, appt)
	}

	m.sessions.Delete(sess.RequesterID)
	return []Reply{{
		Text: "Вы записаны на " + sess.Date + " в " + timeOfDay +
			". Ждем вас в нашем шиномонтаже!",
		RemoveKeyboard: true,
	}}
}

func (m *Machine) listBookings(ctx context.Context, requesterID int64) []Reply {
	appts, err := m.booker.ListByRequester(ctx, requesterID)
	if err != nil {
		m.logger.Error("list bookings failed", "error", err, "requester_id", requesterID)
		return []Reply{{Text: "Извините, не удалось загрузить ваши записи."}}
	}
	if len(appts) == 0 {
		return []Reply{{Text: "У вас нет активных записей."}}
	}

	text := "Ваши записи:"
	for _, appt := range appts {
		text += "\n📅 " + appt.ScheduledAt.Format(schedule.DateTimeLayout) + " — " + appt.Name
	}
	return []Reply{{Text: text}}
}

// chunk splits choices into keyboard rows of at most size entries.
func chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	var rows [][]string
	for len(items) > 0 {
		n := size
		if len(items) < n {
			n = len(items)
		}
		rows = append(rows, items[:n])
		items = items[n:]
	}
	return rows
}
