package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters for the booking flow.
type BotMetrics struct {
	updatesTotal  *prometheus.CounterVec
	bookingsTotal *prometheus.CounterVec
	notifyTotal   *prometheus.CounterVec
	sendErrors    prometheus.Counter
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tireservice",
			Subsystem: "bot",
			Name:      "inbound_updates_total",
			Help:      "Total inbound Telegram updates",
		}, []string{"kind"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tireservice",
			Subsystem: "bot",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"status"}),
		notifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tireservice",
			Subsystem: "bot",
			Name:      "admin_notifications_total",
			Help:      "Admin notifications by outcome",
		}, []string{"status"}),
		sendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tireservice",
			Subsystem: "bot",
			Name:      "send_errors_total",
			Help:      "Outbound Telegram send failures",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.updatesTotal, m.bookingsTotal, m.notifyTotal, m.sendErrors)
	return m
}

func (m *BotMetrics) ObserveUpdate(kind string) {
	if m == nil {
		return
	}
	m.updatesTotal.WithLabelValues(kind).Inc()
}

func (m *BotMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BotMetrics) ObserveNotify(status string) {
	if m == nil {
		return
	}
	m.notifyTotal.WithLabelValues(status).Inc()
}

func (m *BotMetrics) ObserveSendError() {
	if m == nil {
		return
	}
	m.sendErrors.Inc()
}
