// Package schedule produces the candidate dates and time slots offered
// during booking. Availability is not checked against existing
// appointments; the shop reconciles overlaps manually.
package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the format dates are offered in and parsed back from.
const DateLayout = "02.01.2006"

// DateTimeLayout combines an offered date with an offered time slot.
const DateTimeLayout = "02.01.2006 15:04"

const (
	offerDays = 7
	openHour  = 8
	closeHour = 17
)

// Generator computes booking choices relative to the current instant.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock allows injecting a clock for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Dates returns the next 7 calendar days starting today, formatted
// DD.MM.YYYY in ascending order. Recomputed on every call so the list
// always starts from "now".
func (g *Generator) Dates() []string {
	today := g.now()
	dates := make([]string, 0, offerDays)
	for i := 0; i < offerDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// TimeSlots returns every half-hour boundary from 08:00 through 17:00
// inclusive, independent of the chosen date.
func (g *Generator) TimeSlots() []string {
	var slots []string
	for hour := openHour; hour <= closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < closeHour {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

// ParseDateTime resolves an offered date and time pair into a single
// timestamp. Both values arrive as free text from the chat, so a
// format mismatch is an expected failure mode.
func ParseDateTime(date, timeOfDay string) (time.Time, error) {
	ts, err := time.Parse(DateTimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: parse date/time: %w", err)
	}
	return ts, nil
}
