package main

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// newEventUID generates event UIDs. Tests pin it for stable output.
var newEventUID = func() string { return uuid.NewString() }

// BuildDayICS serializes one day's contributions as an iCalendar document,
// one event per contribution. Untimed records (sitting exactly at UTC
// midnight) become all-day events; timed ones get a one-hour slot.
func BuildDayICS(cell *Cell, clock Clock) (string, error) {
	if cell == nil || len(cell.Contribs) == 0 {
		return "", fmt.Errorf("no contributions to export")
	}

	nowMillis, _ := clock.Now()
	stamp := time.UnixMilli(nowMillis).UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//streak//contribution graph//EN")

	for _, c := range cell.Contribs {
		event := cal.AddEvent(newEventUID())
		event.SetDtStampTime(stamp)
		event.SetSummary(c.Title)
		event.SetDescription(fmt.Sprintf("%d points", c.Points))

		start := time.UnixMilli(c.Timestamp).UTC()
		if c.Timestamp == cell.Timestamp {
			event.SetAllDayStartAt(start)
			event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		} else {
			event.SetStartAt(start)
			event.SetEndAt(start.Add(time.Hour))
		}
	}

	return cal.Serialize(), nil
}
