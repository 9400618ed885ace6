// Package ics serializes the availability store to an iCalendar
// document, the interchange format the rest of the scheduling world
// speaks.
package ics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

const (
	productID = "-//LuminaryOps//Production Rates//EN"
	uidDomain = "production-rates.luminaryops.com"
)

// Export renders every blocked date and event as a VEVENT. Full-day
// entries use VALUE=DATE with the exclusive DTEND the format requires;
// timed entries use UTC DTSTART/DTEND. UIDs are stable across exports
// so consuming calendars can update in place.
func Export(avail domain.Availability) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, key := range sortedKeys(avail.BlockedDates) {
		// A blocked date mirrored by a blocked event is exported once,
		// through the event.
		if hasBlockedEvent(avail.Events[key]) {
			continue
		}
		day, ok := domain.ParseLocalDate(key)
		if !ok {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("blocked-%s@%s", key, uidDomain))
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(domain.NextDay(day))
		ev.SetSummary(avail.BlockedDates[key])
		ev.SetProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(domain.EventTypeBlocked)))
	}

	for _, key := range sortedEventKeys(avail.Events) {
		day, ok := domain.ParseLocalDate(key)
		if !ok {
			continue
		}
		for _, event := range avail.Events[key] {
			if err := addEvent(cal, day, event); err != nil {
				return "", err
			}
		}
	}

	return cal.Serialize(), nil
}

func addEvent(cal *ical.Calendar, day time.Time, event domain.Event) error {
	ev := cal.AddEvent(fmt.Sprintf("%s@%s", event.ID, uidDomain))
	ev.SetSummary(event.Title)
	if event.Description != "" {
		ev.SetDescription(event.Description)
	}
	ev.SetProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(event.Type)))
	if event.Client != nil && event.Client.ProjectLocation != "" {
		ev.SetLocation(event.Client.ProjectLocation)
	}

	if event.FullDay {
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(domain.NextDay(day))
		return nil
	}

	start := domain.TimeToMinutes(event.StartTime)
	end := domain.TimeToMinutes(event.EndTime)
	if end <= start {
		return fmt.Errorf("event %s: end time %q not after start time %q",
			event.ID, event.EndTime, event.StartTime)
	}

	ev.SetStartAt(day.Add(time.Duration(start) * time.Minute).UTC())
	ev.SetEndAt(day.Add(time.Duration(end) * time.Minute).UTC())
	return nil
}

func hasBlockedEvent(events []domain.Event) bool {
	for _, ev := range events {
		if ev.Type == domain.EventTypeBlocked && ev.FullDay {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEventKeys(m map[string][]domain.Event) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
