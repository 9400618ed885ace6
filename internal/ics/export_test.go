package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/apognu/gocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

func parseICS(t *testing.T, data string) []gocal.Event {
	t.Helper()
	parser := gocal.NewParser(strings.NewReader(data))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	parser.Start, parser.End = &start, &end
	require.NoError(t, parser.Parse())
	return parser.Events
}

func TestExport_RoundTrip(t *testing.T) {
	avail := domain.NewAvailability()
	avail.BlockedDates["2025-06-10"] = "Vacation"
	avail.AddEvent(domain.Event{
		ID: "e1", Date: "2025-06-11", Title: "Shoot",
		Type: domain.EventTypeBooked, FullDay: true,
		Client: &domain.ClientData{ClientName: "Acme Films", ProjectLocation: "Lisbon"},
	})
	avail.AddEvent(domain.Event{
		ID: "e2", Date: "2025-06-12", Title: "Scout",
		Type: domain.EventTypeRegular, StartTime: "09:00", EndTime: "11:30",
	})

	out, err := Export(*avail)
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:"+productID)

	events := parseICS(t, out)
	require.Len(t, events, 3)

	byUID := make(map[string]gocal.Event, len(events))
	for _, ev := range events {
		byUID[ev.Uid] = ev
	}

	blocked, ok := byUID["blocked-2025-06-10@"+uidDomain]
	require.True(t, ok)
	assert.Equal(t, "Vacation", blocked.Summary)

	booked, ok := byUID["e1@"+uidDomain]
	require.True(t, ok)
	assert.Equal(t, "Shoot", booked.Summary)
	assert.Equal(t, "Lisbon", booked.Location)

	timed, ok := byUID["e2@"+uidDomain]
	require.True(t, ok)
	require.NotNil(t, timed.Start)
	require.NotNil(t, timed.End)
	assert.Equal(t, 150*time.Minute, timed.End.Sub(*timed.Start))
}

func TestExport_AllDayUsesExclusiveEnd(t *testing.T) {
	avail := domain.NewAvailability()
	avail.AddEvent(domain.Event{
		ID: "e1", Date: "2025-06-11", Title: "Shoot",
		Type: domain.EventTypeBooked, FullDay: true,
	})

	out, err := Export(*avail)
	require.NoError(t, err)

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250611")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250612")
}

func TestExport_BlockedDateMirroredByEventExportedOnce(t *testing.T) {
	avail := domain.NewAvailability()
	avail.BlockedDates["2025-06-10"] = "Vacation"
	avail.AddEvent(domain.Event{
		ID: "b1", Date: "2025-06-10", Title: "Vacation",
		Type: domain.EventTypeBlocked, FullDay: true,
	})

	out, err := Export(*avail)
	require.NoError(t, err)

	events := parseICS(t, out)
	require.Len(t, events, 1, "mirrored blocked date must not produce a duplicate")
	assert.Equal(t, "b1@"+uidDomain, events[0].Uid)
}

func TestExport_CategoriesCarryEventType(t *testing.T) {
	avail := domain.NewAvailability()
	avail.AddEvent(domain.Event{
		ID: "e1", Date: "2025-06-11", Title: "Shoot",
		Type: domain.EventTypeBooked, FullDay: true,
	})

	out, err := Export(*avail)
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORIES:BOOKED")
}

func TestExport_RejectsInvertedTimes(t *testing.T) {
	avail := domain.NewAvailability()
	avail.AddEvent(domain.Event{
		ID: "e1", Date: "2025-06-11", Title: "Scout",
		Type: domain.EventTypeRegular, StartTime: "11:00", EndTime: "09:00",
	})

	_, err := Export(*avail)
	assert.Error(t, err)
}

func TestExport_EmptyStore(t *testing.T) {
	out, err := Export(*domain.NewAvailability())
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
