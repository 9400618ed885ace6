package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEvent_DeletesEmptyKey(t *testing.T) {
	a := NewAvailability()
	a.AddEvent(Event{ID: "e1", Date: "2025-06-10", Title: "Scout", Type: EventTypeRegular, FullDay: true})

	removed, found := a.RemoveEvent("e1")
	require.True(t, found)
	assert.Equal(t, "e1", removed.ID)

	_, exists := a.Events["2025-06-10"]
	assert.False(t, exists, "a date without events must leave the map")

	_, found = a.RemoveEvent("e1")
	assert.False(t, found)
}

func TestClone_IsIndependent(t *testing.T) {
	a := NewAvailability()
	a.BlockedDates["2025-06-10"] = "Vacation"
	a.AddEvent(Event{
		ID: "e1", Date: "2025-06-11", Title: "Shoot",
		Type: EventTypeBooked, FullDay: true,
		Client: &ClientData{ClientName: "Acme Films"},
	})

	clone := a.Clone()
	clone.BlockedDates["2025-06-12"] = "mutated"
	clone.Events["2025-06-11"][0].Title = "mutated"
	clone.Events["2025-06-11"][0].Client.ClientName = "mutated"

	assert.False(t, a.Blocked("2025-06-12"))
	assert.Equal(t, "Shoot", a.Events["2025-06-11"][0].Title)
	assert.Equal(t, "Acme Films", a.Events["2025-06-11"][0].Client.ClientName)
}

func TestBookingSetByID_SortedByDate(t *testing.T) {
	a := NewAvailability()
	for _, date := range []string{"2025-06-12", "2025-06-10", "2025-06-11"} {
		a.AddEvent(Event{
			ID: "e-" + date, Date: date, Title: "Acme Films",
			Type: EventTypeBooked, FullDay: true,
			Client: &ClientData{ClientName: "Acme Films", BookingSetID: "set1"},
		})
	}
	a.AddEvent(Event{
		ID: "other", Date: "2025-06-10", Title: "Other",
		Type: EventTypeBooked, FullDay: false, StartTime: "09:00", EndTime: "10:00",
		Client: &ClientData{ClientName: "Other", BookingSetID: "set2"},
	})

	set, ok := a.BookingSetByID("set1")
	require.True(t, ok)
	require.Len(t, set.Events, 3)
	assert.Equal(t, "2025-06-10", set.StartDate())
	assert.Equal(t, "2025-06-12", set.EndDate())

	_, ok = a.BookingSetByID("missing")
	assert.False(t, ok)
}

func TestBookingSet_ClientPrefersPrimary(t *testing.T) {
	set := BookingSet{
		ID: "set1",
		Events: []Event{
			{ID: "t1", Date: "2025-06-09", Client: &ClientData{ClientName: "Acme Films", IsTravel: true}},
			{ID: "e1", Date: "2025-06-10", Client: &ClientData{ClientName: "Acme Films", ProjectName: "Spot"}},
		},
	}

	client := set.Client()
	require.NotNil(t, client)
	assert.Equal(t, "Spot", client.ProjectName)
	assert.False(t, client.IsTravel)
}

func TestNewBookedEvent_CopiesClient(t *testing.T) {
	client := ClientData{ClientName: "Acme Films"}
	ev := NewBookedEvent("2025-06-10", "", client)

	client.ClientName = "mutated"
	assert.Equal(t, "Acme Films", ev.Client.ClientName)
	assert.Equal(t, EventTypeBooked, ev.Type)
	assert.True(t, ev.FullDay)
	assert.NotEmpty(t, ev.ID)
}
