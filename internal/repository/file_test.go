package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

func TestFileProvider_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	provider, err := NewFileProvider(path)
	require.NoError(t, err)

	avail := domain.NewAvailability()
	avail.BlockedDates["2025-06-10"] = "Vacation"
	avail.AddEvent(domain.Event{
		ID: "e1", Date: "2025-06-11", Title: "Shoot",
		Type: domain.EventTypeBooked, FullDay: true,
		Client: &domain.ClientData{ClientName: "Acme Films", BookingSetID: "set1"},
	})

	require.NoError(t, provider.SaveCalendarData(context.Background(), avail))

	raw, err := provider.LoadCalendarData(context.Background())
	require.NoError(t, err)
	require.NotNil(t, raw)

	var blocked map[string]string
	require.NoError(t, json.Unmarshal(raw.BlockedDates, &blocked))
	assert.Equal(t, "Vacation", blocked["2025-06-10"])

	var events map[string][]domain.Event
	require.NoError(t, json.Unmarshal(raw.Events, &events))
	require.Len(t, events["2025-06-11"], 1)
	assert.Equal(t, "set1", events["2025-06-11"][0].Client.BookingSetID)
}

func TestFileProvider_MissingFileIsNotAnError(t *testing.T) {
	provider, err := NewFileProvider(filepath.Join(t.TempDir(), "calendar.json"))
	require.NoError(t, err)

	raw, err := provider.LoadCalendarData(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, raw)
}

func TestFileProvider_EmptyFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	provider, err := NewFileProvider(path)
	require.NoError(t, err)

	raw, err := provider.LoadCalendarData(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, raw)
}

func TestFileProvider_LegacyShapeSurvivesDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	payload := `{"bookedDates":{"2025-06-11":[{"id":"e1","date":"2025-06-11","title":"Shoot","type":"booked","fullDay":true}]}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	provider, err := NewFileProvider(path)
	require.NoError(t, err)

	raw, err := provider.LoadCalendarData(context.Background())
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Empty(t, raw.Events)
	assert.NotEmpty(t, raw.BookedDates)
}

func TestFileProvider_MalformedEntriesSurviveDecode(t *testing.T) {
	// Per-entry garbage must reach the caller intact so the integrity
	// sweep can repair it; only top-level invalid JSON is an error.
	path := filepath.Join(t.TempDir(), "calendar.json")
	payload := `{"blockedDates":{"June 10":123},"events":{"2025-06-11":"[]"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	provider, err := NewFileProvider(path)
	require.NoError(t, err)

	raw, err := provider.LoadCalendarData(context.Background())
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.NotEmpty(t, raw.BlockedDates)
	assert.NotEmpty(t, raw.Events)
}

func TestFileProvider_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "calendar.json")
	provider, err := NewFileProvider(path)
	require.NoError(t, err)

	require.NoError(t, provider.SaveCalendarData(context.Background(), domain.NewAvailability()))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileProvider_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	provider, err := NewFileProvider(filepath.Join(dir, "calendar.json"))
	require.NoError(t, err)

	require.NoError(t, provider.SaveCalendarData(context.Background(), domain.NewAvailability()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "calendar.json", entries[0].Name())
}
