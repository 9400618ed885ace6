package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate_RoundTrip(t *testing.T) {
	keys := []string{
		"2025-01-01",
		"2025-06-10",
		"2025-12-31",
		"2024-02-29", // leap day
		"2000-01-01",
	}

	for _, key := range keys {
		parsed, ok := ParseLocalDate(key)
		require.True(t, ok, "parse %s", key)
		assert.Equal(t, key, FormatDateKey(parsed))
	}
}

func TestParseLocalDate_RoundTrip_AnyTimezone(t *testing.T) {
	zones := []string{"UTC", "America/Los_Angeles", "Asia/Tokyo", "Pacific/Kiritimati", "Etc/GMT+12"}

	original := time.Local
	t.Cleanup(func() { time.Local = original })

	for _, name := range zones {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		time.Local = loc

		parsed, ok := ParseLocalDate("2025-06-10")
		require.True(t, ok, "zone %s", name)
		assert.Equal(t, "2025-06-10", FormatDateKey(parsed), "zone %s", name)
	}
}

func TestParseLocalDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2025-13-01", "2025-02-30", "2025-06-1", "06/10/2025"} {
		_, ok := ParseLocalDate(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestDateKeysInRange(t *testing.T) {
	start, _ := ParseLocalDate("2025-06-29")
	end, _ := ParseLocalDate("2025-07-02")

	assert.Equal(t,
		[]string{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"},
		DateKeysInRange(start, end),
	)

	single := DateKeysInRange(start, start)
	assert.Equal(t, []string{"2025-06-29"}, single)

	assert.Nil(t, DateKeysInRange(end, start))
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"23:59", 1439},
		{"10:30", 630},
		{"", 0},
		{"garbage", 0},
		{"24:00", 0},
		{"12:60", 0},
		{"9:00", 0}, // not zero-padded
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeToMinutes(tt.input), "input %q", tt.input)
	}
}

func TestMinutesToTime_RoundTrip(t *testing.T) {
	for _, min := range []int{0, 1, 540, 630, 1439} {
		assert.Equal(t, min, TimeToMinutes(MinutesToTime(min)))
	}

	assert.Equal(t, "00:00", MinutesToTime(-5))
	assert.Equal(t, "00:00", MinutesToTime(1440))
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9:00"))
	assert.False(t, ValidClock("09-00"))
	assert.False(t, ValidClock(""))
}

func TestValidDateKey(t *testing.T) {
	assert.True(t, ValidDateKey("2025-06-10"))
	assert.False(t, ValidDateKey("2025-6-10"))
	assert.False(t, ValidDateKey("2025-06-10T00:00:00Z"))
	assert.False(t, ValidDateKey("tomorrow"))
}
