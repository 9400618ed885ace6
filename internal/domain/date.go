package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical key format for every per-day lookup.
// Keys are compared as strings, never as timestamps, so a key always
// names the same logical day regardless of the host timezone.
const DateKeyLayout = "2006-01-02"

// FormatDateKey renders t as a zero-padded YYYY-MM-DD key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseLocalDate parses a YYYY-MM-DD key into a time anchored at local
// midnight. It returns ok=false for malformed or rolling-over input
// (e.g. "2025-02-30"); callers are expected to fall back to today and
// log a warning rather than fail.
func ParseLocalDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(DateKeyLayout, value)
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
	// time.Date normalizes out-of-range components instead of failing,
	// and a DST transition at midnight can shift the wall clock. Verify
	// the constructed date still names the requested day; reconstruct
	// from UTC components if it does not.
	if t.Year() != parsed.Year() || t.Month() != parsed.Month() || t.Day() != parsed.Day() {
		u := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if u.Year() != parsed.Year() || u.Month() != parsed.Month() || u.Day() != parsed.Day() {
			return time.Time{}, false
		}
		t = u
	}

	return t, true
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD key.
func ValidDateKey(s string) bool {
	if len(s) != len(DateKeyLayout) {
		return false
	}
	_, ok := ParseLocalDate(s)
	return ok
}

// NextDay returns midnight of the following day.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// DateKeysInRange returns the keys for every day in [start, end]
// inclusive. An inverted range yields nil.
func DateKeysInRange(start, end time.Time) []string {
	if end.Before(start) {
		return nil
	}

	var keys []string
	endKey := FormatDateKey(end)
	for d := start; ; d = NextDay(d) {
		key := FormatDateKey(d)
		keys = append(keys, key)
		if key == endKey {
			break
		}
	}
	return keys
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Malformed input yields 0, so callers validating times must treat 0 as
// a possible unset sentinel.
func TimeToMinutes(s string) int {
	if !ValidClock(s) {
		return 0
	}
	var h, m int
	fmt.Sscanf(s, "%02d:%02d", &h, &m)
	return h*60 + m
}

// MinutesToTime converts minutes since midnight back to "HH:MM".
func MinutesToTime(min int) string {
	if min < 0 || min > 23*60+59 {
		min = 0
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ValidClock reports whether s is a well-formed zero-padded "HH:MM"
// time-of-day string.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h < 24 && m < 60
}
