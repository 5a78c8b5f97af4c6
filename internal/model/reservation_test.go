package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{"identical intervals", 10, 12, 10, 12, true},
		{"b inside a", 10, 20, 12, 14, true},
		{"a inside b", 12, 14, 10, 20, true},
		{"partial overlap left", 10, 12, 11, 13, true},
		{"partial overlap right", 11, 13, 10, 12, true},
		{"back to back, b after a", 10, 12, 12, 14, false},
		{"back to back, b before a", 12, 14, 10, 12, false},
		{"disjoint", 10, 12, 20, 22, false},
		{"one night shared", 10, 12, 11, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			assert.Equal(t, tt.want, got)
			// The predicate is symmetric in its two intervals.
			assert.Equal(t, tt.want, Overlaps(day(tt.bIn), day(tt.bOut), day(tt.aIn), day(tt.aOut)))
		})
	}
}

func TestCandidateValidInterval(t *testing.T) {
	assert.True(t, CandidateBooking{CheckIn: day(1), CheckOut: day(3)}.ValidInterval())
	assert.False(t, CandidateBooking{CheckIn: day(5), CheckOut: day(5)}.ValidInterval(), "same-day stay")
	assert.False(t, CandidateBooking{CheckIn: day(20), CheckOut: day(15)}.ValidInterval(), "inverted stay")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestAge(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), 26},
		{"birthday today", time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"birthday tomorrow", time.Date(2008, time.June, 16, 0, 0, 0, 0, time.UTC), 17},
		{"birthday later this year", time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC), 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.dob, now))
		})
	}
}
