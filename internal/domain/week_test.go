package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday maps to preceding monday",
			time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday maps to itself at midnight",
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the week started six days earlier",
			time.Date(2024, 1, 21, 23, 59, 59, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"non-UTC input is normalized to the reference zone",
			time.Date(2024, 1, 15, 0, 30, 0, 0, time.FixedZone("CET", 3600)), // Sunday 23:30 UTC
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestWeekEnd(t *testing.T) {
	in := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)
	want := time.Date(2024, 1, 21, 23, 59, 59, 999000000, time.UTC)

	assert.Equal(t, want, WeekEnd(in))
}

func TestWeekNavigation(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), NextWeek(monday))
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), PreviousWeek(monday))
	assert.Equal(t, monday, PreviousWeek(NextWeek(monday)))
}
