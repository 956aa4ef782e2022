package domain

import "time"

// WeekLocation is the fixed reference time zone for week-boundary math.
// Using one fixed zone avoids off-by-one day errors at week boundaries.
var WeekLocation = time.UTC

// WeekStart returns Monday 00:00:00.000 of the week containing t,
// in WeekLocation.
func WeekStart(t time.Time) time.Time {
	t = t.In(WeekLocation)

	// time.Weekday numbers Sunday as 0; shift so Monday opens the week.
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	year, month, day := t.AddDate(0, 0, -offset).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, WeekLocation)
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing t,
// in WeekLocation.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// NextWeek shifts a week-start cursor forward by seven days.
func NextWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7)
}

// PreviousWeek shifts a week-start cursor back by seven days.
func PreviousWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -7)
}
