package domain

// ClassPopularity is a class name with its all-time booking count,
// used for the admin dashboard ranking.
type ClassPopularity struct {
	Name         string
	BookingCount int
}

// OccupancySummary aggregates booked spots against total capacity over a
// set of scheduled classes. Unlimited-capacity classes are excluded since
// they have no occupancy rate.
type OccupancySummary struct {
	BookedSpots   int
	TotalCapacity int
}

// Rate returns the occupancy rate as a percentage (0-100).
func (s OccupancySummary) Rate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	return float64(s.BookedSpots) / float64(s.TotalCapacity) * 100
}
