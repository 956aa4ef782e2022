package models

// PopularClass is one row of the dashboard popularity ranking
type PopularClass struct {
	Name         string `json:"name"`
	BookingCount int    `json:"bookingCount"`
}

// DashboardResponse carries the admin KPI figures
type DashboardResponse struct {
	// Today's occupancy over capacity-limited scheduled classes, 0-100
	TodayOccupancyRate float64 `json:"todayOccupancyRate"`
	TodayBookedSpots   int     `json:"todayBookedSpots"`
	TodayTotalCapacity int     `json:"todayTotalCapacity"`

	WaitingListCount int `json:"waitingListCount"`

	MostPopularClasses []PopularClass `json:"mostPopularClasses"`
}
