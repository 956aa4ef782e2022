package domain

// UserStatus describes the acting user's relationship to a scheduled class
type UserStatus string

const (
	UserStatusBooked      UserStatus = "BOOKED"
	UserStatusWaitingList UserStatus = "WAITING_LIST"
	UserStatusAvailable   UserStatus = "AVAILABLE"
)

// Valid reports whether the status is one of the known values.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusBooked, UserStatusWaitingList, UserStatusAvailable:
		return true
	}
	return false
}
