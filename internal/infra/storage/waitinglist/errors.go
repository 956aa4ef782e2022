package waitinglist

import "errors"

var (
	// ErrEntryNotFound is returned when no waiting-list entry matches the query
	ErrEntryNotFound = errors.New("waitinglist.repository: waiting list entry not found")

	// ErrDuplicateEntry is returned when the (user, scheduled class)
	// uniqueness constraint rejects an insert
	ErrDuplicateEntry = errors.New("waitinglist.repository: entry already exists for this user and class")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("waitinglist.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("waitinglist.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("waitinglist.repository: failed to scan row")
)
