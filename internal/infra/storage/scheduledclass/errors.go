package scheduledclass

import "errors"

var (
	// ErrClassNotFound is returned when no scheduled class matches the query
	ErrClassNotFound = errors.New("scheduledclass.repository: scheduled class not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("scheduledclass.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("scheduledclass.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("scheduledclass.repository: failed to scan row")
)
