package stats

import "github.com/rockm4n/GymMate/pkg/dbmetrics"

// Database interfaces are shared with dbmetrics so the repository works
// over *sql.DB and *dbmetrics.DB alike.
type DBExecutor = dbmetrics.DBExecutor
