package booking

import "github.com/rockm4n/GymMate/pkg/dbmetrics"

// Database interfaces are shared with dbmetrics so the repository works
// over *sql.DB, *dbmetrics.DB and an in-flight transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
