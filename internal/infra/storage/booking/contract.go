package booking

import "github.com/kaimb/booking-service/pkg/dbmetrics"

// DBExecutor is satisfied by *sql.DB and by the dbmetrics wrapper, so the
// repository works the same with and without metrics collection.
type DBExecutor = dbmetrics.DBExecutor
