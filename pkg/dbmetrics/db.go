// Package dbmetrics wraps *sql.DB so every query is timed into prometheus.
// Repositories depend on the DBExecutor interface, which both *sql.DB and
// the wrapper satisfy; metrics stay an opt-in concern of the wiring code.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kaimb/booking-service/pkg/metrics"
)

// DBExecutor is the query surface repositories need.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB is a *sql.DB wrapper that records query counts and latency.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap instruments db with the given collectors.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext times the round trip and observes row.Err, which carries
// query failures; sql.ErrNoRows only surfaces later at Scan and is counted
// as ok here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), row.Err())
	return row
}

// StartPoolCollector publishes connection pool gauges every interval until
// stop is closed. Run it in its own goroutine.
func (d *DB) StartPoolCollector(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(stats.OpenConnections, stats.Idle)
		case <-stop:
			return
		}
	}
}

// queryOperation extracts the leading SQL verb for the operation label.
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
