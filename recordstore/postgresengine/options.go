package postgresengine

import (
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// Option defines a functional option for configuring a RecordStore.
type Option func(*RecordStore) error

// WithTableNames sets the table names for books, reservations and loans.
func WithTableNames(books string, reservations string, loans string) Option {
	return func(rs *RecordStore) error {
		if books == "" || reservations == "" || loans == "" {
			return recordstore.ErrEmptyTableNameSupplied
		}

		rs.booksTableName = books
		rs.reservationsTableName = reservations
		rs.loansTableName = loans

		return nil
	}
}

// WithLogger sets the logger for the RecordStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: record counts, durations, concurrency conflicts (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger recordstore.Logger) Option {
	return func(rs *RecordStore) error {
		rs.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the RecordStore.
// The contextual logger receives log messages with context information,
// enabling automatic trace/span correlation when tracing is configured.
func WithContextualLogger(logger recordstore.ContextualLogger) Option {
	return func(rs *RecordStore) error {
		rs.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the RecordStore.
// The collector receives read/commit durations and their outcome labels.
func WithMetrics(collector recordstore.MetricsCollector) Option {
	return func(rs *RecordStore) error {
		rs.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the RecordStore.
// The collector receives spans for unit commits including write counts and outcomes.
func WithTracing(collector recordstore.TracingCollector) Option {
	return func(rs *RecordStore) error {
		rs.tracingCollector = collector
		return nil
	}
}
