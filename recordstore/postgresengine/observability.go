package postgresengine

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/unibiblio/circulation-engine-go/recordstore"
)

const (
	metricQueryDuration = "recordstore_query_duration_seconds"
	metricUnitDuration  = "recordstore_unit_duration_seconds"

	spanNameExecuteUnit = "recordstore.execute_unit"
	spanAttrWriteCount  = "write_count"
	spanAttrOperation   = "operation"
	spanAttrTable       = "table"

	statusSuccess             = "success"
	statusError               = "error"
	statusConcurrencyConflict = "concurrency_conflict"
	statusDuplicate           = "duplicate_record"
)

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (rs RecordStore) logQueryWithDuration(sqlQuery sqlQueryString, action string, duration time.Duration) {
	if rs.logger != nil {
		rs.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, rs.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (rs RecordStore) logOperation(action string, args ...any) {
	if rs.logger != nil {
		rs.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (rs RecordStore) logWarn(message string, args ...any) {
	if rs.logger != nil {
		rs.logger.Warn(message, args...)
	}
}

// logError logs error information at error level if a logger is configured.
func (rs RecordStore) logError(message string, err error, args ...any) {
	if rs.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		rs.logger.Error(message, allArgs...)
	}
}

// logOperationContext logs operational information through the contextual
// logger (trace-correlated) when configured, falling back to the plain logger.
func (rs RecordStore) logOperationContext(ctx context.Context, action string, args ...any) {
	if rs.contextualLogger != nil {
		rs.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	rs.logOperation(action, args...)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (rs RecordStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// statusFromError maps a unit execution error to a metrics/span status label.
func statusFromError(err error) string {
	switch {
	case errors.Is(err, recordstore.ErrConcurrencyConflict):
		return statusConcurrencyConflict
	case errors.Is(err, recordstore.ErrDuplicateRecord):
		return statusDuplicate
	default:
		return statusError
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// startSpan begins a tracing span if a tracing collector is configured.
func (rs RecordStore) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, recordstore.SpanContext) {
	if rs.tracingCollector == nil {
		return ctx, nil
	}

	return rs.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishSpanOK finishes a span with success status.
func (rs RecordStore) finishSpanOK(span recordstore.SpanContext) {
	if rs.tracingCollector != nil && span != nil {
		rs.tracingCollector.FinishSpan(span, statusSuccess, nil)
	}
}

// finishSpanError finishes a span with an error status derived from err.
func (rs RecordStore) finishSpanError(span recordstore.SpanContext, err error) {
	if rs.tracingCollector != nil && span != nil {
		rs.tracingCollector.FinishSpan(span, statusFromError(err), map[string]string{logAttrError: err.Error()})
	}
}

// recordQueryMetricsContext records read durations, preferring the context-aware collector.
func (rs RecordStore) recordQueryMetricsContext(ctx context.Context, duration time.Duration, table string) {
	if rs.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: logActionQuery,
		spanAttrTable:     table,
	}

	if contextualCollector, ok := rs.metricsCollector.(recordstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricQueryDuration, duration, labels)
	} else {
		rs.metricsCollector.RecordDuration(metricQueryDuration, duration, labels)
	}
}

// recordUnitMetricsContext records unit commit durations with their outcome status.
func (rs RecordStore) recordUnitMetricsContext(ctx context.Context, duration time.Duration, status string) {
	if rs.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: logActionCommit,
		"status":          status,
	}

	if contextualCollector, ok := rs.metricsCollector.(recordstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricUnitDuration, duration, labels)
	} else {
		rs.metricsCollector.RecordDuration(metricUnitDuration, duration, labels)
	}
}
