package recordstore

import (
	"errors"
)

// ErrRecordNotFound is returned when a load by ID matches no row.
var ErrRecordNotFound = errors.New("record not found")

// ErrConcurrencyConflict is returned when a version-guarded write affected no
// rows because a concurrent writer modified the record first.
var ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")

// ErrDuplicateRecord is returned when an insert violates a uniqueness
// constraint, e.g. a second active reservation for the same (book, user) pair
// or a second loan for the same reservation.
var ErrDuplicateRecord = errors.New("duplicate record, uniqueness constraint violated")

// ErrEmptyTableNameSupplied is returned when a store is configured with an empty table name.
var ErrEmptyTableNameSupplied = errors.New("empty table name supplied")

// ErrEmptyUnitSupplied is returned when a Unit without any writes is executed.
var ErrEmptyUnitSupplied = errors.New("empty unit supplied, nothing to commit")

// ErrNilDatabaseConnection is returned when a store is built from a nil connection.
var ErrNilDatabaseConnection = errors.New("nil database connection supplied")

// ErrQueryingRecordsFailed wraps database failures during record reads.
var ErrQueryingRecordsFailed = errors.New("querying records failed")

// ErrScanningDBRowFailed wraps failures while scanning a database row.
var ErrScanningDBRowFailed = errors.New("scanning database row failed")

// ErrBeginningTransactionFailed wraps failures opening the unit's transaction.
var ErrBeginningTransactionFailed = errors.New("beginning transaction failed")

// ErrExecutingUnitFailed wraps database failures while executing a write unit.
var ErrExecutingUnitFailed = errors.New("executing write unit failed")

// ErrCommittingTransactionFailed wraps failures committing the unit's transaction.
var ErrCommittingTransactionFailed = errors.New("committing transaction failed")

// ErrGettingRowsAffectedFailed wraps failures reading the affected-rows count.
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")

// VersionUint is a type alias for uint, representing a record's optimistic-lock version.
type VersionUint = uint
