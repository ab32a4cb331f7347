package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/unibiblio/circulation-engine-go/recordstore"
	"github.com/unibiblio/circulation-engine-go/recordstore/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName        = "books"
	defaultReservationsTableName = "reservations"
	defaultLoansTableName        = "loans"

	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildWriteQueryFailed  = "failed to build write query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildRowFailed         = "failed to build record row from database row"
	logMsgDBExecFailed           = "database execution failed during unit commit"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgBeginTxFailed          = "failed to begin transaction"
	logMsgCommitTxFailed         = "failed to commit transaction"
	logMsgRollbackTxFailed       = "failed to roll back transaction"
	logMsgRecordLoaded           = "record loaded"
	logMsgRecordsQueried         = "records queried"
	logMsgUnitCommitted          = "unit committed"
	logMsgConcurrencyConflict    = "concurrency conflict detected"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "recordstore operation: "

	logAttrError        = "error"
	logAttrQuery        = "query"
	logAttrTable        = "table"
	logAttrRecordID     = "record_id"
	logAttrRecordCount  = "record_count"
	logAttrWriteCount   = "write_count"
	logAttrDurationMS   = "duration_ms"
	logAttrRowsAffected = "rows_affected"

	logActionLoad   = "load"
	logActionQuery  = "query"
	logActionCommit = "commit"

	colID              = "id"
	colVersion         = "version"
	colTotalCopies     = "total_copies"
	colAvailableCopies = "available_copies"
	colBookID          = "book_id"
	colUserID          = "user_id"
	colReservationID   = "reservation_id"
	colStatus          = "status"
	colExpirationDate  = "expiration_date"
	colDueDate         = "due_date"
	colPayload         = "payload"
	colUpdatedAt       = "updated_at"

	dialectPostgres = "postgres"
	castJsonb       = "?::jsonb"
	castTimestamp   = "?::timestamp with time zone"
	exprDBNow       = "now()"
)

type (
	sqlQueryString = string
)

// RecordStore is a PostgreSQL-backed implementation of the circulation
// engine's storage contract. It leverages a database adapter and supports
// customizable logging, metrics, tracing, and table name configuration.
type RecordStore struct {
	db                    adapters.DBAdapter
	booksTableName        string
	reservationsTableName string
	loansTableName        string
	logger                recordstore.Logger
	contextualLogger      recordstore.ContextualLogger
	metricsCollector      recordstore.MetricsCollector
	tracingCollector      recordstore.TracingCollector
}

// NewRecordStoreFromPGXPool creates a new RecordStore using a pgx Pool with optional configuration.
func NewRecordStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewPGXAdapter(db), options...)
}

// NewRecordStoreFromPGXPoolWithReplica creates a new RecordStore using a
// primary pgx Pool and a read replica used for eventually consistent reads.
func NewRecordStoreFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (RecordStore, error) {
	if db == nil || replica == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewRecordStoreFromSQLDB creates a new RecordStore using a sql.DB with optional configuration.
func NewRecordStoreFromSQLDB(db *sql.DB, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewSQLAdapter(db), options...)
}

// NewRecordStoreFromSQLX creates a new RecordStore using a sqlx.DB with optional configuration.
func NewRecordStoreFromSQLX(db *sqlx.DB, options ...Option) (RecordStore, error) {
	if db == nil {
		return RecordStore{}, recordstore.ErrNilDatabaseConnection
	}

	return newRecordStore(adapters.NewSQLXAdapter(db), options...)
}

func newRecordStore(db adapters.DBAdapter, options ...Option) (RecordStore, error) {
	rs := RecordStore{
		db:                    db,
		booksTableName:        defaultBooksTableName,
		reservationsTableName: defaultReservationsTableName,
		loansTableName:        defaultLoansTableName,
	}

	for _, option := range options {
		if err := option(&rs); err != nil {
			return RecordStore{}, err
		}
	}

	return rs, nil
}

/***** reads *****/

// LoadBook retrieves a single book row by ID, or recordstore.ErrRecordNotFound.
func (rs RecordStore) LoadBook(ctx context.Context, bookID string) (recordstore.BookRow, error) {
	var empty recordstore.BookRow

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		From(rs.booksTableName).
		Select(colID, colVersion, colTotalCopies, colAvailableCopies, colPayload).
		Where(goqu.C(colID).Eq(bookID)).
		ToSQL()
	if buildErr != nil {
		rs.logError(logMsgBuildSelectQueryFailed, buildErr, logAttrTable, rs.booksTableName)
		return empty, buildErr
	}

	rows, err := rs.executeQuery(ctx, sqlQuery, rs.booksTableName)
	if err != nil {
		return empty, err
	}
	defer rs.closeRows(rows)

	if !rows.Next() {
		return empty, recordstore.ErrRecordNotFound
	}

	var (
		id              string
		version         int64
		totalCopies     int
		availableCopies int
		payload         []byte
	)

	if scanErr := rows.Scan(&id, &version, &totalCopies, &availableCopies, &payload); scanErr != nil {
		rs.logError(logMsgScanRowFailed, scanErr, logAttrTable, rs.booksTableName)
		return empty, errors.Join(recordstore.ErrScanningDBRowFailed, scanErr)
	}

	row, buildRowErr := recordstore.BuildBookRow(id, recordstore.VersionUint(version), totalCopies, availableCopies, payload)
	if buildRowErr != nil {
		rs.logError(logMsgBuildRowFailed, buildRowErr, logAttrTable, rs.booksTableName)
		return empty, buildRowErr
	}

	rs.logOperation(logMsgRecordLoaded, logAttrTable, rs.booksTableName, logAttrRecordID, bookID)

	return row, nil
}

// LoadReservation retrieves a single reservation row by ID, or recordstore.ErrRecordNotFound.
func (rs RecordStore) LoadReservation(ctx context.Context, reservationID string) (recordstore.ReservationRow, error) {
	var empty recordstore.ReservationRow

	sqlQuery, buildErr := rs.buildReservationSelectQuery(goqu.C(colID).Eq(reservationID), nil)
	if buildErr != nil {
		return empty, buildErr
	}

	reservations, err := rs.scanReservations(ctx, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(reservations) == 0 {
		return empty, recordstore.ErrRecordNotFound
	}

	rs.logOperation(logMsgRecordLoaded, logAttrTable, rs.reservationsTableName, logAttrRecordID, reservationID)

	return reservations[0], nil
}

// LoadLoan retrieves a single loan row by ID, or recordstore.ErrRecordNotFound.
func (rs RecordStore) LoadLoan(ctx context.Context, loanID string) (recordstore.LoanRow, error) {
	var empty recordstore.LoanRow

	sqlQuery, buildErr := rs.buildLoanSelectQuery(goqu.C(colID).Eq(loanID), nil)
	if buildErr != nil {
		return empty, buildErr
	}

	loans, err := rs.scanLoans(ctx, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(loans) == 0 {
		return empty, recordstore.ErrRecordNotFound
	}

	rs.logOperation(logMsgRecordLoaded, logAttrTable, rs.loansTableName, logAttrRecordID, loanID)

	return loans[0], nil
}

// FindLoanByReservation retrieves the loan derived from a reservation, or
// recordstore.ErrRecordNotFound if the reservation was never withdrawn.
// The reservation_id unique constraint guarantees at most one match.
func (rs RecordStore) FindLoanByReservation(ctx context.Context, reservationID string) (recordstore.LoanRow, error) {
	var empty recordstore.LoanRow

	sqlQuery, buildErr := rs.buildLoanSelectQuery(goqu.C(colReservationID).Eq(reservationID), nil)
	if buildErr != nil {
		return empty, buildErr
	}

	loans, err := rs.scanLoans(ctx, sqlQuery)
	if err != nil {
		return empty, err
	}

	if len(loans) == 0 {
		return empty, recordstore.ErrRecordNotFound
	}

	return loans[0], nil
}

// QueryReservations retrieves all reservation rows matching the filter.
// The filter's deadline bound applies to expiration_date.
func (rs RecordStore) QueryReservations(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.ReservationRow, error) {
	sqlQuery, buildErr := rs.buildReservationSelectQuery(nil, filterExpressions(filter, colExpirationDate))
	if buildErr != nil {
		return nil, buildErr
	}

	reservations, err := rs.scanReservations(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	rs.logOperation(logMsgRecordsQueried, logAttrTable, rs.reservationsTableName, logAttrRecordCount, len(reservations))

	return reservations, nil
}

// QueryLoans retrieves all loan rows matching the filter.
// The filter's deadline bound applies to due_date.
func (rs RecordStore) QueryLoans(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.LoanRow, error) {
	sqlQuery, buildErr := rs.buildLoanSelectQuery(nil, filterExpressions(filter, colDueDate))
	if buildErr != nil {
		return nil, buildErr
	}

	loans, err := rs.scanLoans(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	rs.logOperation(logMsgRecordsQueried, logAttrTable, rs.loansTableName, logAttrRecordCount, len(loans))

	return loans, nil
}

/***** writes *****/

// ExecuteUnit commits all writes in the unit atomically, respecting each
// update's version guard. It returns recordstore.ErrConcurrencyConflict when
// a guarded update matched no row (a concurrent writer won the race) and
// recordstore.ErrDuplicateRecord when an insert violated a unique constraint.
func (rs RecordStore) ExecuteUnit(ctx context.Context, unit *recordstore.Unit) error {
	if unit == nil || unit.IsEmpty() {
		return recordstore.ErrEmptyUnitSupplied
	}

	// Build all statements before touching the database so a malformed write
	// never leaves a transaction open.
	statements, buildErr := rs.buildUnitStatements(unit)
	if buildErr != nil {
		rs.logError(logMsgBuildWriteQueryFailed, buildErr, logAttrWriteCount, len(unit.Ops()))
		return buildErr
	}

	ctx, span := rs.startSpan(ctx, spanNameExecuteUnit, map[string]string{
		spanAttrWriteCount: itoa(len(statements)),
	})

	start := time.Now()
	err := rs.executeStatementsInTx(ctx, statements)
	duration := time.Since(start)

	if err != nil {
		rs.finishSpanError(span, err)
		rs.recordUnitMetricsContext(ctx, duration, statusFromError(err))

		return err
	}

	rs.finishSpanOK(span)
	rs.recordUnitMetricsContext(ctx, duration, statusSuccess)
	rs.logOperationContext(
		ctx,
		logMsgUnitCommitted,
		logAttrWriteCount, len(statements),
		logAttrDurationMS, rs.toMilliseconds(duration))

	return nil
}

// unitStatement pairs a SQL statement with its concurrency guard expectation.
type unitStatement struct {
	query   sqlQueryString
	guarded bool // guarded statements must affect exactly one row
}

func (rs RecordStore) buildUnitStatements(unit *recordstore.Unit) ([]unitStatement, error) {
	statements := make([]unitStatement, 0, len(unit.Ops()))

	for _, op := range unit.Ops() {
		var (
			query sqlQueryString
			err   error
		)

		guarded := true

		switch op.Kind {
		case recordstore.OpInsertReservation:
			query, err = rs.buildReservationInsertQuery(op.Reservation)
		case recordstore.OpUpdateReservation:
			query, err = rs.buildReservationUpdateQuery(op.Reservation)
		case recordstore.OpInsertLoan:
			query, err = rs.buildLoanInsertQuery(op.Loan)
		case recordstore.OpUpdateLoan:
			query, err = rs.buildLoanUpdateQuery(op.Loan)
		case recordstore.OpUpdateBook:
			query, err = rs.buildBookUpdateQuery(op.Book)
		}

		if err != nil {
			return nil, err
		}

		statements = append(statements, unitStatement{query: query, guarded: guarded})
	}

	return statements, nil
}

func (rs RecordStore) executeStatementsInTx(ctx context.Context, statements []unitStatement) error {
	tx, beginErr := rs.db.BeginTx(ctx)
	if beginErr != nil {
		rs.logError(logMsgBeginTxFailed, beginErr)
		return errors.Join(recordstore.ErrBeginningTransactionFailed, beginErr)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			rs.logWarn(logMsgRollbackTxFailed, logAttrError, rollbackErr.Error())
		}
	}()

	for _, statement := range statements {
		start := time.Now()
		result, execErr := tx.Exec(ctx, statement.query)
		rs.logQueryWithDuration(statement.query, logActionCommit, time.Since(start))

		if execErr != nil {
			if errors.Is(execErr, recordstore.ErrDuplicateRecord) {
				return execErr
			}

			rs.logError(logMsgDBExecFailed, execErr, logAttrQuery, statement.query)

			return errors.Join(recordstore.ErrExecutingUnitFailed, execErr)
		}

		rowsAffected, rowsAffectedErr := result.RowsAffected()
		if rowsAffectedErr != nil {
			rs.logError(logMsgRowsAffectedFailed, rowsAffectedErr)
			return errors.Join(recordstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
		}

		if statement.guarded && rowsAffected != 1 {
			rs.logOperation(logMsgConcurrencyConflict, logAttrRowsAffected, rowsAffected)
			return recordstore.ErrConcurrencyConflict
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		rs.logError(logMsgCommitTxFailed, commitErr)
		return errors.Join(recordstore.ErrCommittingTransactionFailed, commitErr)
	}

	return nil
}

/***** query building *****/

func filterExpressions(filter recordstore.RecordFilter, deadlineColumn string) []goqu.Expression {
	expressions := make([]goqu.Expression, 0, 4)

	if statuses := filter.Statuses(); len(statuses) > 0 {
		expressions = append(expressions, goqu.C(colStatus).In(statuses))
	}

	if bookID := filter.BookID(); bookID != "" {
		expressions = append(expressions, goqu.C(colBookID).Eq(bookID))
	}

	if userID := filter.UserID(); userID != "" {
		expressions = append(expressions, goqu.C(colUserID).Eq(userID))
	}

	if before := filter.DeadlineBefore(); before != nil {
		expressions = append(expressions, goqu.C(deadlineColumn).Lt(timestampLiteral(*before)))
	}

	return expressions
}

func (rs RecordStore) buildReservationSelectQuery(idExpression goqu.Expression, expressions []goqu.Expression) (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(rs.reservationsTableName).
		Select(colID, colBookID, colUserID, colStatus, colVersion, colExpirationDate, colPayload)

	if idExpression != nil {
		stmt = stmt.Where(idExpression)
	}

	if len(expressions) > 0 {
		stmt = stmt.Where(expressions...)
	}

	sqlQuery, _, buildErr := stmt.ToSQL()
	if buildErr != nil {
		rs.logError(logMsgBuildSelectQueryFailed, buildErr, logAttrTable, rs.reservationsTableName)
		return "", buildErr
	}

	return sqlQuery, nil
}

func (rs RecordStore) buildLoanSelectQuery(idExpression goqu.Expression, expressions []goqu.Expression) (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(rs.loansTableName).
		Select(colID, colReservationID, colBookID, colUserID, colStatus, colVersion, colDueDate, colPayload)

	if idExpression != nil {
		stmt = stmt.Where(idExpression)
	}

	if len(expressions) > 0 {
		stmt = stmt.Where(expressions...)
	}

	sqlQuery, _, buildErr := stmt.ToSQL()
	if buildErr != nil {
		rs.logError(logMsgBuildSelectQueryFailed, buildErr, logAttrTable, rs.loansTableName)
		return "", buildErr
	}

	return sqlQuery, nil
}

func (rs RecordStore) buildReservationInsertQuery(row recordstore.ReservationRow) (sqlQueryString, error) {
	record := goqu.Record{
		colID:             row.ID,
		colBookID:         row.BookID,
		colUserID:         row.UserID,
		colStatus:         row.Status,
		colVersion:        int64(row.Version),
		colExpirationDate: nullableTimestampLiteral(row.ExpirationDate),
		colPayload:        jsonbLiteral(row.PayloadJSON),
		colUpdatedAt:      goqu.L(exprDBNow),
	}

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Insert(rs.reservationsTableName).
		Rows(record).
		ToSQL()

	return sqlQuery, buildErr
}

func (rs RecordStore) buildReservationUpdateQuery(row recordstore.ReservationRow) (sqlQueryString, error) {
	record := goqu.Record{
		colStatus:         row.Status,
		colVersion:        int64(row.Version) + 1,
		colExpirationDate: nullableTimestampLiteral(row.ExpirationDate),
		colPayload:        jsonbLiteral(row.PayloadJSON),
		colUpdatedAt:      goqu.L(exprDBNow),
	}

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Update(rs.reservationsTableName).
		Set(record).
		Where(
			goqu.C(colID).Eq(row.ID),
			goqu.C(colVersion).Eq(int64(row.Version)),
		).
		ToSQL()

	return sqlQuery, buildErr
}

func (rs RecordStore) buildLoanInsertQuery(row recordstore.LoanRow) (sqlQueryString, error) {
	record := goqu.Record{
		colID:            row.ID,
		colReservationID: row.ReservationID,
		colBookID:        row.BookID,
		colUserID:        row.UserID,
		colStatus:        row.Status,
		colVersion:       int64(row.Version),
		colDueDate:       timestampLiteral(row.DueDate),
		colPayload:       jsonbLiteral(row.PayloadJSON),
		colUpdatedAt:     goqu.L(exprDBNow),
	}

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Insert(rs.loansTableName).
		Rows(record).
		ToSQL()

	return sqlQuery, buildErr
}

func (rs RecordStore) buildLoanUpdateQuery(row recordstore.LoanRow) (sqlQueryString, error) {
	record := goqu.Record{
		colStatus:    row.Status,
		colVersion:   int64(row.Version) + 1,
		colDueDate:   timestampLiteral(row.DueDate),
		colPayload:   jsonbLiteral(row.PayloadJSON),
		colUpdatedAt: goqu.L(exprDBNow),
	}

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Update(rs.loansTableName).
		Set(record).
		Where(
			goqu.C(colID).Eq(row.ID),
			goqu.C(colVersion).Eq(int64(row.Version)),
		).
		ToSQL()

	return sqlQuery, buildErr
}

// buildBookUpdateQuery only writes available_copies: total_copies belongs to
// the catalog and the display payload is an immutable snapshot.
func (rs RecordStore) buildBookUpdateQuery(row recordstore.BookRow) (sqlQueryString, error) {
	record := goqu.Record{
		colAvailableCopies: row.AvailableCopies,
		colVersion:         int64(row.Version) + 1,
		colUpdatedAt:       goqu.L(exprDBNow),
	}

	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Update(rs.booksTableName).
		Set(record).
		Where(
			goqu.C(colID).Eq(row.ID),
			goqu.C(colVersion).Eq(int64(row.Version)),
		).
		ToSQL()

	return sqlQuery, buildErr
}

func jsonbLiteral(payload []byte) goqu.Expression {
	return goqu.L(castJsonb, string(payload))
}

func timestampLiteral(t time.Time) goqu.Expression {
	return goqu.L(castTimestamp, t.UTC().Format(time.RFC3339Nano))
}

func nullableTimestampLiteral(t *time.Time) any {
	if t == nil {
		return nil
	}

	return timestampLiteral(*t)
}

/***** row scanning *****/

func (rs RecordStore) scanReservations(ctx context.Context, sqlQuery sqlQueryString) ([]recordstore.ReservationRow, error) {
	rows, err := rs.executeQuery(ctx, sqlQuery, rs.reservationsTableName)
	if err != nil {
		return nil, err
	}
	defer rs.closeRows(rows)

	reservations := make([]recordstore.ReservationRow, 0)

	for rows.Next() {
		var (
			id             string
			bookID         string
			userID         string
			status         string
			version        int64
			expirationDate sql.NullTime
			payload        []byte
		)

		if scanErr := rows.Scan(&id, &bookID, &userID, &status, &version, &expirationDate, &payload); scanErr != nil {
			rs.logError(logMsgScanRowFailed, scanErr, logAttrTable, rs.reservationsTableName)
			return nil, errors.Join(recordstore.ErrScanningDBRowFailed, scanErr)
		}

		var expiration *time.Time
		if expirationDate.Valid {
			t := expirationDate.Time
			expiration = &t
		}

		row, buildErr := recordstore.BuildReservationRow(
			id, bookID, userID, status, recordstore.VersionUint(version), expiration, payload)
		if buildErr != nil {
			rs.logError(logMsgBuildRowFailed, buildErr, logAttrTable, rs.reservationsTableName)
			return nil, buildErr
		}

		reservations = append(reservations, row)
	}

	return reservations, nil
}

func (rs RecordStore) scanLoans(ctx context.Context, sqlQuery sqlQueryString) ([]recordstore.LoanRow, error) {
	rows, err := rs.executeQuery(ctx, sqlQuery, rs.loansTableName)
	if err != nil {
		return nil, err
	}
	defer rs.closeRows(rows)

	loans := make([]recordstore.LoanRow, 0)

	for rows.Next() {
		var (
			id            string
			reservationID string
			bookID        string
			userID        string
			status        string
			version       int64
			dueDate       time.Time
			payload       []byte
		)

		if scanErr := rows.Scan(&id, &reservationID, &bookID, &userID, &status, &version, &dueDate, &payload); scanErr != nil {
			rs.logError(logMsgScanRowFailed, scanErr, logAttrTable, rs.loansTableName)
			return nil, errors.Join(recordstore.ErrScanningDBRowFailed, scanErr)
		}

		row, buildErr := recordstore.BuildLoanRow(
			id, reservationID, bookID, userID, status, recordstore.VersionUint(version), dueDate, payload)
		if buildErr != nil {
			rs.logError(logMsgBuildRowFailed, buildErr, logAttrTable, rs.loansTableName)
			return nil, buildErr
		}

		loans = append(loans, row)
	}

	return loans, nil
}

// executeQuery executes the SQL query with timing and debug logging.
func (rs RecordStore) executeQuery(ctx context.Context, sqlQuery sqlQueryString, table string) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := rs.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	rs.logQueryWithDuration(sqlQuery, logActionQuery, duration)
	rs.recordQueryMetricsContext(ctx, duration, table)

	if queryErr != nil {
		rs.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(recordstore.ErrQueryingRecordsFailed, queryErr)
	}

	return rows, nil
}

// closeRows safely closes database rows and logs any errors.
func (rs RecordStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		rs.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}
