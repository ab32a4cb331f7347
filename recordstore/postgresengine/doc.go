// Package postgresengine provides a PostgreSQL implementation of the recordstore contract.
//
// Records live in three versioned tables (books, reservations, loans). Reads
// return rows together with their version counters; writes are collected into
// a recordstore.Unit and executed inside one database transaction where every
// update is guarded by the version that was read. A guard that matches no row
// aborts the transaction with recordstore.ErrConcurrencyConflict, and unique
// constraint violations surface as recordstore.ErrDuplicateRecord.
//
// Key features:
//   - Multiple database adapter support (PGX with optional read replica, sql.DB, SQLX)
//   - Atomic multi-table units with per-record optimistic locking
//   - Record scans via the recordstore filter (status sets, owners, deadlines)
//   - Configurable table names, dual-logger support, metrics and tracing hooks
//
// Usage example:
//
//	pool, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewRecordStoreFromPGXPool(
//		pool,
//		postgresengine.WithLogger(logger),
//	)
//
//	book, _ := store.LoadBook(ctx, bookID)
//	unit := recordstore.BuildUnit().UpdateBook(changedBook)
//	err := store.ExecuteUnit(ctx, unit)
package postgresengine
