// Package adapters provides database adapter implementations for different
// PostgreSQL driver interfaces (pgx, database/sql, sqlx).
//
// The adapters normalize reads, transactional writes, and driver error
// classification behind small interfaces so the store engine stays
// driver-agnostic. Transactions exist because a write Unit may touch up to
// three tables (book, reservation, loan) that must commit atomically.
package adapters
