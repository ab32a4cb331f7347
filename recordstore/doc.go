// Package recordstore defines the storage contract for the circulation engine.
//
// It is deliberately store-agnostic: row types carry a version counter, all
// writes are collected into a Unit of version-guarded inserts and updates, and
// a concrete engine (see postgresengine) executes a Unit atomically. A guarded
// update that matches no row signals that a concurrent writer got there first
// and surfaces ErrConcurrencyConflict, which callers retry.
//
// Reads are filtered through RecordFilter, a small builder covering the only
// scan shapes the engine needs: status sets, owner equality, and
// deadline-before bounds for the expiration sweeper.
package recordstore
