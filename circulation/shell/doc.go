// Package shell holds the imperative glue between the pure domain core and
// the record store: retry logic for concurrency conflicts, handler result
// metadata, the collaborator interfaces (catalog, user directory), and the
// mapping between domain values and storable rows.
package shell
