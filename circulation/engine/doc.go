// Package engine exposes the circulation lifecycle as one facade: reservation
// creation through approval, withdrawal, loan renewal and return, plus the
// periodic expiration sweep.
//
// The facade only wires feature packages together; all business rules live in
// the pure Decide functions and all storage coordination in the handlers.
package engine
