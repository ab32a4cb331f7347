// Package core contains the pure domain model of the circulation engine:
// reservation and loan lifecycles as closed status types with transition
// methods guarded by the current state, the book inventory ledger with its
// bound invariant, and the policy constants (hold period, loan period,
// renewal limit).
//
// Everything in this package is side-effect free. Transition methods take the
// current value and return the changed value or an error; persistence,
// retries, and clock access live in the shell and feature packages.
package core
