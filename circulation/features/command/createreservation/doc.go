// Package createreservation implements the Create Reservation use case.
//
// This feature lets a registered user claim one copy of a catalog book.
// It follows the Load-Decide-Execute pattern with proper separation between
// infrastructure concerns (CommandHandler) and pure business logic (Decide function).
//
// The business logic enforces that one user holds at most one active claim
// per book. The handler pre-checks this with a scoped query, and the store's
// partial unique index on active (book, user) pairs closes the race window
// between two concurrent creations.
package createreservation
