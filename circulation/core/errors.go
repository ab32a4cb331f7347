package core

import "errors"

// ErrInvalidStateTransition is returned when a transition is attempted from a
// status it is not defined for. The involved records are left unchanged and
// the caller should re-fetch current state before deciding what to do next.
var ErrInvalidStateTransition = errors.New("invalid state transition for current status")

// ErrInsufficientInventory is returned when an approval would need a copy of a
// book that has none available. This is a normal business outcome, not a fault.
var ErrInsufficientInventory = errors.New("no copies available for this book")

// ErrDuplicateActiveReservation is returned when a user already holds a
// Pending or Approved reservation for the same book.
var ErrDuplicateActiveReservation = errors.New("user already has an active reservation for this book")

// ErrRenewalNotAllowed is returned when a loan cannot be renewed: the renewal
// limit is reached, or the loan is late (stored or effective) or returned.
var ErrRenewalNotAllowed = errors.New("loan renewal not allowed")

// ErrInventoryInvariantViolated signals a release that would push available
// copies above the total, i.e. an unpaired release upstream. This is a logic
// bug, never a business outcome: it must abort the operation, not be clamped.
var ErrInventoryInvariantViolated = errors.New("inventory invariant violated: release without matching reserve")

// ErrUnknownReservationStatus is returned when a stored status string does not
// name a reservation status.
var ErrUnknownReservationStatus = errors.New("unknown reservation status")

// ErrUnknownLoanStatus is returned when a stored status string does not name a
// loan status.
var ErrUnknownLoanStatus = errors.New("unknown loan status")
