package createreservation

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for creating a reservation.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: CreateReservation command is received
//	THEN: A new Pending reservation is created with the catalog and
//	      user snapshots captured at this moment
//	ERROR: ErrDuplicateActiveReservation if the user already has a Pending
//	       or Approved reservation for this book
//
// Availability is deliberately not checked here: a reservation request only
// claims a place in line, the copy count is decided at approval time.
func Decide(
	hasActiveReservation bool,
	book core.BookSnapshot,
	borrower core.BorrowerSnapshot,
	command Command,
) core.DecisionResult {

	if hasActiveReservation {
		return core.ErrorDecision(core.ErrDuplicateActiveReservation)
	}

	reservation := core.BuildPendingReservation(
		command.ReservationID,
		command.BookID,
		command.UserID,
		book,
		borrower,
		command.OccurredAt,
	)

	return core.SuccessDecision(core.RecordChanges{
		Reservation:      &reservation,
		ReservationIsNew: true,
	})
}
