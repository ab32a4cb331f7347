package cancelreservation

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for cancelling a reservation.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A reservation and the inventory ledger of its book
//	WHEN: CancelReservation command is received
//	THEN: The reservation becomes Cancelled; if it was Approved, the held
//	      copy goes back into the available pool in the same unit
//	ERROR: ErrInvalidStateTransition if the reservation is already terminal
//	       or already converted into a loan
func Decide(reservation core.Reservation, inventory core.BookInventory, command Command) core.DecisionResult {
	cancelled, releasesCopy, err := reservation.Cancel()
	if err != nil {
		return core.ErrorDecision(err)
	}

	changes := core.RecordChanges{
		Reservation: &cancelled,
	}

	if releasesCopy {
		released, releaseErr := inventory.Release()
		if releaseErr != nil {
			return core.ErrorDecision(releaseErr)
		}

		changes.Inventory = &released
	}

	return core.SuccessDecision(changes)
}
