package approvereservation

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for approving a reservation.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A reservation and the inventory ledger of its book
//	WHEN: ApproveReservation command is received
//	THEN: The reservation becomes Approved with an expiration date one hold
//	      period ahead, and one copy leaves the available pool
//	ERROR: ErrInvalidStateTransition if the reservation is not Pending
//	ERROR: ErrInsufficientInventory if no copy is available
//
// The approval and the copy reservation commit atomically: a decision that
// passes the state check but fails the inventory check changes nothing.
func Decide(reservation core.Reservation, inventory core.BookInventory, command Command) core.DecisionResult {
	approved, err := reservation.Approve(command.AdminID, command.Notes, command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	reserved, err := inventory.Reserve()
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Reservation: &approved,
		Inventory:   &reserved,
	})
}
