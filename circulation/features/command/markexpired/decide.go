package markexpired

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for expiring a reservation.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A reservation and the inventory ledger of its book
//	WHEN: MarkReservationExpired command is received after the hold period
//	THEN: The reservation becomes Expired and the held copy goes back into
//	      the available pool in the same unit
//	ERROR: ErrInvalidStateTransition if the reservation is not Approved or
//	       its expiration date has not passed yet
//	IDEMPOTENCY: If the reservation is already Expired, no change is made (no-op)
func Decide(reservation core.Reservation, inventory core.BookInventory, command Command) core.DecisionResult {
	if reservation.Status == core.ReservationExpired {
		return core.IdempotentDecision()
	}

	expired, err := reservation.Expire(command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	released, err := inventory.Release()
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Reservation: &expired,
		Inventory:   &released,
	})
}
