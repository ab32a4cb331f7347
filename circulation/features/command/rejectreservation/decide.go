package rejectreservation

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for rejecting a reservation.
// Only Pending reservations can be rejected, and a pending reservation holds
// no copy yet, so the inventory ledger is never involved.
//
//	ERROR: ErrInvalidStateTransition if the reservation is not Pending
func Decide(reservation core.Reservation, command Command) core.DecisionResult {
	rejected, err := reservation.Reject(command.Reason)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Reservation: &rejected,
	})
}
