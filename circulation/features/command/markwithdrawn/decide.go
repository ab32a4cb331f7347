package markwithdrawn

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for withdrawal.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: An Approved reservation whose copy is held for the user
//	WHEN: MarkReservationWithdrawn command is received
//	THEN: The reservation becomes Withdrawn and an Active loan is created
//	      with its due date one loan period after withdrawal
//	ERROR: ErrInvalidStateTransition if the reservation is not Approved
//	IDEMPOTENCY: If a loan for this reservation already exists the withdrawal
//	             already happened, so no change is made (no-op)
//
// Inventory is untouched: the copy left the available pool at approval time
// and the loan now tracks it until return.
func Decide(reservation core.Reservation, loanExists bool, command Command) core.DecisionResult {
	if loanExists {
		return core.IdempotentDecision()
	}

	withdrawn, err := reservation.Withdraw(command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	loan, err := core.BuildLoanFromReservation(command.LoanID, withdrawn)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Reservation: &withdrawn,
		Loan:        &loan,
		LoanIsNew:   true,
	})
}
