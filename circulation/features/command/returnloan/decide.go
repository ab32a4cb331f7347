package returnloan

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for returning a loan.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A loan and the inventory ledger of its book
//	WHEN: ReturnLoan command is received
//	THEN: The loan becomes Returned and the copy goes back into the
//	      available pool in the same unit; Late loans return the same way
//	ERROR: ErrInvalidStateTransition if the loan is in no returnable state
//	IDEMPOTENCY: If the loan is already Returned, no change is made (no-op),
//	             which is what keeps the copy from being released twice
func Decide(loan core.Loan, inventory core.BookInventory, command Command) core.DecisionResult {
	if loan.Status == core.LoanReturned {
		return core.IdempotentDecision()
	}

	returned, err := loan.Return(command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	released, err := inventory.Release()
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Loan:      &returned,
		Inventory: &released,
	})
}
