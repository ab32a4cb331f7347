package renewloan

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for renewing a loan.
// This is a pure function with no side effects - it takes the relevant current
// state and a command and returns the record changes that should be committed.
//
// Business Rules:
//
//	GIVEN: A loan
//	WHEN: RenewLoan command is received
//	THEN: The due date moves one extension period forward and the renewal
//	      counter increments
//	ERROR: ErrRenewalNotAllowed if the loan is not Active, is past its due
//	       date at the command's time (even when a sweep has not flipped the
//	       stored status yet), or has used up its renewals
func Decide(loan core.Loan, command Command) core.DecisionResult {
	renewed, err := loan.Renew(command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Loan: &renewed,
	})
}
