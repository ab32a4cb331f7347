package markloanlate

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

// Decide implements the business logic for flagging an overdue loan.
// Marking late is bookkeeping only: the copy stays out on loan, so the
// inventory ledger is never involved.
//
//	ERROR: ErrInvalidStateTransition if the loan is not Active or its due
//	       date has not passed yet
//	IDEMPOTENCY: If the loan is already Late, no change is made (no-op)
func Decide(loan core.Loan, command Command) core.DecisionResult {
	if loan.Status == core.LoanLate {
		return core.IdempotentDecision()
	}

	late, err := loan.MarkLate(command.OccurredAt)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.RecordChanges{
		Loan: &late,
	})
}
