package core

// RecordChanges is the write-set a decision produces: the records that must
// be committed together, and whether the reservation/loan are new rows or
// guarded updates of loaded ones.
type RecordChanges struct {
	Reservation      *Reservation
	ReservationIsNew bool
	Loan             *Loan
	LoanIsNew        bool
	Inventory        *BookInventory
}

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory
// methods: IdempotentDecision(), SuccessDecision(changes), or ErrorDecision(err).
// Do not construct DecisionResult directly to ensure type safety.
type DecisionResult struct {
	Outcome string // "idempotent", "success", or "error"
	Changes RecordChanges
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision creates a DecisionResult with record changes to commit.
func SuccessDecision(changes RecordChanges) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Changes: changes,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
// Error decisions never carry changes: a failed precondition check leaves
// every involved record exactly as it was.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasChangesToCommit returns true if there are record changes to commit.
func (r DecisionResult) HasChangesToCommit() bool {
	return r.Outcome == successOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
