package markloanlate

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "MarkLoanLate"
)

// Command represents the sweeper's intent to flag an overdue loan.
type Command struct {
	LoanID     uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
