package markwithdrawn

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "MarkReservationWithdrawn"
)

// Command represents the desk action of handing the held copy to the user.
// The LoanID is generated by the caller so that retried executions of the
// same command never produce two loans.
type Command struct {
	ReservationID uuid.UUID
	LoanID        uuid.UUID
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID uuid.UUID, loanID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		LoanID:        loanID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
