package cancelreservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "CancelReservation"
)

// Command represents a user's intent to cancel their own reservation.
type Command struct {
	ReservationID uuid.UUID
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
