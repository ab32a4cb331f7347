package rejectreservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "RejectReservation"
)

// Command represents an administrator's intent to reject a pending reservation.
type Command struct {
	ReservationID uuid.UUID
	Reason        string
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID uuid.UUID, reason string, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		Reason:        reason,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
