package approvereservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "ApproveReservation"
)

// Command represents an administrator's intent to approve a pending reservation.
type Command struct {
	ReservationID uuid.UUID
	AdminID       uuid.UUID
	Notes         string
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID uuid.UUID, adminID uuid.UUID, notes string, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		AdminID:       adminID,
		Notes:         notes,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
