package createreservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

const (
	commandType = "CreateReservation"
)

// Command represents the intent of a user to reserve one copy of a book.
// The ReservationID is generated by the caller so that retried executions
// of the same command never produce two reservations.
type Command struct {
	ReservationID uuid.UUID
	BookID        uuid.UUID
	UserID        uuid.UUID
	OccurredAt    core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(reservationID uuid.UUID, bookID uuid.UUID, userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		ReservationID: reservationID,
		BookID:        bookID,
		UserID:        userID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
