package createreservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/createreservation"
)

func Test_Decide_Success_CreatesPendingReservationWithSnapshots(t *testing.T) {
	// arrange
	command := createreservation.BuildCommand(uuid.New(), uuid.New(), uuid.New(), time.Now())
	book := core.BookSnapshot{Title: "Clean Architecture", Author: "Robert C. Martin"}
	borrower := core.BorrowerSnapshot{Name: "Jane Doe", Matricula: "20251234"}

	// act
	result := createreservation.Decide(false, book, borrower, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	require.NotNil(t, result.Changes.Reservation)
	assert.True(t, result.Changes.ReservationIsNew)
	assert.Equal(t, command.ReservationID, result.Changes.Reservation.ID)
	assert.Equal(t, core.ReservationPending, result.Changes.Reservation.Status)
	assert.Equal(t, book, result.Changes.Reservation.Book)
	assert.Equal(t, borrower, result.Changes.Reservation.Borrower)
	assert.Nil(t, result.Changes.Inventory, "creation must not touch the inventory ledger")
}

func Test_Decide_Error_WhenUserAlreadyHasActiveReservationForBook(t *testing.T) {
	// arrange
	command := createreservation.BuildCommand(uuid.New(), uuid.New(), uuid.New(), time.Now())

	// act
	result := createreservation.Decide(true, core.BookSnapshot{}, core.BorrowerSnapshot{}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateActiveReservation)
	assert.False(t, result.HasChangesToCommit())
}
