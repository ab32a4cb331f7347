package approvereservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/approvereservation"
)

func Test_Decide_Success_ApprovesAndReservesOneCopy(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)
	inventory, err := core.BuildBookInventory(reservation.BookID, 3, 2)
	require.NoError(t, err)

	adminID := uuid.New()
	command := approvereservation.BuildCommand(reservation.ID, adminID, "shelf B2", time.Now())

	// act
	result := approvereservation.Decide(reservation, inventory, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	require.NotNil(t, result.Changes.Reservation)
	assert.Equal(t, core.ReservationApproved, result.Changes.Reservation.Status)
	require.NotNil(t, result.Changes.Reservation.ExpirationDate)

	require.NotNil(t, result.Changes.Inventory)
	assert.Equal(t, 1, result.Changes.Inventory.AvailableCopies)
}

func Test_Decide_Error_WhenNoCopyAvailable(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)
	inventory, err := core.BuildBookInventory(reservation.BookID, 1, 0)
	require.NoError(t, err)

	command := approvereservation.BuildCommand(reservation.ID, uuid.New(), "", time.Now())

	// act
	result := approvereservation.Decide(reservation, inventory, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInsufficientInventory)
	assert.False(t, result.HasChangesToCommit(), "failed approval must change nothing")
}

func Test_Decide_Error_WhenReservationNotPending(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)
	approved, err := reservation.Approve(uuid.New(), "", time.Now())
	require.NoError(t, err)

	inventory, err := core.BuildBookInventory(reservation.BookID, 3, 2)
	require.NoError(t, err)

	command := approvereservation.BuildCommand(reservation.ID, uuid.New(), "", time.Now())

	// act
	result := approvereservation.Decide(approved, inventory, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidStateTransition)
}

func givenPendingReservation(t *testing.T) core.Reservation {
	t.Helper()

	return core.BuildPendingReservation(
		uuid.New(), uuid.New(), uuid.New(),
		core.BookSnapshot{Title: "Some Book"},
		core.BorrowerSnapshot{Name: "Some Student"},
		time.Now().Add(-time.Hour),
	)
}
