package markexpired_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markexpired"
)

func Test_Decide_Success_ExpiresAndReleasesCopy(t *testing.T) {
	// arrange
	approvedAt := time.Now().Add(-core.ReservationHoldPeriod - time.Hour)
	reservation := givenReservationApprovedAt(t, approvedAt)

	inventory, err := core.BuildBookInventory(reservation.BookID, 2, 0)
	require.NoError(t, err)

	command := markexpired.BuildCommand(reservation.ID, time.Now())

	// act
	result := markexpired.Decide(reservation, inventory, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	assert.Equal(t, core.ReservationExpired, result.Changes.Reservation.Status)
	require.NotNil(t, result.Changes.Inventory)
	assert.Equal(t, 1, result.Changes.Inventory.AvailableCopies)
}

func Test_Decide_Error_BeforeExpirationDate(t *testing.T) {
	// arrange
	reservation := givenReservationApprovedAt(t, time.Now())

	inventory, err := core.BuildBookInventory(reservation.BookID, 2, 0)
	require.NoError(t, err)

	command := markexpired.BuildCommand(reservation.ID, time.Now().Add(time.Hour))

	// act
	result := markexpired.Decide(reservation, inventory, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidStateTransition)
}

func Test_Decide_Idempotent_WhenAlreadyExpired(t *testing.T) {
	// arrange
	approvedAt := time.Now().Add(-core.ReservationHoldPeriod - time.Hour)
	reservation := givenReservationApprovedAt(t, approvedAt)

	expired, err := reservation.Expire(time.Now())
	require.NoError(t, err)

	inventory, err := core.BuildBookInventory(reservation.BookID, 2, 1)
	require.NoError(t, err)

	command := markexpired.BuildCommand(reservation.ID, time.Now())

	// act
	result := markexpired.Decide(expired, inventory, command)

	// assert
	assert.False(t, result.HasChangesToCommit())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenAlreadyWithdrawn(t *testing.T) {
	// arrange - the user picked the copy up just before the sweep settled
	approvedAt := time.Now().Add(-core.ReservationHoldPeriod - time.Hour)
	reservation := givenReservationApprovedAt(t, approvedAt)

	withdrawn, err := reservation.Withdraw(time.Now().Add(-time.Minute))
	require.NoError(t, err)

	inventory, invErr := core.BuildBookInventory(reservation.BookID, 2, 0)
	require.NoError(t, invErr)

	command := markexpired.BuildCommand(reservation.ID, time.Now())

	// act
	result := markexpired.Decide(withdrawn, inventory, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidStateTransition)
	assert.False(t, result.HasChangesToCommit(), "a withdrawn copy must never be clawed back")
}

func givenReservationApprovedAt(t *testing.T, approvedAt time.Time) core.Reservation {
	t.Helper()

	pending := core.BuildPendingReservation(
		uuid.New(), uuid.New(), uuid.New(),
		core.BookSnapshot{}, core.BorrowerSnapshot{}, approvedAt.Add(-time.Hour))

	approved, err := pending.Approve(uuid.New(), "", approvedAt)
	if err != nil {
		t.Fatalf("building approved reservation: %v", err)
	}

	return approved
}
