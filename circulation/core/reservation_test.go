package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

func Test_BuildPendingReservation_CapturesSnapshots(t *testing.T) {
	// arrange
	id := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	// act
	reservation := core.BuildPendingReservation(
		id, bookID, userID, givenBookSnapshot(), givenBorrowerSnapshot(), now)

	// assert
	assert.Equal(t, core.ReservationPending, reservation.Status)
	assert.Equal(t, core.ToOccurredAt(now), reservation.RequestDate)
	assert.Equal(t, "The Go Programming Language", reservation.Book.Title)
	assert.Equal(t, "20251234", reservation.Borrower.Matricula)
	assert.Nil(t, reservation.ExpirationDate)
}

func Test_Reservation_Approve_SetsExpirationOneHoldPeriodAhead(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)
	adminID := uuid.New()
	now := time.Now()

	// act
	approved, err := reservation.Approve(adminID, "ok to pick up", now)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationApproved, approved.Status)
	require.NotNil(t, approved.ApprovalDate)
	require.NotNil(t, approved.ExpirationDate)
	assert.Equal(t, approved.ApprovalDate.Add(core.ReservationHoldPeriod), *approved.ExpirationDate)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, adminID, *approved.ApprovedBy)
	assert.Equal(t, "ok to pick up", approved.ApprovalNotes)
}

func Test_Reservation_Approve_Error_WhenNotPending(t *testing.T) {
	notPending := []core.ReservationStatus{
		core.ReservationApproved,
		core.ReservationRejected,
		core.ReservationWithdrawn,
		core.ReservationExpired,
		core.ReservationCancelled,
	}

	for _, status := range notPending {
		t.Run(status.String(), func(t *testing.T) {
			reservation := givenPendingReservation(t)
			reservation.Status = status

			_, err := reservation.Approve(uuid.New(), "", time.Now())

			assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
		})
	}
}

func Test_Reservation_Reject_FromPending(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)

	// act
	rejected, err := reservation.Reject("no valid library card")

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationRejected, rejected.Status)
	assert.Equal(t, "no valid library card", rejected.RejectionReason)
}

func Test_Reservation_Reject_Error_WhenApproved(t *testing.T) {
	reservation := givenApprovedReservation(t, time.Now())

	_, err := reservation.Reject("too late for that")

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_Reservation_Cancel_FromPending_ReleasesNoCopy(t *testing.T) {
	// arrange
	reservation := givenPendingReservation(t)

	// act
	cancelled, releasesCopy, err := reservation.Cancel()

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationCancelled, cancelled.Status)
	assert.False(t, releasesCopy, "a pending reservation holds no copy")
}

func Test_Reservation_Cancel_FromApproved_ReleasesCopy(t *testing.T) {
	// arrange
	reservation := givenApprovedReservation(t, time.Now())

	// act
	cancelled, releasesCopy, err := reservation.Cancel()

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationCancelled, cancelled.Status)
	assert.True(t, releasesCopy, "an approved reservation holds one copy")
}

func Test_Reservation_Cancel_Error_WhenTerminal(t *testing.T) {
	terminal := []core.ReservationStatus{
		core.ReservationRejected,
		core.ReservationWithdrawn,
		core.ReservationExpired,
		core.ReservationCancelled,
	}

	for _, status := range terminal {
		t.Run(status.String(), func(t *testing.T) {
			reservation := givenPendingReservation(t)
			reservation.Status = status

			_, _, err := reservation.Cancel()

			assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
		})
	}
}

func Test_Reservation_Withdraw_FromApproved(t *testing.T) {
	// arrange
	now := time.Now()
	reservation := givenApprovedReservation(t, now)

	// act
	withdrawn, err := reservation.Withdraw(now.Add(time.Hour))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationWithdrawn, withdrawn.Status)
	require.NotNil(t, withdrawn.WithdrawalDate)
	assert.Equal(t, core.ToOccurredAt(now.Add(time.Hour)), *withdrawn.WithdrawalDate)
}

func Test_Reservation_Withdraw_Error_WhenPending(t *testing.T) {
	reservation := givenPendingReservation(t)

	_, err := reservation.Withdraw(time.Now())

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_Reservation_Expire_AfterHoldPeriodPassed(t *testing.T) {
	// arrange
	approvedAt := time.Now()
	reservation := givenApprovedReservation(t, approvedAt)

	// act
	expired, err := reservation.Expire(approvedAt.Add(core.ReservationHoldPeriod + time.Minute))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ReservationExpired, expired.Status)
}

func Test_Reservation_Expire_Error_BeforeHoldPeriodPassed(t *testing.T) {
	approvedAt := time.Now()
	reservation := givenApprovedReservation(t, approvedAt)

	_, err := reservation.Expire(approvedAt.Add(core.ReservationHoldPeriod - time.Minute))

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_Reservation_Expire_Error_WhenNotApproved(t *testing.T) {
	reservation := givenPendingReservation(t)

	_, err := reservation.Expire(time.Now().Add(30 * 24 * time.Hour))

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_ReservationStatus_IsActive(t *testing.T) {
	assert.True(t, core.ReservationPending.IsActive())
	assert.True(t, core.ReservationApproved.IsActive())
	assert.False(t, core.ReservationRejected.IsActive())
	assert.False(t, core.ReservationWithdrawn.IsActive())
	assert.False(t, core.ReservationExpired.IsActive())
	assert.False(t, core.ReservationCancelled.IsActive())
}

func Test_ReservationStatusFromString_Error_OnUnknownStatus(t *testing.T) {
	_, err := core.ReservationStatusFromString("Vanished")

	assert.ErrorIs(t, err, core.ErrUnknownReservationStatus)
}

/***** test helpers *****/

func givenBookSnapshot() core.BookSnapshot {
	return core.BookSnapshot{
		Title:    "The Go Programming Language",
		Author:   "Alan A. A. Donovan",
		CoverURL: "https://covers.example/gopl.jpg",
	}
}

func givenBorrowerSnapshot() core.BorrowerSnapshot {
	return core.BorrowerSnapshot{
		Name:      "Jane Doe",
		Matricula: "20251234",
		Email:     "jane.doe@university.example",
	}
}

func givenPendingReservation(t *testing.T) core.Reservation {
	t.Helper()

	return core.BuildPendingReservation(
		uuid.New(), uuid.New(), uuid.New(),
		givenBookSnapshot(), givenBorrowerSnapshot(),
		time.Now().Add(-time.Hour),
	)
}

func givenApprovedReservation(t *testing.T, approvedAt time.Time) core.Reservation {
	t.Helper()

	approved, err := givenPendingReservation(t).Approve(uuid.New(), "", approvedAt)
	if err != nil {
		t.Fatalf("building approved reservation: %v", err)
	}

	return approved
}
