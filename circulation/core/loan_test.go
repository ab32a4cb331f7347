package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

func Test_BuildLoanFromReservation_DueDateOneLoanPeriodAfterWithdrawal(t *testing.T) {
	// arrange
	withdrawnAt := time.Now()
	reservation := givenWithdrawnReservation(t, withdrawnAt)
	loanID := uuid.New()

	// act
	loan, err := core.BuildLoanFromReservation(loanID, reservation)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanActive, loan.Status)
	assert.Equal(t, reservation.ID, loan.ReservationID)
	assert.Equal(t, reservation.BookID, loan.BookID)
	assert.Equal(t, reservation.UserID, loan.UserID)
	assert.Equal(t, loan.WithdrawalDate.Add(core.LoanPeriod), loan.DueDate)
	assert.Equal(t, 0, loan.RenewalCount)
	assert.Equal(t, core.MaxRenewalsAllowed, loan.MaxRenewals)
}

func Test_BuildLoanFromReservation_Error_WhenNotWithdrawn(t *testing.T) {
	reservation := givenApprovedReservation(t, time.Now())

	_, err := core.BuildLoanFromReservation(uuid.New(), reservation)

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_Loan_Renew_ExtendsDueDate(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now())
	originalDueDate := loan.DueDate

	// act
	renewed, err := loan.Renew(time.Now().Add(time.Hour))

	// assert
	require.NoError(t, err)
	assert.Equal(t, originalDueDate.Add(core.RenewalExtension), renewed.DueDate)
	assert.Equal(t, 1, renewed.RenewalCount)
}

func Test_Loan_Renew_Error_AfterMaxRenewalsUsed(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now())
	now := time.Now().Add(time.Hour)

	var err error
	for i := 0; i < core.MaxRenewalsAllowed; i++ {
		loan, err = loan.Renew(now)
		require.NoError(t, err)
	}

	// act
	_, err = loan.Renew(now)

	// assert
	assert.ErrorIs(t, err, core.ErrRenewalNotAllowed)
}

func Test_Loan_Renew_Error_WhenEffectivelyLate_EvenIfStoredStatusStillActive(t *testing.T) {
	// arrange - withdrawn long enough ago that the due date has passed,
	// but no sweep has flipped the status yet
	loan := givenActiveLoan(t, time.Now().Add(-core.LoanPeriod-24*time.Hour))
	assert.Equal(t, core.LoanActive, loan.Status)

	// act
	_, err := loan.Renew(time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrRenewalNotAllowed)
}

func Test_Loan_Renew_Error_WhenLateOrReturned(t *testing.T) {
	for _, status := range []core.LoanStatus{core.LoanLate, core.LoanReturned} {
		t.Run(status.String(), func(t *testing.T) {
			loan := givenActiveLoan(t, time.Now())
			loan.Status = status

			_, err := loan.Renew(time.Now())

			assert.ErrorIs(t, err, core.ErrRenewalNotAllowed)
		})
	}
}

func Test_Loan_IsEffectivelyLate(t *testing.T) {
	loan := givenActiveLoan(t, time.Now())

	assert.False(t, loan.IsEffectivelyLate(loan.DueDate))
	assert.True(t, loan.IsEffectivelyLate(loan.DueDate.Add(time.Second)))

	returned, err := loan.Return(time.Now())
	require.NoError(t, err)
	assert.False(t, returned.IsEffectivelyLate(loan.DueDate.Add(time.Hour)))
}

func Test_Loan_MarkLate_AfterDueDatePassed(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now().Add(-core.LoanPeriod-time.Hour))

	// act
	late, err := loan.MarkLate(time.Now())

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanLate, late.Status)
}

func Test_Loan_MarkLate_Error_BeforeDueDate(t *testing.T) {
	loan := givenActiveLoan(t, time.Now())

	_, err := loan.MarkLate(time.Now())

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

func Test_Loan_Return_FromActive(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now())
	now := time.Now()

	// act
	returned, err := loan.Return(now)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, core.ToOccurredAt(now), *returned.ReturnDate)
}

func Test_Loan_Return_FromLate(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now().Add(-core.LoanPeriod-time.Hour))
	late, err := loan.MarkLate(time.Now())
	require.NoError(t, err)

	// act
	returned, err := late.Return(time.Now())

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.LoanReturned, returned.Status)
}

func Test_Loan_Return_Error_WhenAlreadyReturned(t *testing.T) {
	loan := givenActiveLoan(t, time.Now())
	returned, err := loan.Return(time.Now())
	require.NoError(t, err)

	_, err = returned.Return(time.Now())

	assert.ErrorIs(t, err, core.ErrInvalidStateTransition)
}

/***** test helpers *****/

func givenWithdrawnReservation(t *testing.T, withdrawnAt time.Time) core.Reservation {
	t.Helper()

	withdrawn, err := givenApprovedReservation(t, withdrawnAt.Add(-time.Hour)).Withdraw(withdrawnAt)
	if err != nil {
		t.Fatalf("building withdrawn reservation: %v", err)
	}

	return withdrawn
}

func givenActiveLoan(t *testing.T, withdrawnAt time.Time) core.Loan {
	t.Helper()

	loan, err := core.BuildLoanFromReservation(uuid.New(), givenWithdrawnReservation(t, withdrawnAt))
	if err != nil {
		t.Fatalf("building active loan: %v", err)
	}

	return loan
}
