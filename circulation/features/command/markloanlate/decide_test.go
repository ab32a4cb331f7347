package markloanlate_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markloanlate"
)

func Test_Decide_Success_FlagsOverdueLoan(t *testing.T) {
	// arrange
	loan := givenOverdueActiveLoan(t)
	command := markloanlate.BuildCommand(loan.ID, time.Now())

	// act
	result := markloanlate.Decide(loan, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	assert.Equal(t, core.LoanLate, result.Changes.Loan.Status)
	assert.Nil(t, result.Changes.Inventory, "the copy is still out on loan")
}

func Test_Decide_Idempotent_WhenAlreadyLate(t *testing.T) {
	// arrange
	loan := givenOverdueActiveLoan(t)
	late, err := loan.MarkLate(time.Now())
	require.NoError(t, err)

	command := markloanlate.BuildCommand(loan.ID, time.Now())

	// act
	result := markloanlate.Decide(late, command)

	// assert
	assert.False(t, result.HasChangesToCommit())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenNotOverdueYet(t *testing.T) {
	// arrange
	loan := givenOverdueActiveLoan(t)
	command := markloanlate.BuildCommand(loan.ID, loan.DueDate.Add(-time.Hour))

	// act
	result := markloanlate.Decide(loan, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidStateTransition)
}

func givenOverdueActiveLoan(t *testing.T) core.Loan {
	t.Helper()

	withdrawnAt := time.Now().Add(-core.LoanPeriod - 24*time.Hour)

	pending := core.BuildPendingReservation(
		uuid.New(), uuid.New(), uuid.New(),
		core.BookSnapshot{}, core.BorrowerSnapshot{}, withdrawnAt.Add(-2*time.Hour))

	approved, err := pending.Approve(uuid.New(), "", withdrawnAt.Add(-time.Hour))
	if err != nil {
		t.Fatalf("approving reservation: %v", err)
	}

	withdrawn, err := approved.Withdraw(withdrawnAt)
	if err != nil {
		t.Fatalf("withdrawing reservation: %v", err)
	}

	loan, err := core.BuildLoanFromReservation(uuid.New(), withdrawn)
	if err != nil {
		t.Fatalf("building loan: %v", err)
	}

	return loan
}
