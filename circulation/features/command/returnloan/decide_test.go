package returnloan_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/returnloan"
)

func Test_Decide_Success_ReturnsLoanAndReleasesCopy(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now())
	inventory, err := core.BuildBookInventory(loan.BookID, 3, 1)
	require.NoError(t, err)

	command := returnloan.BuildCommand(loan.ID, time.Now())

	// act
	result := returnloan.Decide(loan, inventory, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	assert.Equal(t, core.LoanReturned, result.Changes.Loan.Status)
	require.NotNil(t, result.Changes.Loan.ReturnDate)
	require.NotNil(t, result.Changes.Inventory)
	assert.Equal(t, 2, result.Changes.Inventory.AvailableCopies)
}

func Test_Decide_Success_LateLoanReturnsTheSameWay(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now().Add(-core.LoanPeriod-48*time.Hour))
	late, err := loan.MarkLate(time.Now())
	require.NoError(t, err)

	inventory, err := core.BuildBookInventory(loan.BookID, 3, 1)
	require.NoError(t, err)

	command := returnloan.BuildCommand(loan.ID, time.Now())

	// act
	result := returnloan.Decide(late, inventory, command)

	// assert
	require.True(t, result.HasChangesToCommit())
	assert.Equal(t, core.LoanReturned, result.Changes.Loan.Status)
	assert.Equal(t, 2, result.Changes.Inventory.AvailableCopies)
}

func Test_Decide_Idempotent_WhenAlreadyReturned_NeverReleasesTwice(t *testing.T) {
	// arrange
	loan := givenActiveLoan(t, time.Now())
	returned, err := loan.Return(time.Now())
	require.NoError(t, err)

	inventory, err := core.BuildBookInventory(loan.BookID, 3, 2)
	require.NoError(t, err)

	command := returnloan.BuildCommand(loan.ID, time.Now())

	// act
	result := returnloan.Decide(returned, inventory, command)

	// assert
	assert.False(t, result.HasChangesToCommit())
	assert.NoError(t, result.HasError())
}

func givenActiveLoan(t *testing.T, withdrawnAt time.Time) core.Loan {
	t.Helper()

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
