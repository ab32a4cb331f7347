package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markexpired"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markloanlate"
	"github.com/unibiblio/circulation-engine-go/circulation/shell"
	"github.com/unibiblio/circulation-engine-go/circulation/sweeper"
	"github.com/unibiblio/circulation-engine-go/recordstore"
	"github.com/unibiblio/circulation-engine-go/testutil/storedouble"
)

type SweeperTestSuite struct {
	suite.Suite
	store *storedouble.InMemoryStore
	sweep sweeper.Sweeper
	now   time.Time
}

func TestSweeperTestSuite(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) SetupTest() {
	s.store = storedouble.NewInMemoryStore()
	s.now = time.Date(2026, 3, 20, 3, 0, 0, 0, time.UTC)

	s.sweep = sweeper.NewSweeper(
		s.store,
		markexpired.NewCommandHandler(s.store, markexpired.WithRetryOptions(shell.WithBaseDelay(time.Millisecond))),
		markloanlate.NewCommandHandler(s.store, markloanlate.WithRetryOptions(shell.WithBaseDelay(time.Millisecond))),
		sweeper.WithClock(func() time.Time { return s.now }),
	)
}

func (s *SweeperTestSuite) TestRun_ExpiresOverdueApprovedReservations() {
	// arrange - hold period ran out an hour ago, the copy is still held
	bookID := s.seedBookWith(2, 0)
	reservationID := s.seedApprovedReservation(bookID, s.now.Add(-time.Hour))

	// act
	report, err := s.sweep.Run(context.Background())

	// assert
	s.Require().NoError(err)
	s.Equal(1, report.ReservationsExpired)
	s.Equal(0, report.LoansMarkedLate)
	s.Equal(0, report.Skipped)

	reservationRow, err := s.store.LoadReservation(context.Background(), reservationID.String())
	s.Require().NoError(err)
	s.Equal(core.ReservationExpired.String(), reservationRow.Status)

	bookRow, err := s.store.LoadBook(context.Background(), bookID.String())
	s.Require().NoError(err)
	s.Equal(1, bookRow.AvailableCopies, "the expired hold must go back into the pool")
}

func (s *SweeperTestSuite) TestRun_FlagsOverdueActiveLoans() {
	// arrange
	bookID := s.seedBookWith(1, 0)
	loanID := s.seedActiveLoan(bookID, s.now.Add(-24*time.Hour))

	// act
	report, err := s.sweep.Run(context.Background())

	// assert
	s.Require().NoError(err)
	s.Equal(0, report.ReservationsExpired)
	s.Equal(1, report.LoansMarkedLate)

	loanRow, err := s.store.LoadLoan(context.Background(), loanID.String())
	s.Require().NoError(err)
	s.Equal(core.LoanLate.String(), loanRow.Status)

	bookRow, err := s.store.LoadBook(context.Background(), bookID.String())
	s.Require().NoError(err)
	s.Equal(0, bookRow.AvailableCopies, "a late copy is still out on loan")
}

func (s *SweeperTestSuite) TestRun_IgnoresFutureDeadlines() {
	// arrange - hold period still running, loan not yet due
	bookID := s.seedBookWith(2, 0)
	s.seedApprovedReservation(bookID, s.now.Add(48*time.Hour))
	s.seedActiveLoan(bookID, s.now.Add(24*time.Hour))

	// act
	report, err := s.sweep.Run(context.Background())

	// assert
	s.Require().NoError(err)
	s.Equal(0, report.ReservationsExpired)
	s.Equal(0, report.LoansMarkedLate)
	s.Equal(0, report.Skipped)
}

func (s *SweeperTestSuite) TestRun_CountsFailedSettlesAsSkipped() {
	// arrange
	bookID := s.seedBookWith(2, 0)
	s.seedApprovedReservation(bookID, s.now.Add(-time.Hour))
	s.store.FailNextExecuteUnitWith(errors.New("connection reset"))

	// act
	report, err := s.sweep.Run(context.Background())

	// assert - the run itself succeeds, the candidate is skipped
	s.Require().NoError(err)
	s.Equal(0, report.ReservationsExpired)
	s.Equal(1, report.Skipped)
}

func (s *SweeperTestSuite) TestStart_StopsOnContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())

	done := s.sweep.Start(ctx, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("sweep loop did not stop after context cancellation")
	}
}

/***** seeding helpers *****/

func (s *SweeperTestSuite) seedBookWith(total int, available int) uuid.UUID {
	bookID := uuid.New()

	bookRow, err := recordstore.BuildBookRow(
		bookID.String(), shell.InitialRecordVersion, total, available, []byte(`{"title":"Swept Book"}`))
	s.Require().NoError(err)
	s.store.SeedBook(bookRow)

	return bookID
}

func (s *SweeperTestSuite) seedApprovedReservation(bookID uuid.UUID, expiresAt time.Time) uuid.UUID {
	approvedAt := expiresAt.Add(-core.ReservationHoldPeriod)

	pending := core.BuildPendingReservation(
		uuid.New(), bookID, uuid.New(),
		core.BookSnapshot{Title: "Swept Book"},
		core.BorrowerSnapshot{Name: "Slow Reader"},
		approvedAt.Add(-time.Hour),
	)

	approved, err := pending.Approve(uuid.New(), "", approvedAt)
	s.Require().NoError(err)

	row, err := shell.RowFromReservation(approved, shell.InitialRecordVersion)
	s.Require().NoError(err)
	s.store.SeedReservation(row)

	return approved.ID
}

func (s *SweeperTestSuite) seedActiveLoan(bookID uuid.UUID, dueAt time.Time) uuid.UUID {
	withdrawnAt := dueAt.Add(-core.LoanPeriod)

	pending := core.BuildPendingReservation(
		uuid.New(), bookID, uuid.New(),
		core.BookSnapshot{Title: "Swept Book"},
		core.BorrowerSnapshot{Name: "Slow Reader"},
		withdrawnAt.Add(-2*time.Hour),
	)

	approved, err := pending.Approve(uuid.New(), "", withdrawnAt.Add(-time.Hour))
	s.Require().NoError(err)

	withdrawn, err := approved.Withdraw(withdrawnAt)
	s.Require().NoError(err)

	loan, err := core.BuildLoanFromReservation(uuid.New(), withdrawn)
	s.Require().NoError(err)

	row, err := shell.RowFromLoan(loan, shell.InitialRecordVersion)
	s.Require().NoError(err)
	s.store.SeedLoan(row)

	return loan.ID
}
