package sweeper

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markexpired"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markloanlate"
	"github.com/unibiblio/circulation-engine-go/circulation/shell"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// RecordStore defines the scan operations the sweeper needs.
type RecordStore interface {
	QueryReservations(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.ReservationRow, error)
	QueryLoans(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.LoanRow, error)
}

// ExpirationHandler handles the expiration of a single reservation.
// Satisfied by markexpired.CommandHandler.
type ExpirationHandler interface {
	Handle(ctx context.Context, command markexpired.Command) (shell.HandlerResult, error)
}

// LatenessHandler flags a single overdue loan.
// Satisfied by markloanlate.CommandHandler.
type LatenessHandler interface {
	Handle(ctx context.Context, command markloanlate.Command) (shell.HandlerResult, error)
}

// Report summarizes one sweep run.
type Report struct {
	ReservationsExpired int
	LoansMarkedLate     int
	Skipped             int
}

// Sweeper periodically expires overdue approved reservations and flags
// overdue active loans. The scans run with eventual consistency; every hit
// is then settled through its command handler, which re-reads with strong
// consistency and carries the version guards. A candidate that changed
// between scan and settle is counted as skipped, never as an error.
type Sweeper struct {
	recordStore RecordStore
	expire      ExpirationHandler
	markLate    LatenessHandler
	logger      recordstore.Logger
	clock       func() time.Time
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithLogger sets a logger for per-run reports and skipped entries.
func WithLogger(logger recordstore.Logger) Option {
	return func(s *Sweeper) {
		s.logger = logger
	}
}

// WithClock sets the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Sweeper) {
		s.clock = clock
	}
}

// NewSweeper creates a Sweeper with optional configuration.
func NewSweeper(
	recordStore RecordStore,
	expire ExpirationHandler,
	markLate LatenessHandler,
	opts ...Option,
) Sweeper {

	sweeper := Sweeper{
		recordStore: recordStore,
		expire:      expire,
		markLate:    markLate,
		clock:       time.Now,
	}

	for _, opt := range opts {
		opt(&sweeper)
	}

	return sweeper
}

// Run executes one sweep and returns the per-category counts. A failing scan
// aborts the run; a failing individual settle does not.
func (s Sweeper) Run(ctx context.Context) (Report, error) {
	report := Report{}
	now := s.clock()
	scanCtx := recordstore.WithEventualConsistency(ctx)

	reservationRows, err := s.recordStore.QueryReservations(scanCtx, overdueReservationFilter(now))
	if err != nil {
		return report, err
	}

	for _, row := range reservationRows {
		reservationID, parseErr := uuid.Parse(row.ID)
		if parseErr != nil {
			report.Skipped++
			s.logSkip("skipping reservation with malformed id", row.ID, parseErr)

			continue
		}

		result, handleErr := s.expire.Handle(ctx, markexpired.BuildCommand(reservationID, now))

		switch {
		case handleErr != nil:
			report.Skipped++
			s.logSkip("skipping reservation that changed since scan", row.ID, handleErr)
		case result.Idempotent:
			report.Skipped++
		default:
			report.ReservationsExpired++
		}
	}

	loanRows, err := s.recordStore.QueryLoans(scanCtx, overdueLoanFilter(now))
	if err != nil {
		return report, err
	}

	for _, row := range loanRows {
		loanID, parseErr := uuid.Parse(row.ID)
		if parseErr != nil {
			report.Skipped++
			s.logSkip("skipping loan with malformed id", row.ID, parseErr)

			continue
		}

		result, handleErr := s.markLate.Handle(ctx, markloanlate.BuildCommand(loanID, now))

		switch {
		case handleErr != nil:
			report.Skipped++
			s.logSkip("skipping loan that changed since scan", row.ID, handleErr)
		case result.Idempotent:
			report.Skipped++
		default:
			report.LoansMarkedLate++
		}
	}

	return report, nil
}

// Start runs a sweep immediately and then on every tick until the context is
// cancelled. The returned channel closes when the loop has stopped.
func (s Sweeper) Start(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.runAndLog(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runAndLog(ctx)
			}
		}
	}()

	return done
}

func (s Sweeper) runAndLog(ctx context.Context) {
	report, err := s.Run(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("sweep run failed", "error", err.Error())
		}

		return
	}

	if s.logger != nil {
		s.logger.Info("sweep run finished",
			"reservations_expired", report.ReservationsExpired,
			"loans_marked_late", report.LoansMarkedLate,
			"skipped", report.Skipped,
		)
	}
}

func (s Sweeper) logSkip(msg string, recordID string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "record_id", recordID, "error", err.Error())
	}
}

func overdueReservationFilter(now time.Time) recordstore.RecordFilter {
	return recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf(core.ReservationApproved.String()).
		AndDeadlineBefore(now).
		Finalize()
}

func overdueLoanFilter(now time.Time) recordstore.RecordFilter {
	return recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf(core.LoanActive.String()).
		AndDeadlineBefore(now).
		Finalize()
}
