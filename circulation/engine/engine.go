package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/features/command/approvereservation"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/cancelreservation"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/createreservation"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markexpired"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markloanlate"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markwithdrawn"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/rejectreservation"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/renewloan"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/returnloan"
	"github.com/unibiblio/circulation-engine-go/circulation/shell"
	"github.com/unibiblio/circulation-engine-go/circulation/sweeper"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// Engine bundles the command handlers and the sweeper behind one facade.
// Every method is safe for concurrent use; conflicting operations are
// serialized by the store's version guards and settled by retry.
type Engine struct {
	recordStore shell.RecordStore
	create      createreservation.CommandHandler
	approve     approvereservation.CommandHandler
	reject      rejectreservation.CommandHandler
	cancel      cancelreservation.CommandHandler
	withdraw    markwithdrawn.CommandHandler
	expire      markexpired.CommandHandler
	renew       renewloan.CommandHandler
	returnLoan  returnloan.CommandHandler
	markLate    markloanlate.CommandHandler
	sweep       sweeper.Sweeper
	clock       func() time.Time
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger       recordstore.Logger
	clock        func() time.Time
	retryOptions []shell.RetryOption
}

// WithLogger sets the logger handed to the sweeper.
func WithLogger(logger recordstore.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source for all operations, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRetryOptions sets a custom retry configuration for all handlers.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(o *options) {
		o.retryOptions = opts
	}
}

// NewEngine wires the full command surface onto one record store and the
// two read-only collaborators.
func NewEngine(
	recordStore shell.RecordStore,
	catalog shell.CatalogLookup,
	directory shell.UserDirectory,
	opts ...Option,
) *Engine {

	cfg := options{
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	expire := markexpired.NewCommandHandler(
		recordStore, markexpired.WithRetryOptions(cfg.retryOptions...))
	markLate := markloanlate.NewCommandHandler(
		recordStore, markloanlate.WithRetryOptions(cfg.retryOptions...))

	sweeperOpts := []sweeper.Option{sweeper.WithClock(cfg.clock)}
	if cfg.logger != nil {
		sweeperOpts = append(sweeperOpts, sweeper.WithLogger(cfg.logger))
	}

	return &Engine{
		recordStore: recordStore,
		create: createreservation.NewCommandHandler(
			recordStore, catalog, directory,
			createreservation.WithRetryOptions(cfg.retryOptions...)),
		approve: approvereservation.NewCommandHandler(
			recordStore, approvereservation.WithRetryOptions(cfg.retryOptions...)),
		reject: rejectreservation.NewCommandHandler(
			recordStore, rejectreservation.WithRetryOptions(cfg.retryOptions...)),
		cancel: cancelreservation.NewCommandHandler(
			recordStore, cancelreservation.WithRetryOptions(cfg.retryOptions...)),
		withdraw: markwithdrawn.NewCommandHandler(
			recordStore, markwithdrawn.WithRetryOptions(cfg.retryOptions...)),
		expire: expire,
		renew: renewloan.NewCommandHandler(
			recordStore, renewloan.WithRetryOptions(cfg.retryOptions...)),
		returnLoan: returnloan.NewCommandHandler(
			recordStore, returnloan.WithRetryOptions(cfg.retryOptions...)),
		markLate: markLate,
		sweep:    sweeper.NewSweeper(recordStore, expire, markLate, sweeperOpts...),
		clock:    cfg.clock,
	}
}

// CreateReservation places a new Pending claim of the user on the book and
// returns the new reservation's id.
func (e *Engine) CreateReservation(
	ctx context.Context,
	bookID uuid.UUID,
	userID uuid.UUID,
) (uuid.UUID, shell.HandlerResult, error) {

	reservationID := uuid.New()

	result, err := e.create.Handle(
		ctx, createreservation.BuildCommand(reservationID, bookID, userID, e.clock()))
	if err != nil {
		return uuid.Nil, result, err
	}

	return reservationID, result, nil
}

// ApproveReservation approves a pending reservation and takes one copy out
// of the book's available pool.
func (e *Engine) ApproveReservation(
	ctx context.Context,
	reservationID uuid.UUID,
	adminID uuid.UUID,
	notes string,
) (shell.HandlerResult, error) {

	return e.approve.Handle(
		ctx, approvereservation.BuildCommand(reservationID, adminID, notes, e.clock()))
}

// RejectReservation rejects a pending reservation with a reason.
func (e *Engine) RejectReservation(
	ctx context.Context,
	reservationID uuid.UUID,
	reason string,
) (shell.HandlerResult, error) {

	return e.reject.Handle(
		ctx, rejectreservation.BuildCommand(reservationID, reason, e.clock()))
}

// CancelReservation cancels a pending or approved reservation, releasing the
// held copy if there was one.
func (e *Engine) CancelReservation(
	ctx context.Context,
	reservationID uuid.UUID,
) (shell.HandlerResult, error) {

	return e.cancel.Handle(
		ctx, cancelreservation.BuildCommand(reservationID, e.clock()))
}

// MarkWithdrawn converts an approved reservation into an active loan and
// returns the loan's id. When the withdrawal already happened the existing
// loan's id is returned with an idempotent result.
func (e *Engine) MarkWithdrawn(
	ctx context.Context,
	reservationID uuid.UUID,
) (uuid.UUID, shell.HandlerResult, error) {

	loanID := uuid.New()

	result, err := e.withdraw.Handle(
		ctx, markwithdrawn.BuildCommand(reservationID, loanID, e.clock()))
	if err != nil {
		return uuid.Nil, result, err
	}

	if result.Idempotent {
		existingID, lookupErr := e.lookupLoanID(ctx, reservationID)
		if lookupErr != nil {
			return uuid.Nil, result, lookupErr
		}

		return existingID, result, nil
	}

	return loanID, result, nil
}

// MarkExpired expires an approved reservation whose hold period has passed
// and releases its copy.
func (e *Engine) MarkExpired(
	ctx context.Context,
	reservationID uuid.UUID,
) (shell.HandlerResult, error) {

	return e.expire.Handle(
		ctx, markexpired.BuildCommand(reservationID, e.clock()))
}

// RenewLoan extends an active loan's due date by one extension period.
func (e *Engine) RenewLoan(
	ctx context.Context,
	loanID uuid.UUID,
) (shell.HandlerResult, error) {

	return e.renew.Handle(ctx, renewloan.BuildCommand(loanID, e.clock()))
}

// ReturnLoan closes an active or late loan and puts the copy back into the
// available pool.
func (e *Engine) ReturnLoan(
	ctx context.Context,
	loanID uuid.UUID,
) (shell.HandlerResult, error) {

	return e.returnLoan.Handle(ctx, returnloan.BuildCommand(loanID, e.clock()))
}

// RunExpirationSweep executes one sweep over overdue reservations and loans.
func (e *Engine) RunExpirationSweep(ctx context.Context) (sweeper.Report, error) {
	return e.sweep.Run(ctx)
}

// StartSweeping runs sweeps on the given interval until the context is
// cancelled. The returned channel closes when the sweep loop has stopped.
func (e *Engine) StartSweeping(ctx context.Context, interval time.Duration) <-chan struct{} {
	return e.sweep.Start(ctx, interval)
}

func (e *Engine) lookupLoanID(ctx context.Context, reservationID uuid.UUID) (uuid.UUID, error) {
	row, err := e.recordStore.FindLoanByReservation(ctx, reservationID.String())
	if err != nil {
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			return uuid.Nil, shell.ErrLoanNotFound
		}

		return uuid.Nil, err
	}

	return uuid.Parse(row.ID)
}
