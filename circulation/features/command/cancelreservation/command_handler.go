package cancelreservation

import (
	"context"
	"errors"

	"github.com/unibiblio/circulation-engine-go/circulation/shell"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// RecordStore defines the interface needed by the CommandHandler for storage operations.
type RecordStore interface {
	LoadReservation(ctx context.Context, reservationID string) (recordstore.ReservationRow, error)
	LoadBook(ctx context.Context, bookID string) (recordstore.BookRow, error)
	ExecuteUnit(ctx context.Context, unit *recordstore.Unit) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core workflow: Load -> Map -> Decide -> Execute.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	recordStore  RecordStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(recordStore RecordStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		recordStore: recordStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// It delegates business logic to executeCommand and handles retry with exponential backoff.
// Returns HandlerResult containing business outcomes and execution metadata for observability.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := h.executeCommand(retryCtx, command)
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	if isIdempotent {
		return shell.NewIdempotentResult(retryMetrics), err
	}

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
// The book row is loaded unconditionally even though only an Approved
// reservation releases a copy; one extra read keeps the flow uniform.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (bool, error) {
	ctx = recordstore.WithStrongConsistency(ctx)

	reservationRow, err := h.recordStore.LoadReservation(ctx, command.ReservationID.String())
	if err != nil {
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			return false, shell.ErrReservationNotFound
		}

		return false, err
	}

	bookRow, err := h.recordStore.LoadBook(ctx, reservationRow.BookID)
	if err != nil {
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			return false, shell.ErrBookNotFound
		}

		return false, err
	}

	reservation, err := shell.ReservationFromRow(reservationRow)
	if err != nil {
		return false, err
	}

	inventory, err := shell.InventoryFromRow(bookRow)
	if err != nil {
		return false, err
	}

	result := Decide(reservation, inventory, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasChangesToCommit() {
		return true, nil
	}

	unit, err := shell.UnitFromChanges(result.Changes, shell.LoadedState{
		Book:        bookRow,
		Reservation: reservationRow,
	})
	if err != nil {
		return false, err
	}

	return false, h.recordStore.ExecuteUnit(ctx, unit)
}
