package createreservation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/circulation/shell"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// RecordStore defines the interface needed by the CommandHandler for storage operations.
type RecordStore interface {
	LoadBook(ctx context.Context, bookID string) (recordstore.BookRow, error)
	QueryReservations(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.ReservationRow, error)
	ExecuteUnit(ctx context.Context, unit *recordstore.Unit) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core workflow: Load -> Map -> Decide -> Execute.
// External wrappers handle all observability concerns.
//
// The catalog and user directory collaborators are consulted exactly once per
// command, before the retry loop, to capture the display snapshots that get
// denormalized into the reservation.
type CommandHandler struct {
	recordStore  RecordStore
	catalog      shell.CatalogLookup
	directory    shell.UserDirectory
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
func NewCommandHandler(
	recordStore RecordStore,
	catalog shell.CatalogLookup,
	directory shell.UserDirectory,
	opts ...Option,
) CommandHandler {

	handler := CommandHandler{
		recordStore: recordStore,
		catalog:     catalog,
		directory:   directory,
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
	book, borrower, err := h.lookupSnapshots(ctx, command)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := h.executeCommand(retryCtx, command, book, borrower)
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

// lookupSnapshots captures the display data from the collaborators.
func (h CommandHandler) lookupSnapshots(
	ctx context.Context,
	command Command,
) (core.BookSnapshot, core.BorrowerSnapshot, error) {

	catalogEntry, err := h.catalog.LookupBook(ctx, command.BookID)
	if err != nil {
		return core.BookSnapshot{}, core.BorrowerSnapshot{}, err
	}

	directoryEntry, err := h.directory.LookupUser(ctx, command.UserID)
	if err != nil {
		return core.BookSnapshot{}, core.BorrowerSnapshot{}, err
	}

	book := core.BookSnapshot{
		Title:    catalogEntry.Title,
		Author:   catalogEntry.Author,
		CoverURL: catalogEntry.CoverURL,
	}

	borrower := core.BorrowerSnapshot{
		Name:      directoryEntry.Name,
		Matricula: directoryEntry.Matricula,
		Email:     directoryEntry.Email,
	}

	return book, borrower, nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(
	ctx context.Context,
	command Command,
	book core.BookSnapshot,
	borrower core.BorrowerSnapshot,
) (bool, error) {

	ctx = recordstore.WithStrongConsistency(ctx)

	// Load phase
	if _, err := h.recordStore.LoadBook(ctx, command.BookID.String()); err != nil {
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			return false, shell.ErrBookNotFound
		}

		return false, err
	}

	activeRows, err := h.recordStore.QueryReservations(
		ctx,
		buildActiveReservationFilter(command.BookID, command.UserID),
	)
	if err != nil {
		return false, err
	}

	// Business logic phase - delegate to pure core function
	result := Decide(len(activeRows) > 0, book, borrower, command)

	if decideErr := result.HasError(); decideErr != nil {
		return false, decideErr
	}

	if !result.HasChangesToCommit() {
		return true, nil
	}

	// Execute phase
	unit, err := shell.UnitFromChanges(result.Changes, shell.LoadedState{})
	if err != nil {
		return false, err
	}

	if execErr := h.recordStore.ExecuteUnit(ctx, unit); execErr != nil {
		// The partial unique index on active (book, user) pairs backstops the
		// pre-check above against a concurrent creation of the same claim.
		if errors.Is(execErr, recordstore.ErrDuplicateRecord) {
			return false, core.ErrDuplicateActiveReservation
		}

		return false, execErr
	}

	return false, nil
}

// buildActiveReservationFilter scans for reservations of this user for this
// book that still block a new one.
func buildActiveReservationFilter(bookID uuid.UUID, userID uuid.UUID) recordstore.RecordFilter {
	return recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf(
			core.ReservationPending.String(),
			core.ReservationApproved.String(),
		).
		AndBook(bookID.String()).
		AndUser(userID.String()).
		Finalize()
}
