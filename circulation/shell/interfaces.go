package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// RecordStore is the full storage contract the engine is wired against.
// Individual command handlers declare the narrow subset they need; this
// interface exists for the facade and for test doubles.
type RecordStore interface {
	LoadBook(ctx context.Context, bookID string) (recordstore.BookRow, error)
	LoadReservation(ctx context.Context, reservationID string) (recordstore.ReservationRow, error)
	LoadLoan(ctx context.Context, loanID string) (recordstore.LoanRow, error)
	FindLoanByReservation(ctx context.Context, reservationID string) (recordstore.LoanRow, error)
	QueryReservations(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.ReservationRow, error)
	QueryLoans(ctx context.Context, filter recordstore.RecordFilter) ([]recordstore.LoanRow, error)
	ExecuteUnit(ctx context.Context, unit *recordstore.Unit) error
}

// CatalogEntry is what the catalog collaborator returns for a book.
type CatalogEntry struct {
	Title           string
	Author          string
	CoverURL        string
	TotalCopies     int
	AvailableCopies int
}

// CatalogLookup is the read-only catalog collaborator, called once per
// reservation creation to snapshot display fields. Implementations live
// outside this module.
type CatalogLookup interface {
	LookupBook(ctx context.Context, bookID uuid.UUID) (CatalogEntry, error)
}

// DirectoryEntry is what the user-directory collaborator returns for a user.
type DirectoryEntry struct {
	Name      string
	Matricula string
	Email     string
}

// UserDirectory is the read-only user-directory collaborator, called once per
// reservation creation to snapshot display fields. Implementations live
// outside this module.
type UserDirectory interface {
	LookupUser(ctx context.Context, userID uuid.UUID) (DirectoryEntry, error)
}
