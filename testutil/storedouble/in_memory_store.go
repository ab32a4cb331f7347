package storedouble

import (
	"context"
	"sync"

	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// Statuses mirroring the partial unique index on active reservations in the
// Postgres schema.
const (
	activeStatusPending  = "Pending"
	activeStatusApproved = "Approved"
)

// InMemoryStore is a test double for the record store. It honors the same
// contract as the Postgres engine: version-guarded updates, all-or-nothing
// units, the active-reservation uniqueness rule and the one-loan-per-
// reservation rule. Safe for concurrent use, so contention tests can race
// real goroutines against it.
type InMemoryStore struct {
	mu           sync.Mutex
	books        map[string]recordstore.BookRow
	reservations map[string]recordstore.ReservationRow
	loans        map[string]recordstore.LoanRow

	pendingConflicts int
	failNextWith     error
}

// NewInMemoryStore creates an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		books:        make(map[string]recordstore.BookRow),
		reservations: make(map[string]recordstore.ReservationRow),
		loans:        make(map[string]recordstore.LoanRow),
	}
}

// SeedBook stores a book row directly, bypassing all guards.
func (s *InMemoryStore) SeedBook(row recordstore.BookRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[row.ID] = row
}

// SeedReservation stores a reservation row directly, bypassing all guards.
func (s *InMemoryStore) SeedReservation(row recordstore.ReservationRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations[row.ID] = row
}

// SeedLoan stores a loan row directly, bypassing all guards.
func (s *InMemoryStore) SeedLoan(row recordstore.LoanRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loans[row.ID] = row
}

// InjectExecuteConflicts makes the next n ExecuteUnit calls fail with
// ErrConcurrencyConflict without applying anything, for retry tests.
func (s *InMemoryStore) InjectExecuteConflicts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingConflicts = n
}

// FailNextExecuteUnitWith makes the next ExecuteUnit call fail with the
// given error without applying anything.
func (s *InMemoryStore) FailNextExecuteUnitWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failNextWith = err
}

// LoadBook implements the store contract.
func (s *InMemoryStore) LoadBook(_ context.Context, bookID string) (recordstore.BookRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.books[bookID]
	if !ok {
		return recordstore.BookRow{}, recordstore.ErrRecordNotFound
	}

	return row, nil
}

// LoadReservation implements the store contract.
func (s *InMemoryStore) LoadReservation(_ context.Context, reservationID string) (recordstore.ReservationRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.reservations[reservationID]
	if !ok {
		return recordstore.ReservationRow{}, recordstore.ErrRecordNotFound
	}

	return row, nil
}

// LoadLoan implements the store contract.
func (s *InMemoryStore) LoadLoan(_ context.Context, loanID string) (recordstore.LoanRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.loans[loanID]
	if !ok {
		return recordstore.LoanRow{}, recordstore.ErrRecordNotFound
	}

	return row, nil
}

// FindLoanByReservation implements the store contract.
func (s *InMemoryStore) FindLoanByReservation(_ context.Context, reservationID string) (recordstore.LoanRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.loans {
		if row.ReservationID == reservationID {
			return row, nil
		}
	}

	return recordstore.LoanRow{}, recordstore.ErrRecordNotFound
}

// QueryReservations implements the store contract. The deadline predicate
// matches on the expiration date.
func (s *InMemoryStore) QueryReservations(
	_ context.Context,
	filter recordstore.RecordFilter,
) ([]recordstore.ReservationRow, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []recordstore.ReservationRow

	for _, row := range s.reservations {
		if !statusMatches(filter, row.Status) {
			continue
		}

		if filter.BookID() != "" && filter.BookID() != row.BookID {
			continue
		}

		if filter.UserID() != "" && filter.UserID() != row.UserID {
			continue
		}

		if deadline := filter.DeadlineBefore(); deadline != nil {
			if row.ExpirationDate == nil || !row.ExpirationDate.Before(*deadline) {
				continue
			}
		}

		matches = append(matches, row)
	}

	return matches, nil
}

// QueryLoans implements the store contract. The deadline predicate matches
// on the due date.
func (s *InMemoryStore) QueryLoans(
	_ context.Context,
	filter recordstore.RecordFilter,
) ([]recordstore.LoanRow, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []recordstore.LoanRow

	for _, row := range s.loans {
		if !statusMatches(filter, row.Status) {
			continue
		}

		if filter.BookID() != "" && filter.BookID() != row.BookID {
			continue
		}

		if filter.UserID() != "" && filter.UserID() != row.UserID {
			continue
		}

		if deadline := filter.DeadlineBefore(); deadline != nil {
			if !row.DueDate.Before(*deadline) {
				continue
			}
		}

		matches = append(matches, row)
	}

	return matches, nil
}

// ExecuteUnit implements the store contract with the same semantics as the
// Postgres engine: every write applies or none does, updates are guarded by
// the version that was read, and inserts are checked against the uniqueness
// rules the schema carries.
func (s *InMemoryStore) ExecuteUnit(_ context.Context, unit *recordstore.Unit) error {
	if unit == nil || unit.IsEmpty() {
		return recordstore.ErrEmptyUnitSupplied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNextWith != nil {
		err := s.failNextWith
		s.failNextWith = nil

		return err
	}

	if s.pendingConflicts > 0 {
		s.pendingConflicts--

		return recordstore.ErrConcurrencyConflict
	}

	// Stage on copies, commit only when every op passed.
	stagedBooks := copyMap(s.books)
	stagedReservations := copyMap(s.reservations)
	stagedLoans := copyMap(s.loans)

	for _, op := range unit.Ops() {
		switch op.Kind {
		case recordstore.OpInsertReservation:
			if err := insertReservation(stagedReservations, op.Reservation); err != nil {
				return err
			}
		case recordstore.OpUpdateReservation:
			existing, ok := stagedReservations[op.Reservation.ID]
			if !ok || existing.Version != op.Reservation.Version {
				return recordstore.ErrConcurrencyConflict
			}

			updated := op.Reservation
			updated.Version++
			stagedReservations[updated.ID] = updated
		case recordstore.OpInsertLoan:
			if err := insertLoan(stagedLoans, op.Loan); err != nil {
				return err
			}
		case recordstore.OpUpdateLoan:
			existing, ok := stagedLoans[op.Loan.ID]
			if !ok || existing.Version != op.Loan.Version {
				return recordstore.ErrConcurrencyConflict
			}

			updated := op.Loan
			updated.Version++
			stagedLoans[updated.ID] = updated
		case recordstore.OpUpdateBook:
			existing, ok := stagedBooks[op.Book.ID]
			if !ok || existing.Version != op.Book.Version {
				return recordstore.ErrConcurrencyConflict
			}

			updated := op.Book
			updated.Version++
			stagedBooks[updated.ID] = updated
		}
	}

	s.books = stagedBooks
	s.reservations = stagedReservations
	s.loans = stagedLoans

	return nil
}

func insertReservation(
	staged map[string]recordstore.ReservationRow,
	row recordstore.ReservationRow,
) error {

	if _, exists := staged[row.ID]; exists {
		return recordstore.ErrDuplicateRecord
	}

	if isActiveStatus(row.Status) {
		for _, existing := range staged {
			if existing.BookID == row.BookID &&
				existing.UserID == row.UserID &&
				isActiveStatus(existing.Status) {

				return recordstore.ErrDuplicateRecord
			}
		}
	}

	staged[row.ID] = row

	return nil
}

func insertLoan(staged map[string]recordstore.LoanRow, row recordstore.LoanRow) error {
	if _, exists := staged[row.ID]; exists {
		return recordstore.ErrDuplicateRecord
	}

	for _, existing := range staged {
		if existing.ReservationID == row.ReservationID {
			return recordstore.ErrDuplicateRecord
		}
	}

	staged[row.ID] = row

	return nil
}

func isActiveStatus(status string) bool {
	return status == activeStatusPending || status == activeStatusApproved
}

func statusMatches(filter recordstore.RecordFilter, status string) bool {
	statuses := filter.Statuses()
	if len(statuses) == 0 {
		return true
	}

	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
