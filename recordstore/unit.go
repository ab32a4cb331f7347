package recordstore

// WriteOpKind discriminates the write operations a Unit can carry.
type WriteOpKind int

const (
	// OpInsertReservation inserts a new reservation row.
	OpInsertReservation WriteOpKind = iota

	// OpUpdateReservation updates a reservation row guarded by its version.
	OpUpdateReservation

	// OpInsertLoan inserts a new loan row.
	OpInsertLoan

	// OpUpdateLoan updates a loan row guarded by its version.
	OpUpdateLoan

	// OpUpdateBook updates a book's copy counts guarded by its version.
	OpUpdateBook
)

// WriteOp is a single write inside a Unit. Exactly one of the row fields is
// populated, matching Kind. For updates, the row's Version field carries the
// version that was read; the store writes Version+1 and guards on Version.
type WriteOp struct {
	Kind        WriteOpKind
	Book        BookRow
	Reservation ReservationRow
	Loan        LoanRow
}

// Unit is an atomic write-set: all operations commit together or not at all.
// It is the write half of the engine's transaction coordinator; the read half
// is the caller loading rows (and their versions) before building the Unit.
type Unit struct {
	ops []WriteOp
}

// BuildUnit creates an empty Unit.
func BuildUnit() *Unit {
	return &Unit{}
}

// Ops returns the write operations in the order they were added.
func (u *Unit) Ops() []WriteOp {
	return u.ops
}

// IsEmpty reports whether the Unit carries no writes.
func (u *Unit) IsEmpty() bool {
	return len(u.ops) == 0
}

// InsertReservation adds a reservation insert to the Unit.
func (u *Unit) InsertReservation(row ReservationRow) *Unit {
	u.ops = append(u.ops, WriteOp{Kind: OpInsertReservation, Reservation: row})
	return u
}

// UpdateReservation adds a version-guarded reservation update to the Unit.
func (u *Unit) UpdateReservation(row ReservationRow) *Unit {
	u.ops = append(u.ops, WriteOp{Kind: OpUpdateReservation, Reservation: row})
	return u
}

// InsertLoan adds a loan insert to the Unit.
func (u *Unit) InsertLoan(row LoanRow) *Unit {
	u.ops = append(u.ops, WriteOp{Kind: OpInsertLoan, Loan: row})
	return u
}

// UpdateLoan adds a version-guarded loan update to the Unit.
func (u *Unit) UpdateLoan(row LoanRow) *Unit {
	u.ops = append(u.ops, WriteOp{Kind: OpUpdateLoan, Loan: row})
	return u
}

// UpdateBook adds a version-guarded book update to the Unit.
func (u *Unit) UpdateBook(row BookRow) *Unit {
	u.ops = append(u.ops, WriteOp{Kind: OpUpdateBook, Book: row})
	return u
}
