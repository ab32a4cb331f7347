package core

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the closed set of reservation lifecycle states.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationApproved  ReservationStatus = "Approved"
	ReservationRejected  ReservationStatus = "Rejected"
	ReservationWithdrawn ReservationStatus = "Withdrawn"
	ReservationExpired   ReservationStatus = "Expired"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// ReservationStatusFromString parses a stored status string.
func ReservationStatusFromString(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(s); status {
	case ReservationPending, ReservationApproved, ReservationRejected,
		ReservationWithdrawn, ReservationExpired, ReservationCancelled:
		return status, nil
	default:
		return "", ErrUnknownReservationStatus
	}
}

// String returns the stored representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsActive reports whether the status blocks a new reservation by the same
// user for the same book.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationPending || s == ReservationApproved
}

// IsTerminal reports whether no further transition is defined for the status.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case ReservationRejected, ReservationWithdrawn, ReservationExpired, ReservationCancelled:
		return true
	default:
		return false
	}
}

// Reservation is a user's claim on one copy of a book. Transitions are only
// possible through the guarded methods below; each returns the changed value
// and leaves the receiver untouched.
type Reservation struct {
	ID              uuid.UUID
	BookID          uuid.UUID
	UserID          uuid.UUID
	Status          ReservationStatus
	RequestDate     time.Time
	ApprovalDate    *time.Time
	WithdrawalDate  *time.Time
	ExpirationDate  *time.Time
	ApprovedBy      *uuid.UUID
	ApprovalNotes   string
	RejectionReason string
	Book            BookSnapshot
	Borrower        BorrowerSnapshot
}

// BuildPendingReservation creates a new Pending reservation with the display
// snapshots captured from the catalog and user directory.
func BuildPendingReservation(
	id uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	book BookSnapshot,
	borrower BorrowerSnapshot,
	requestedAt time.Time,
) Reservation {

	return Reservation{
		ID:          id,
		BookID:      bookID,
		UserID:      userID,
		Status:      ReservationPending,
		RequestDate: ToOccurredAt(requestedAt),
		Book:        book,
		Borrower:    borrower,
	}
}

// Approve transitions Pending -> Approved. The caller must have reserved a
// copy through the inventory ledger in the same unit of work.
func (r Reservation) Approve(approvedBy uuid.UUID, notes string, at time.Time) (Reservation, error) {
	if r.Status != ReservationPending {
		return Reservation{}, ErrInvalidStateTransition
	}

	approvalDate := ToOccurredAt(at)
	expirationDate := approvalDate.Add(ReservationHoldPeriod)

	r.Status = ReservationApproved
	r.ApprovalDate = &approvalDate
	r.ExpirationDate = &expirationDate
	r.ApprovedBy = &approvedBy
	r.ApprovalNotes = notes

	return r, nil
}

// Reject transitions Pending -> Rejected. No inventory was reserved yet, so
// rejection never touches the ledger.
func (r Reservation) Reject(reason string) (Reservation, error) {
	if r.Status != ReservationPending {
		return Reservation{}, ErrInvalidStateTransition
	}

	r.Status = ReservationRejected
	r.RejectionReason = reason

	return r, nil
}

// Cancel transitions Pending or Approved -> Cancelled. The second return
// value reports whether the caller must release a copy: only an Approved
// reservation holds one.
func (r Reservation) Cancel() (Reservation, bool, error) {
	switch r.Status {
	case ReservationPending:
		r.Status = ReservationCancelled
		return r, false, nil
	case ReservationApproved:
		r.Status = ReservationCancelled
		return r, true, nil
	default:
		return Reservation{}, false, ErrInvalidStateTransition
	}
}

// Withdraw transitions Approved -> Withdrawn. The reserved copy stays out of
// the available pool, tracked by the loan the caller derives from the result.
func (r Reservation) Withdraw(at time.Time) (Reservation, error) {
	if r.Status != ReservationApproved {
		return Reservation{}, ErrInvalidStateTransition
	}

	withdrawalDate := ToOccurredAt(at)

	r.Status = ReservationWithdrawn
	r.WithdrawalDate = &withdrawalDate

	return r, nil
}

// Expire transitions Approved -> Expired once the hold period has passed.
// The caller must release the held copy in the same unit of work.
func (r Reservation) Expire(at time.Time) (Reservation, error) {
	if r.Status != ReservationApproved {
		return Reservation{}, ErrInvalidStateTransition
	}

	if r.ExpirationDate == nil || !at.After(*r.ExpirationDate) {
		return Reservation{}, ErrInvalidStateTransition
	}

	r.Status = ReservationExpired

	return r, nil
}
