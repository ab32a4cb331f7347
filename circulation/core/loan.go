package core

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus is the closed set of loan lifecycle states.
type LoanStatus string

const (
	LoanActive   LoanStatus = "Active"
	LoanLate     LoanStatus = "Late"
	LoanReturned LoanStatus = "Returned"
)

// LoanStatusFromString parses a stored status string.
func LoanStatusFromString(s string) (LoanStatus, error) {
	switch status := LoanStatus(s); status {
	case LoanActive, LoanLate, LoanReturned:
		return status, nil
	default:
		return "", ErrUnknownLoanStatus
	}
}

// String returns the stored representation of the status.
func (s LoanStatus) String() string {
	return string(s)
}

// Loan tracks a withdrawn copy until it comes back. At most one loan exists
// per reservation; creation happens exactly once, on the Withdrawn transition.
type Loan struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	BookID         uuid.UUID
	UserID         uuid.UUID
	Status         LoanStatus
	WithdrawalDate time.Time
	DueDate        time.Time
	ReturnDate     *time.Time
	RenewalCount   int
	MaxRenewals    int
}

// BuildLoanFromReservation derives a new Active loan from a reservation that
// just reached Withdrawn.
func BuildLoanFromReservation(id uuid.UUID, reservation Reservation) (Loan, error) {
	if reservation.Status != ReservationWithdrawn || reservation.WithdrawalDate == nil {
		return Loan{}, ErrInvalidStateTransition
	}

	withdrawalDate := *reservation.WithdrawalDate

	return Loan{
		ID:             id,
		ReservationID:  reservation.ID,
		BookID:         reservation.BookID,
		UserID:         reservation.UserID,
		Status:         LoanActive,
		WithdrawalDate: withdrawalDate,
		DueDate:        withdrawalDate.Add(LoanPeriod),
		RenewalCount:   0,
		MaxRenewals:    MaxRenewalsAllowed,
	}, nil
}

// IsEffectivelyLate reports whether the loan is past due at the given time,
// regardless of whether a sweep has flipped the stored status yet.
func (l Loan) IsEffectivelyLate(at time.Time) bool {
	return l.Status != LoanReturned && at.After(l.DueDate)
}

// Renew extends the due date by the renewal extension. It evaluates effective
// lateness, not only the stored status, so a loan the sweeper has not caught
// up with yet still cannot be renewed past its due date.
func (l Loan) Renew(at time.Time) (Loan, error) {
	if l.Status != LoanActive {
		return Loan{}, ErrRenewalNotAllowed
	}

	if l.IsEffectivelyLate(at) {
		return Loan{}, ErrRenewalNotAllowed
	}

	if l.RenewalCount >= l.MaxRenewals {
		return Loan{}, ErrRenewalNotAllowed
	}

	l.DueDate = l.DueDate.Add(RenewalExtension)
	l.RenewalCount++

	return l, nil
}

// MarkLate flips the stored status Active -> Late once the due date has
// passed. Inventory is untouched: the copy is already out on loan.
func (l Loan) MarkLate(at time.Time) (Loan, error) {
	if l.Status != LoanActive || !at.After(l.DueDate) {
		return Loan{}, ErrInvalidStateTransition
	}

	l.Status = LoanLate

	return l, nil
}

// Return transitions Active or Late -> Returned. The caller must release the
// copy back into the available pool in the same unit of work; the guard on
// Returned is what keeps that release from ever happening twice.
func (l Loan) Return(at time.Time) (Loan, error) {
	if l.Status != LoanActive && l.Status != LoanLate {
		return Loan{}, ErrInvalidStateTransition
	}

	returnDate := ToOccurredAt(at)

	l.Status = LoanReturned
	l.ReturnDate = &returnDate

	return l, nil
}
