package core

import (
	"time"
)

// Instead of implementing full value objects, alias types and helper methods are used here ...

// OccurredAt represents when a lifecycle action occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// Lifecycle policy. The hold period is counted from approval, the loan period
// from withdrawal; each renewal extends the due date by the extension period.
const (
	ReservationHoldPeriod = 7 * 24 * time.Hour
	LoanPeriod            = 14 * 24 * time.Hour
	RenewalExtension      = 7 * 24 * time.Hour
	MaxRenewalsAllowed    = 2
)

// BookSnapshot is the denormalized catalog display data captured once at
// reservation creation. It is an immutable snapshot, never synced back.
type BookSnapshot struct {
	Title    string
	Author   string
	CoverURL string
}

// BorrowerSnapshot is the denormalized user-directory display data captured
// once at reservation creation. It is an immutable snapshot, never synced back.
type BorrowerSnapshot struct {
	Name      string
	Matricula string
	Email     string
}
