package recordstore

import (
	"errors"
	"time"
)

var (
	// ErrEmptyRecordID is returned when a row is built without an ID.
	ErrEmptyRecordID = errors.New("empty record id supplied")

	// ErrEmptyPayload is returned when a row is built without a JSON payload.
	ErrEmptyPayload = errors.New("empty record payload supplied")
)

// BookRow is the storable shape of a book's inventory state.
// TotalCopies and AvailableCopies are real columns so the bound invariant can
// be backstopped by a CHECK constraint; PayloadJSON holds the catalog display
// snapshot the engine never interprets.
type BookRow struct {
	ID              string
	Version         VersionUint
	TotalCopies     int
	AvailableCopies int
	PayloadJSON     []byte
}

// ReservationRow is the storable shape of a reservation.
// BookID, UserID and Status are real columns because the store indexes them
// (duplicate-active-reservation uniqueness, sweeper scans); everything else
// lives in PayloadJSON.
type ReservationRow struct {
	ID             string
	BookID         string
	UserID         string
	Status         string
	Version        VersionUint
	ExpirationDate *time.Time
	PayloadJSON    []byte
}

// LoanRow is the storable shape of a loan. ReservationID is unique per table
// constraint, which is what makes loan creation idempotent under retries.
type LoanRow struct {
	ID            string
	ReservationID string
	BookID        string
	UserID        string
	Status        string
	Version       VersionUint
	DueDate       time.Time
	PayloadJSON   []byte
}

// BuildBookRow validates and creates a BookRow.
func BuildBookRow(id string, version VersionUint, totalCopies int, availableCopies int, payloadJSON []byte) (BookRow, error) {
	if id == "" {
		return BookRow{}, ErrEmptyRecordID
	}

	if len(payloadJSON) == 0 {
		return BookRow{}, ErrEmptyPayload
	}

	return BookRow{
		ID:              id,
		Version:         version,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		PayloadJSON:     payloadJSON,
	}, nil
}

// BuildReservationRow validates and creates a ReservationRow.
func BuildReservationRow(
	id string,
	bookID string,
	userID string,
	status string,
	version VersionUint,
	expirationDate *time.Time,
	payloadJSON []byte,
) (ReservationRow, error) {

	if id == "" || bookID == "" || userID == "" {
		return ReservationRow{}, ErrEmptyRecordID
	}

	if len(payloadJSON) == 0 {
		return ReservationRow{}, ErrEmptyPayload
	}

	return ReservationRow{
		ID:             id,
		BookID:         bookID,
		UserID:         userID,
		Status:         status,
		Version:        version,
		ExpirationDate: expirationDate,
		PayloadJSON:    payloadJSON,
	}, nil
}

// BuildLoanRow validates and creates a LoanRow.
func BuildLoanRow(
	id string,
	reservationID string,
	bookID string,
	userID string,
	status string,
	version VersionUint,
	dueDate time.Time,
	payloadJSON []byte,
) (LoanRow, error) {

	if id == "" || reservationID == "" || bookID == "" || userID == "" {
		return LoanRow{}, ErrEmptyRecordID
	}

	if len(payloadJSON) == 0 {
		return LoanRow{}, ErrEmptyPayload
	}

	return LoanRow{
		ID:            id,
		ReservationID: reservationID,
		BookID:        bookID,
		UserID:        userID,
		Status:        status,
		Version:       version,
		DueDate:       dueDate,
		PayloadJSON:   payloadJSON,
	}, nil
}
