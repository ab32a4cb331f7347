package shell

import "errors"

var (
	// ErrBookNotFound is returned when a referenced book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrReservationNotFound is returned when a referenced reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrLoanNotFound is returned when a referenced loan does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrMappingRecordPayloadFailed is returned when a row payload cannot be
	// decoded into, or encoded from, its domain value.
	ErrMappingRecordPayloadFailed = errors.New("mapping record payload failed")

	// ErrMappingRecordIDFailed is returned when a stored identifier is not a valid UUID.
	ErrMappingRecordIDFailed = errors.New("mapping record id failed")
)
