package shell

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// reservationPayload is the JSON shape of everything the store does not index.
// ExpirationDate is deliberately absent: it lives in its own column so the
// sweeper can scan on it.
type reservationPayload struct {
	RequestDate     time.Time             `json:"requestDate"`
	ApprovalDate    *time.Time            `json:"approvalDate,omitempty"`
	WithdrawalDate  *time.Time            `json:"withdrawalDate,omitempty"`
	ApprovedBy      *string               `json:"approvedBy,omitempty"`
	ApprovalNotes   string                `json:"approvalNotes,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	Book            core.BookSnapshot     `json:"book"`
	Borrower        core.BorrowerSnapshot `json:"borrower"`
}

// ReservationFromRow converts a storable row back into the domain value.
func ReservationFromRow(row recordstore.ReservationRow) (core.Reservation, error) {
	id, idErr := uuid.Parse(row.ID)
	bookID, bookIDErr := uuid.Parse(row.BookID)
	userID, userIDErr := uuid.Parse(row.UserID)

	if joined := errors.Join(idErr, bookIDErr, userIDErr); joined != nil {
		return core.Reservation{}, errors.Join(ErrMappingRecordIDFailed, joined)
	}

	status, statusErr := core.ReservationStatusFromString(row.Status)
	if statusErr != nil {
		return core.Reservation{}, statusErr
	}

	payload := new(reservationPayload)
	if err := jsoniter.ConfigFastest.Unmarshal(row.PayloadJSON, payload); err != nil {
		return core.Reservation{}, errors.Join(ErrMappingRecordPayloadFailed, err)
	}

	var approvedBy *uuid.UUID
	if payload.ApprovedBy != nil {
		parsed, err := uuid.Parse(*payload.ApprovedBy)
		if err != nil {
			return core.Reservation{}, errors.Join(ErrMappingRecordIDFailed, err)
		}
		approvedBy = &parsed
	}

	return core.Reservation{
		ID:              id,
		BookID:          bookID,
		UserID:          userID,
		Status:          status,
		RequestDate:     payload.RequestDate,
		ApprovalDate:    payload.ApprovalDate,
		WithdrawalDate:  payload.WithdrawalDate,
		ExpirationDate:  row.ExpirationDate,
		ApprovedBy:      approvedBy,
		ApprovalNotes:   payload.ApprovalNotes,
		RejectionReason: payload.RejectionReason,
		Book:            payload.Book,
		Borrower:        payload.Borrower,
	}, nil
}

// RowFromReservation converts a domain value into its storable row. The
// version must be the one that was loaded (for updates) or the initial
// version (for inserts).
func RowFromReservation(reservation core.Reservation, version recordstore.VersionUint) (recordstore.ReservationRow, error) {
	var approvedBy *string
	if reservation.ApprovedBy != nil {
		s := reservation.ApprovedBy.String()
		approvedBy = &s
	}

	payload := reservationPayload{
		RequestDate:     reservation.RequestDate,
		ApprovalDate:    reservation.ApprovalDate,
		WithdrawalDate:  reservation.WithdrawalDate,
		ApprovedBy:      approvedBy,
		ApprovalNotes:   reservation.ApprovalNotes,
		RejectionReason: reservation.RejectionReason,
		Book:            reservation.Book,
		Borrower:        reservation.Borrower,
	}

	payloadJSON, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return recordstore.ReservationRow{}, errors.Join(ErrMappingRecordPayloadFailed, err)
	}

	return recordstore.BuildReservationRow(
		reservation.ID.String(),
		reservation.BookID.String(),
		reservation.UserID.String(),
		reservation.Status.String(),
		version,
		reservation.ExpirationDate,
		payloadJSON,
	)
}
