package shell

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// loanPayload is the JSON shape of everything the store does not index.
// DueDate lives in its own column so the sweeper can scan on it.
type loanPayload struct {
	WithdrawalDate time.Time  `json:"withdrawalDate"`
	ReturnDate     *time.Time `json:"returnDate,omitempty"`
	RenewalCount   int        `json:"renewalCount"`
	MaxRenewals    int        `json:"maxRenewals"`
}

// LoanFromRow converts a storable row back into the domain value.
func LoanFromRow(row recordstore.LoanRow) (core.Loan, error) {
	id, idErr := uuid.Parse(row.ID)
	reservationID, reservationIDErr := uuid.Parse(row.ReservationID)
	bookID, bookIDErr := uuid.Parse(row.BookID)
	userID, userIDErr := uuid.Parse(row.UserID)

	if joined := errors.Join(idErr, reservationIDErr, bookIDErr, userIDErr); joined != nil {
		return core.Loan{}, errors.Join(ErrMappingRecordIDFailed, joined)
	}

	status, statusErr := core.LoanStatusFromString(row.Status)
	if statusErr != nil {
		return core.Loan{}, statusErr
	}

	payload := new(loanPayload)
	if err := jsoniter.ConfigFastest.Unmarshal(row.PayloadJSON, payload); err != nil {
		return core.Loan{}, errors.Join(ErrMappingRecordPayloadFailed, err)
	}

	return core.Loan{
		ID:             id,
		ReservationID:  reservationID,
		BookID:         bookID,
		UserID:         userID,
		Status:         status,
		WithdrawalDate: payload.WithdrawalDate,
		DueDate:        row.DueDate,
		ReturnDate:     payload.ReturnDate,
		RenewalCount:   payload.RenewalCount,
		MaxRenewals:    payload.MaxRenewals,
	}, nil
}

// RowFromLoan converts a domain value into its storable row. The version must
// be the one that was loaded (for updates) or the initial version (for inserts).
func RowFromLoan(loan core.Loan, version recordstore.VersionUint) (recordstore.LoanRow, error) {
	payload := loanPayload{
		WithdrawalDate: loan.WithdrawalDate,
		ReturnDate:     loan.ReturnDate,
		RenewalCount:   loan.RenewalCount,
		MaxRenewals:    loan.MaxRenewals,
	}

	payloadJSON, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return recordstore.LoanRow{}, errors.Join(ErrMappingRecordPayloadFailed, err)
	}

	return recordstore.BuildLoanRow(
		loan.ID.String(),
		loan.ReservationID.String(),
		loan.BookID.String(),
		loan.UserID.String(),
		loan.Status.String(),
		version,
		loan.DueDate,
		payloadJSON,
	)
}
