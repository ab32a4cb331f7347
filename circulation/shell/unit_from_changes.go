package shell

import (
	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// InitialRecordVersion is the version written for newly inserted rows.
const InitialRecordVersion recordstore.VersionUint = 1

// LoadedState carries the rows a handler read before deciding, so their
// versions can guard the writes derived from the decision.
type LoadedState struct {
	Book        recordstore.BookRow
	Reservation recordstore.ReservationRow
	Loan        recordstore.LoanRow
}

// UnitFromChanges turns a decision's record changes into a guarded write
// unit. Updates are guarded by the versions in loaded; inserts start at
// InitialRecordVersion. Together with the store's transactional execution and
// the caller's conflict retry, this is the engine's transaction coordinator.
func UnitFromChanges(changes core.RecordChanges, loaded LoadedState) (*recordstore.Unit, error) {
	unit := recordstore.BuildUnit()

	if changes.Reservation != nil {
		version := loaded.Reservation.Version
		if changes.ReservationIsNew {
			version = InitialRecordVersion
		}

		row, err := RowFromReservation(*changes.Reservation, version)
		if err != nil {
			return nil, err
		}

		if changes.ReservationIsNew {
			unit.InsertReservation(row)
		} else {
			unit.UpdateReservation(row)
		}
	}

	if changes.Loan != nil {
		version := loaded.Loan.Version
		if changes.LoanIsNew {
			version = InitialRecordVersion
		}

		row, err := RowFromLoan(*changes.Loan, version)
		if err != nil {
			return nil, err
		}

		if changes.LoanIsNew {
			unit.InsertLoan(row)
		} else {
			unit.UpdateLoan(row)
		}
	}

	if changes.Inventory != nil {
		unit.UpdateBook(RowWithInventory(loaded.Book, *changes.Inventory))
	}

	return unit, nil
}
