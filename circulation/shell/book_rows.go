package shell

import (
	"errors"

	"github.com/google/uuid"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
	"github.com/unibiblio/circulation-engine-go/recordstore"
)

// InventoryFromRow extracts the ledger view from a book row. The row's JSON
// payload (catalog display data) is opaque to the engine and stays untouched.
func InventoryFromRow(row recordstore.BookRow) (core.BookInventory, error) {
	bookID, err := uuid.Parse(row.ID)
	if err != nil {
		return core.BookInventory{}, errors.Join(ErrMappingRecordIDFailed, err)
	}

	return core.BuildBookInventory(bookID, row.TotalCopies, row.AvailableCopies)
}

// RowWithInventory applies changed copy counts onto a loaded book row,
// preserving its version (the update guard) and payload.
func RowWithInventory(row recordstore.BookRow, inventory core.BookInventory) recordstore.BookRow {
	row.TotalCopies = inventory.TotalCopies
	row.AvailableCopies = inventory.AvailableCopies

	return row
}
