package core

import (
	"github.com/google/uuid"
)

// BookInventory is the ledger view of a book: the only two catalog fields the
// engine ever mutates, guarded by the bound invariant
// 0 <= AvailableCopies <= TotalCopies.
type BookInventory struct {
	BookID          uuid.UUID
	TotalCopies     int
	AvailableCopies int
}

// BuildBookInventory creates a BookInventory and validates the invariant.
func BuildBookInventory(bookID uuid.UUID, totalCopies int, availableCopies int) (BookInventory, error) {
	inventory := BookInventory{
		BookID:          bookID,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
	}

	if err := inventory.checkInvariant(); err != nil {
		return BookInventory{}, err
	}

	return inventory, nil
}

// Reserve takes one copy out of the available pool. It fails with
// ErrInsufficientInventory when no copy is available.
func (b BookInventory) Reserve() (BookInventory, error) {
	if b.AvailableCopies <= 0 {
		return BookInventory{}, ErrInsufficientInventory
	}

	b.AvailableCopies--

	return b, nil
}

// Release puts one copy back into the available pool. The caller must
// guarantee the release offsets exactly one prior Reserve; a release that
// would exceed TotalCopies fails with ErrInventoryInvariantViolated.
func (b BookInventory) Release() (BookInventory, error) {
	if b.AvailableCopies+1 > b.TotalCopies {
		return BookInventory{}, ErrInventoryInvariantViolated
	}

	b.AvailableCopies++

	return b, nil
}

func (b BookInventory) checkInvariant() error {
	if b.AvailableCopies < 0 || b.AvailableCopies > b.TotalCopies {
		return ErrInventoryInvariantViolated
	}

	return nil
}
