package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/circulation/core"
)

func Test_BuildBookInventory_Error_WhenBoundViolated(t *testing.T) {
	_, err := core.BuildBookInventory(uuid.New(), 3, 4)
	assert.ErrorIs(t, err, core.ErrInventoryInvariantViolated)

	_, err = core.BuildBookInventory(uuid.New(), 3, -1)
	assert.ErrorIs(t, err, core.ErrInventoryInvariantViolated)
}

func Test_BookInventory_Reserve_DownToZero_ThenError(t *testing.T) {
	// arrange
	inventory, err := core.BuildBookInventory(uuid.New(), 2, 2)
	require.NoError(t, err)

	// act
	inventory, err = inventory.Reserve()
	require.NoError(t, err)
	inventory, err = inventory.Reserve()
	require.NoError(t, err)

	// assert
	assert.Equal(t, 0, inventory.AvailableCopies)

	_, err = inventory.Reserve()
	assert.ErrorIs(t, err, core.ErrInsufficientInventory)
}

func Test_BookInventory_Release_Error_WhenItWouldExceedTotal(t *testing.T) {
	// arrange
	inventory, err := core.BuildBookInventory(uuid.New(), 2, 2)
	require.NoError(t, err)

	// act
	_, err = inventory.Release()

	// assert
	assert.ErrorIs(t, err, core.ErrInventoryInvariantViolated)
}

func Test_BookInventory_ReserveThenRelease_RoundTrips(t *testing.T) {
	inventory, err := core.BuildBookInventory(uuid.New(), 5, 3)
	require.NoError(t, err)

	reserved, err := inventory.Reserve()
	require.NoError(t, err)
	assert.Equal(t, 2, reserved.AvailableCopies)

	released, err := reserved.Release()
	require.NoError(t, err)
	assert.Equal(t, 3, released.AvailableCopies)
}
