package commands_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, "MO-2024-0117", []int{40, 5})

	require.NoError(t, err)
	assert.True(t, orderID.IsEqual(cmd.OrderID()))
	assert.Equal(t, "MO-2024-0117", cmd.Number())
	assert.Equal(t, []int{40, 5}, cmd.Quantities())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "MO-2024-0117", []int{40})

	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", []int{40})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNumberIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "MO-2024-0117", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "MO-2024-0117", []int{40, 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemQuantityInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
