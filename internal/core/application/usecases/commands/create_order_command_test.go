package commands_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	caller := kernel.NewPrincipalID()
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	items := mustLineItems(t, [2]uint64{1, 2})

	cmd, err := commands.NewCreateOrderCommand(caller, buyer, seller, items, 1, "standard")
	require.NoError(t, err)
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, buyer, cmd.Buyer())
	assert.Equal(t, seller, cmd.Seller())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, uint64(1), cmd.DeclaredItemCount())
	assert.Equal(t, "standard", cmd.DeliveryTerms())
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewPrincipalID(), kernel.NewPrincipalID(), kernel.NewPrincipalID(), nil, 0, "standard")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidBuyer(t *testing.T) {
	items := mustLineItems(t, [2]uint64{1, 2})
	_, err := commands.NewCreateOrderCommand(
		kernel.NewPrincipalID(), kernel.PrincipalID{}, kernel.NewPrincipalID(), items, 1, "standard")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_EmptyDeliveryTerms(t *testing.T) {
	items := mustLineItems(t, [2]uint64{1, 2})
	_, err := commands.NewCreateOrderCommand(
		kernel.NewPrincipalID(), kernel.NewPrincipalID(), kernel.NewPrincipalID(), items, 1, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
