package kernel_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipalID(t *testing.T) {
	p := kernel.NewPrincipalID()

	require.NoError(t, p.Validate())
	assert.NotEmpty(t, p.String())
}

func TestPrincipalIDFromString(t *testing.T) {
	t.Run("valid_string_round_trips", func(t *testing.T) {
		original := kernel.NewPrincipalID()

		parsed, err := kernel.PrincipalIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("invalid_string_fails", func(t *testing.T) {
		_, err := kernel.PrincipalIDFromString("not-a-principal")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrincipalIDFromBytes(t *testing.T) {
	original := kernel.NewPrincipalID()
	raw := original.Bytes()

	restored, err := kernel.PrincipalIDFromBytes(raw[:])

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
}

func TestPrincipalID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p kernel.PrincipalID

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPrincipalIDIsNotConstructed, err)
	})
}

func TestPrincipalID_IsEqual(t *testing.T) {
	a := kernel.NewPrincipalID()
	b := kernel.NewPrincipalID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
