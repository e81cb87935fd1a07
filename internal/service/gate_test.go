package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnershipGate(t *testing.T) {
	t.Parallel()

	gate := NewOwnershipGate()

	t.Run("allows the owner", func(t *testing.T) {
		require.True(t, gate.Allows(CapabilityProduct, "user-a", "user-a"))
		require.True(t, gate.Allows(CapabilityProductType, "user-a", "user-a"))
	})

	t.Run("denies any other actor", func(t *testing.T) {
		require.False(t, gate.Allows(CapabilityProduct, "user-a", "user-b"))
		require.False(t, gate.Allows(CapabilityProductType, "user-a", "user-b"))
	})

	t.Run("denies when the owner is empty", func(t *testing.T) {
		require.False(t, gate.Allows(CapabilityProduct, "", ""))
		require.False(t, gate.Allows(CapabilityProduct, "", "user-a"))
	})
}
