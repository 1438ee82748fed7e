// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MusaviMariam/timeloop/problem"
)

func TestPermutationSpaceTwoFreeDimensions(t *testing.T) {
	space := NewPermutationSpace(1)
	require.NoError(t, space.InitLevel(0, []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.N,
	}))

	// C and K are left free, in canonical order, so there are 2 orders:
	// id 0 keeps C before K, id 1 swaps them.
	require.Equal(t, uint64(2), space.LevelSize(0))
	require.Equal(t, "2", space.Size().String())

	orders := space.Decode(big.NewInt(0))
	require.Len(t, orders, 1)
	require.Equal(t, []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.N, problem.C, problem.K,
	}, orders[0])

	orders = space.Decode(big.NewInt(1))
	require.Equal(t, []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.N, problem.K, problem.C,
	}, orders[0])
}

func TestPermutationSpacePrunedDimensions(t *testing.T) {
	space := NewPermutationSpace(1)
	require.NoError(t, space.InitLevelPruned(0,
		[]problem.Dimension{problem.P},
		[]problem.Dimension{problem.R, problem.S}))

	// Pruned dimensions come first, then the user prefix, then the 4 free
	// dimensions.
	require.Equal(t, []problem.Dimension{problem.R, problem.S, problem.P}, space.BakedPrefix(0))
	require.Equal(t, uint64(24), space.LevelSize(0))

	orders := space.Decode(big.NewInt(0))
	require.Equal(t, []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.C, problem.K, problem.N,
	}, orders[0])

	// The baked prefix survives every id, and each order stays a
	// permutation of all dimensions.
	seen := make(map[string]bool)
	for id := int64(0); id < 24; id++ {
		order := space.Decode(big.NewInt(id))[0]
		require.Equal(t, []problem.Dimension{problem.R, problem.S, problem.P}, order[:3])
		require.ElementsMatch(t, problem.AllDimensions(), order)
		key := fmt.Sprint(order)
		require.False(t, seen[key], "id %d repeated order %s", id, key)
		seen[key] = true
	}

	// A user prefix dimension that is also pruned is not repeated.
	require.NoError(t, space.InitLevelPruned(0,
		[]problem.Dimension{problem.R, problem.P},
		[]problem.Dimension{problem.R, problem.S}))
	require.Equal(t, []problem.Dimension{problem.R, problem.S, problem.P}, space.BakedPrefix(0))
}

func TestPermutationSpaceCanonicalLevel(t *testing.T) {
	space := NewPermutationSpace(2)
	require.NoError(t, space.InitLevelCanonical(0))
	require.NoError(t, space.InitLevel(1, nil))

	// The canonical level contributes a factor of 1.
	require.Equal(t, uint64(1), space.LevelSize(0))
	require.Equal(t, uint64(5040), space.LevelSize(1))
	require.Equal(t, "5040", space.Size().String())

	orders := space.Decode(big.NewInt(0))
	require.Equal(t, problem.AllDimensions(), orders[0])
	require.Equal(t, problem.AllDimensions(), orders[1])
}

func TestPermutationSpaceDigitOrder(t *testing.T) {
	// Level 0 consumes the lowest-order digits: with two 2-order levels,
	// id 1 permutes only level 0 and id 2 permutes only level 2.
	prefix := []problem.Dimension{problem.R, problem.S, problem.P, problem.Q, problem.N}
	space := NewPermutationSpace(3)
	require.NoError(t, space.InitLevel(0, prefix))
	require.NoError(t, space.InitLevelCanonical(1))
	require.NoError(t, space.InitLevel(2, prefix))
	require.Equal(t, "4", space.Size().String())

	swapped := []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.N, problem.K, problem.C,
	}
	kept := []problem.Dimension{
		problem.R, problem.S, problem.P, problem.Q, problem.N, problem.C, problem.K,
	}

	orders := space.Decode(big.NewInt(1))
	require.Equal(t, swapped, orders[0])
	require.Equal(t, kept, orders[2])

	orders = space.Decode(big.NewInt(2))
	require.Equal(t, kept, orders[0])
	require.Equal(t, swapped, orders[2])
}

func TestPermutationSpaceReinitReplacesLevel(t *testing.T) {
	space := NewPermutationSpace(1)
	require.NoError(t, space.InitLevel(0, nil))
	require.Equal(t, uint64(5040), space.LevelSize(0))

	require.NoError(t, space.InitLevelCanonical(0))
	require.Equal(t, uint64(1), space.LevelSize(0))
	require.Equal(t, "1", space.Size().String())
}

func TestPermutationSpaceConfigErrors(t *testing.T) {
	space := NewPermutationSpace(1)
	err := space.InitLevel(0, []problem.Dimension{problem.C, problem.C})
	require.Error(t, err)
	require.Contains(t, err.Error(), "repeats dimension C")

	err = space.InitLevel(0, []problem.Dimension{problem.Dimension(12)})
	require.Error(t, err)
}

func TestPermutationSpacePanics(t *testing.T) {
	space := NewPermutationSpace(2)
	require.Panics(t, func() { _ = space.InitLevel(2, nil) })
	require.Panics(t, func() { _ = space.InitLevel(-1, nil) })

	// Levels must all be initialized before sizing or decoding.
	require.NoError(t, space.InitLevel(0, nil))
	require.Panics(t, func() { space.Size() })
	require.Panics(t, func() { space.Decode(big.NewInt(0)) })

	require.NoError(t, space.InitLevelCanonical(1))
	require.Panics(t, func() { space.Decode(big.NewInt(5040)) })
	require.Panics(t, func() { space.Decode(big.NewInt(-1)) })
	require.Panics(t, func() { space.LevelSize(5) })
}
