// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MusaviMariam/timeloop/problem"
)

func uniformOrder(order int) map[problem.Dimension]int {
	orders := make(map[problem.Dimension]int, problem.NumDimensions)
	for _, dim := range problem.AllDimensions() {
		orders[dim] = order
	}
	return orders
}

func TestIndexFactorizationSpace(t *testing.T) {
	// Only C is non-trivial: 64 = 2^6 split across 3 levels gives
	// C(8, 2) = 28 ordered factorizations; every other dimension has
	// exactly one.
	workload := problem.NewWorkload(problem.Shape{1, 1, 1, 1, 64, 1, 1})
	space, err := NewIndexFactorizationSpace(workload, uniformOrder(3), nil)
	require.NoError(t, err)

	require.Equal(t, uint64(28), space.Options(problem.C))
	require.Equal(t, uint64(1), space.Options(problem.R))
	require.Equal(t, 3, space.Order(problem.C))
	require.Equal(t, "28", space.Size().String())

	// Every id yields factors that multiply back to the bound.
	for id := int64(0); id < 28; id++ {
		tf := space.Decode(big.NewInt(id))
		for _, dim := range problem.AllDimensions() {
			product := uint64(1)
			for level := 0; level < 3; level++ {
				factor := tf.Factor(dim, level)
				require.Equal(t, factor, space.Factor(big.NewInt(id), dim, level))
				product *= factor
			}
			require.Equal(t, uint64(workload.Bound(dim)), product,
				"id %d dimension %s", id, dim)
		}
	}
}

func TestIndexFactorizationSpaceDeterminism(t *testing.T) {
	workload := problem.NewWorkload(problem.Shape{3, 3, 15, 15, 256, 384, 1})
	first, err := NewIndexFactorizationSpace(workload, uniformOrder(2), nil)
	require.NoError(t, err)
	second, err := NewIndexFactorizationSpace(workload, uniformOrder(2), nil)
	require.NoError(t, err)

	require.Zero(t, first.Size().Cmp(second.Size()))
	for id := int64(0); id < 64; id++ {
		require.Equal(t, first.Decode(big.NewInt(id)), second.Decode(big.NewInt(id)))
	}
}

func TestIndexFactorizationSpacePrefactors(t *testing.T) {
	workload := problem.NewWorkload(problem.Shape{1, 1, 1, 1, 16, 1, 1})
	prefactors := map[problem.Dimension]map[int]uint64{
		problem.C: {0: 4},
	}
	space, err := NewIndexFactorizationSpace(workload, uniformOrder(2), prefactors)
	require.NoError(t, err)

	// With level 0 pinned to 4, only (4, 4) remains.
	require.Equal(t, uint64(1), space.Options(problem.C))
	tf := space.Decode(big.NewInt(0))
	require.Equal(t, []uint64{4, 4}, tf[problem.C])

	// A pin that does not divide the bound is a configuration error, and
	// the error names the dimension.
	_, err = NewIndexFactorizationSpace(workload, uniformOrder(2),
		map[problem.Dimension]map[int]uint64{problem.C: {0: 5}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "dimension C")
}

func TestIndexFactorizationSpaceConfigErrors(t *testing.T) {
	workload := problem.NewWorkload(problem.Shape{1, 1, 1, 1, 64, 1, 1})

	orders := uniformOrder(3)
	delete(orders, problem.K)
	_, err := NewIndexFactorizationSpace(workload, orders, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "K")

	var zeroBound problem.Workload
	zeroBound.Shape = problem.Shape{3, 3, 1, 1, 0, 1, 1}
	_, err = NewIndexFactorizationSpace(zeroBound, uniformOrder(2), nil)
	require.Error(t, err)
}

func TestIndexFactorizationSpaceRangePanics(t *testing.T) {
	workload := problem.NewWorkload(problem.Shape{1, 1, 1, 1, 64, 1, 1})
	space, err := NewIndexFactorizationSpace(workload, uniformOrder(3), nil)
	require.NoError(t, err)

	require.Panics(t, func() { space.Decode(big.NewInt(28)) })
	require.Panics(t, func() { space.Decode(big.NewInt(-1)) })
	require.Panics(t, func() { space.Factor(big.NewInt(0), problem.Dimension(9), 0) })
	require.Panics(t, func() { space.Factor(big.NewInt(0), problem.C, 3) })
	require.Panics(t, func() { space.Options(problem.Dimension(-1)) })
}
