// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"math/big"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/MusaviMariam/timeloop/numeric"
	"github.com/MusaviMariam/timeloop/problem"
)

// TileFactors is a decoded index factorization: for every problem dimension
// the tile factor chosen at each tiling level. The per-dimension factors
// multiply back to the workload bound of that dimension.
type TileFactors [problem.NumDimensions][]uint64

// Factor returns the tile factor of dim at the given level.
func (tf TileFactors) Factor(dim problem.Dimension, level int) uint64 {
	return tf[dim][level]
}

// IndexFactorizationSpace enumerates every way to factorize each workload
// dimension bound across the tiling levels. One factorization table is
// built per dimension, and a mixed-radix counter strings the seven tables
// together into a single id space.
type IndexFactorizationSpace struct {
	factors [problem.NumDimensions]*numeric.Factors
	counter *numeric.CartesianCounter
}

var _ Subspace[TileFactors] = (*IndexFactorizationSpace)(nil)

// NewIndexFactorizationSpace builds the factorization tables of workload.
// cofactorsOrder gives, per dimension, the number of tiling levels its
// bound is split across; every dimension must be present. prefactors (may
// be nil) pins the factor of a dimension at given levels.
func NewIndexFactorizationSpace(
	workload problem.Workload,
	cofactorsOrder map[problem.Dimension]int,
	prefactors map[problem.Dimension]map[int]uint64,
) (space *IndexFactorizationSpace, err error) {
	space = &IndexFactorizationSpace{}
	radices := make([]uint64, problem.NumDimensions)
	for _, dim := range problem.AllDimensions() {
		order, found := cofactorsOrder[dim]
		if !found {
			return nil, errors.Errorf("no cofactors order given for dimension %s", dim)
		}
		bound := workload.Bound(dim)
		if bound < 1 {
			return nil, errors.Errorf("dimension %s has bound %d, must be >= 1", dim, bound)
		}
		space.factors[dim], err = numeric.NewFactors(uint64(bound), order, prefactors[dim])
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %s", dim)
		}
		radices[dim] = space.factors[dim].Size()
	}
	space.counter, err = numeric.NewCartesianCounter(radices)
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("Initializing index factorization subspace.")
	for _, dim := range problem.AllDimensions() {
		klog.V(1).Infof("  Factorization options along problem dimension %s = %d", dim, radices[dim])
	}
	return space, nil
}

// Size returns the number of factorization combinations across all
// dimensions.
func (s *IndexFactorizationSpace) Size() *big.Int {
	return s.counter.Size()
}

// Options returns the number of factorizations of a single dimension.
func (s *IndexFactorizationSpace) Options(dim problem.Dimension) uint64 {
	if !dim.IsADimension() {
		exceptions.Panicf("IndexFactorizationSpace.Options(%d): invalid dimension", int(dim))
	}
	return s.factors[dim].Size()
}

// Order returns the number of tiling levels of the given dimension.
func (s *IndexFactorizationSpace) Order(dim problem.Dimension) int {
	if !dim.IsADimension() {
		exceptions.Panicf("IndexFactorizationSpace.Order(%d): invalid dimension", int(dim))
	}
	return s.factors[dim].Order()
}

// Factor decodes id and returns the tile factor of dim at the given level.
// It panics if id, dim or level is out of range.
func (s *IndexFactorizationSpace) Factor(id *big.Int, dim problem.Dimension, level int) uint64 {
	if !dim.IsADimension() {
		exceptions.Panicf("IndexFactorizationSpace.Factor(%s, %d, %d): invalid dimension", id, int(dim), level)
	}
	digits := s.counter.Decode(id)
	return s.factors[dim].Factor(digits[dim], level)
}

// Decode returns the full factorization behind id: every dimension's tile
// factors at every level. It panics unless 0 <= id < Size().
func (s *IndexFactorizationSpace) Decode(id *big.Int) TileFactors {
	digits := s.counter.Decode(id)
	var tf TileFactors
	for _, dim := range problem.AllDimensions() {
		tf[dim] = s.factors[dim].Tuple(digits[dim])
	}
	return tf
}
