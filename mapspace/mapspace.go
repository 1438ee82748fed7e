// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

// Package mapspace enumerates the space of loop-nest mappings of a
// convolution workload onto a tiled architecture.
//
// A mapping is assembled from three independent choices, each enumerated
// by its own subspace:
//
//   - IndexFactorizationSpace: how every dimension's loop bound is split
//     into per-level tile factors.
//   - PermutationSpace: the loop order within each tiling level.
//   - SpatialSplitSpace: where each spatial level cuts its loop order
//     between the two hardware spatial axes.
//
// MapSpace composes the three behind a single arbitrary-precision id, so a
// search strategy can walk one integer range and materialize any mapping
// in O(1) without visiting its predecessors. Spaces are immutable once
// built and safe for concurrent decoding.
package mapspace

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/MusaviMariam/timeloop/problem"
)

// Mapping is one fully decoded point of the map space.
type Mapping struct {
	// TileFactors gives every dimension's tile factor at every level.
	TileFactors TileFactors

	// LoopOrders gives the loop order of every tiling level, indexed by
	// level.
	LoopOrders [][]problem.Dimension

	// Splits gives the spatial split of every spatial level, keyed by
	// level; temporal levels are absent.
	Splits map[int]int
}

// String renders one line per level, e.g.
// "L1: R S P | Q C K N @3 [R=1 S=1 P=4 Q=1 C=16 K=8 N=1]".
func (m Mapping) String() string {
	var b strings.Builder
	for level, order := range m.LoopOrders {
		if level > 0 {
			b.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&b, "L%d:", level)
		for ii, dim := range order {
			if split, spatial := m.Splits[level]; spatial && ii == split {
				b.WriteString(" |")
			}
			_, _ = fmt.Fprintf(&b, " %s", dim)
		}
		if split, spatial := m.Splits[level]; spatial {
			if split == len(order) {
				b.WriteString(" |")
			}
			_, _ = fmt.Fprintf(&b, " @%d", split)
		}
		b.WriteString(" [")
		for ii, dim := range order {
			if ii > 0 {
				b.WriteByte(' ')
			}
			_, _ = fmt.Fprintf(&b, "%s=%d", dim, m.TileFactors.Factor(dim, level))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// MapSpace is the composite of the three subspaces. Its id space is the
// cartesian product of theirs: the index factorization occupies the lowest
// order digits of the global id, then the permutations, then the spatial
// splits.
type MapSpace struct {
	workload problem.Workload
	spec     Spec

	indexFactorizations *IndexFactorizationSpace
	permutations        *PermutationSpace
	spatialSplits       *SpatialSplitSpace

	size *big.Int
}

var _ Subspace[Mapping] = (*MapSpace)(nil)

// New builds the mapping space of workload under the given spec.
//
// Dimensions pinned to a unit factor at a level are pruned from that
// level's loop-order enumeration (they are baked in front) and shrink the
// range of free spatial splits.
func New(workload problem.Workload, spec Spec) (space *MapSpace, err error) {
	if err = spec.Validate(); err != nil {
		return nil, err
	}
	if err = workload.Validate(); err != nil {
		return nil, err
	}
	numLevels := spec.NumLevels()
	space = &MapSpace{workload: workload, spec: spec}

	cofactorsOrder := make(map[problem.Dimension]int, problem.NumDimensions)
	for _, dim := range problem.AllDimensions() {
		cofactorsOrder[dim] = numLevels
	}
	space.indexFactorizations, err = NewIndexFactorizationSpace(workload, cofactorsOrder, spec.Factors)
	if err != nil {
		return nil, errors.Wrapf(err, "index factorization space")
	}

	space.permutations = NewPermutationSpace(numLevels)
	space.spatialSplits = NewSpatialSplitSpace(numLevels)
	for level, levelSpec := range spec.Levels {
		pruned := spec.prunedDimensions(level)
		if levelSpec.Canonical {
			err = space.permutations.InitLevelCanonical(level)
		} else {
			err = space.permutations.InitLevelPruned(level, levelSpec.Prefix, pruned)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "permutation space")
		}
		if !levelSpec.Spatial {
			continue
		}
		if levelSpec.Split != nil {
			err = space.spatialSplits.InitLevelUserSpecified(level, *levelSpec.Split)
		} else {
			err = space.spatialSplits.InitLevel(level, len(pruned))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "spatial split space")
		}
	}

	space.size = new(big.Int).Mul(space.indexFactorizations.Size(), space.permutations.Size())
	space.size.Mul(space.size, space.spatialSplits.Size())
	return space, nil
}

// Workload returns the workload the space was built for.
func (s *MapSpace) Workload() problem.Workload { return s.workload }

// Spec returns the configuration the space was built from.
func (s *MapSpace) Spec() Spec { return s.spec }

// NumLevels returns the number of tiling levels.
func (s *MapSpace) NumLevels() int { return s.spec.NumLevels() }

// IndexFactorizations returns the tile-factor subspace.
func (s *MapSpace) IndexFactorizations() *IndexFactorizationSpace {
	return s.indexFactorizations
}

// Permutations returns the loop-order subspace.
func (s *MapSpace) Permutations() *PermutationSpace { return s.permutations }

// SpatialSplits returns the spatial-split subspace.
func (s *MapSpace) SpatialSplits() *SpatialSplitSpace { return s.spatialSplits }

// Size returns the total number of mappings, the product of the three
// subspace sizes.
func (s *MapSpace) Size() *big.Int { return new(big.Int).Set(s.size) }

// Split breaks a global id into the three subspace ids, in the order
// (factorization, permutation, split). It panics unless 0 <= id < Size().
func (s *MapSpace) Split(id *big.Int) (factorizationID, permutationID, splitID *big.Int) {
	if id.Sign() < 0 || id.Cmp(s.size) >= 0 {
		exceptions.Panicf("MapSpace.Split(%s): id out of range, space has %s points", id, s.size)
	}
	factorizationID = new(big.Int)
	permutationID = new(big.Int)
	splitID = new(big.Int).Set(id)
	splitID.DivMod(splitID, s.indexFactorizations.Size(), factorizationID)
	splitID.DivMod(splitID, s.permutations.Size(), permutationID)
	return
}

// Decode materializes the mapping behind a global id.
// It panics unless 0 <= id < Size().
func (s *MapSpace) Decode(id *big.Int) Mapping {
	factorizationID, permutationID, splitID := s.Split(id)
	return Mapping{
		TileFactors: s.indexFactorizations.Decode(factorizationID),
		LoopOrders:  s.permutations.Decode(permutationID),
		Splits:      s.spatialSplits.Decode(splitID),
	}
}
