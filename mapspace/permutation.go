// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"math/big"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/MusaviMariam/timeloop/numeric"
	"github.com/MusaviMariam/timeloop/problem"
)

// PermutationSpace enumerates the loop orders of every tiling level. Each
// level splits the seven dimensions into a baked prefix, fixed by
// configuration, and a permutable suffix whose orderings the level's id
// digits select. A level's pattern is
//
//	<unit-factor dimensions> <user-specified dimensions> <free dimensions>
//
// where the first two groups form the baked prefix and the free dimensions
// are permuted. All levels must be initialized before Size or Decode is
// called.
type PermutationSpace struct {
	numLevels int
	patterns  map[int]*permutationPattern
}

type permutationPattern struct {
	bakedPrefix      []problem.Dimension
	permutableSuffix []problem.Dimension
	size             uint64 // len(permutableSuffix)!
}

var _ Subspace[[][]problem.Dimension] = (*PermutationSpace)(nil)

// NewPermutationSpace creates a space over the given number of tiling
// levels, all of them uninitialized. It panics if numLevels is negative.
func NewPermutationSpace(numLevels int) *PermutationSpace {
	if numLevels < 0 {
		exceptions.Panicf("mapspace.NewPermutationSpace(%d): negative level count", numLevels)
	}
	return &PermutationSpace{
		numLevels: numLevels,
		patterns:  make(map[int]*permutationPattern, numLevels),
	}
}

// NumLevels returns the number of tiling levels.
func (s *PermutationSpace) NumLevels() int { return s.numLevels }

// InitLevel fixes the loop order of the given level to start with
// userPrefix; the remaining dimensions are free and enumerated by the
// level's id digits. An empty prefix leaves the whole level free.
//
// It panics if level is out of [0, NumLevels()) and fails if the prefix
// holds an invalid or repeated dimension.
func (s *PermutationSpace) InitLevel(level int, userPrefix []problem.Dimension) error {
	return s.InitLevelPruned(level, userPrefix, nil)
}

// InitLevelPruned is InitLevel with a set of pruned dimensions, ones whose
// tile factor at this level is pinned to 1 so their loop position is
// irrelevant. Pruned dimensions are baked in front of the user prefix and
// removed from the permutable suffix.
func (s *PermutationSpace) InitLevelPruned(level int, userPrefix, pruned []problem.Dimension) error {
	if level < 0 || level >= s.numLevels {
		exceptions.Panicf("PermutationSpace.InitLevelPruned(%d): level out of range [0, %d)", level, s.numLevels)
	}

	baked := slices.Clone(pruned)
	for _, dim := range userPrefix {
		if !slices.Contains(pruned, dim) {
			baked = append(baked, dim)
		}
	}
	seen := make(map[problem.Dimension]bool, len(baked))
	for _, dim := range baked {
		if !dim.IsADimension() {
			return errors.Errorf("level %d prefix holds invalid dimension %d", level, int(dim))
		}
		if seen[dim] {
			return errors.Errorf("level %d prefix repeats dimension %s", level, dim)
		}
		seen[dim] = true
	}

	var suffix []problem.Dimension
	for _, dim := range problem.AllDimensions() {
		if !seen[dim] {
			suffix = append(suffix, dim)
		}
	}

	s.patterns[level] = &permutationPattern{
		bakedPrefix:      baked,
		permutableSuffix: suffix,
		size:             numeric.Factorial(len(suffix)).Uint64(),
	}
	return nil
}

// InitLevelCanonical bakes the full canonical dimension order into the
// level, leaving nothing to permute.
func (s *PermutationSpace) InitLevelCanonical(level int) error {
	return s.InitLevel(level, problem.AllDimensions())
}

// LevelSize returns the number of loop orders of one level, the factorial
// of its free-suffix length. It panics if the level is out of range or was
// never initialized.
func (s *PermutationSpace) LevelSize(level int) uint64 {
	return s.pattern(level).size
}

// BakedPrefix returns a copy of the level's fixed loop-order prefix.
func (s *PermutationSpace) BakedPrefix(level int) []problem.Dimension {
	return slices.Clone(s.pattern(level).bakedPrefix)
}

func (s *PermutationSpace) pattern(level int) *permutationPattern {
	if level < 0 || level >= s.numLevels {
		exceptions.Panicf("PermutationSpace: level %d out of range [0, %d)", level, s.numLevels)
	}
	pattern, found := s.patterns[level]
	if !found {
		exceptions.Panicf("PermutationSpace: level %d was never initialized", level)
	}
	return pattern
}

// Size returns the product of all per-level loop-order counts. It panics
// if any level was never initialized.
func (s *PermutationSpace) Size() *big.Int {
	product := big.NewInt(1)
	size := new(big.Int)
	for level := 0; level < s.numLevels; level++ {
		product.Mul(product, size.SetUint64(s.pattern(level).size))
	}
	return product
}

// Decode returns one loop order per level. Level 0 consumes the lowest
// order digits of id; fully baked levels consume nothing. It panics unless
// 0 <= id < Size().
func (s *PermutationSpace) Decode(id *big.Int) [][]problem.Dimension {
	if id.Sign() < 0 || id.Cmp(s.Size()) >= 0 {
		exceptions.Panicf("PermutationSpace.Decode(%s): id out of range, space has %s points", id, s.Size())
	}
	orders := make([][]problem.Dimension, s.numLevels)
	rest := new(big.Int).Set(id)
	levelSize, digit := new(big.Int), new(big.Int)
	for level := 0; level < s.numLevels; level++ {
		pattern := s.pattern(level)
		order := slices.Clone(pattern.bakedPrefix)
		if len(pattern.permutableSuffix) > 0 {
			rest.DivMod(rest, levelSize.SetUint64(pattern.size), digit)
			suffix := slices.Clone(pattern.permutableSuffix)
			numeric.PermutationForRank(suffix, digit)
			order = append(order, suffix...)
		}
		orders[level] = order
	}
	return orders
}
