// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"math/big"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/MusaviMariam/timeloop/problem"
)

// SpatialSplitSpace enumerates, for every spatial tiling level, the point
// at which the level's loop order is cut between the two hardware spatial
// axes. Only levels that were initialized take part; the others are
// temporal and contribute nothing to the space.
//
// A free spatial level with u unit-factor dimensions ranges over the
// splits u..NumDimensions, one digit of the id. A user-specified level is
// fixed to a single split and consumes nothing.
type SpatialSplitSpace struct {
	numLevels int
	levels    map[int]*spatialLevel
}

type spatialLevel struct {
	userSpecified bool
	userSplit     int
	unitFactors   int
	size          uint64
}

var _ Subspace[map[int]int] = (*SpatialSplitSpace)(nil)

// NewSpatialSplitSpace creates a space over the given number of tiling
// levels, none of them spatial yet. It panics if numLevels is negative.
func NewSpatialSplitSpace(numLevels int) *SpatialSplitSpace {
	if numLevels < 0 {
		exceptions.Panicf("mapspace.NewSpatialSplitSpace(%d): negative level count", numLevels)
	}
	return &SpatialSplitSpace{
		numLevels: numLevels,
		levels:    make(map[int]*spatialLevel),
	}
}

// NumLevels returns the number of tiling levels.
func (s *SpatialSplitSpace) NumLevels() int { return s.numLevels }

// InitLevel marks the level as spatial with a free split point.
// unitFactors is the number of dimensions pinned to tile factor 1 at this
// level; splitting before them is pointless, so the enumerated splits are
// unitFactors..NumDimensions.
//
// It panics if level is out of [0, NumLevels()) and fails if unitFactors
// is outside [0, NumDimensions].
func (s *SpatialSplitSpace) InitLevel(level, unitFactors int) error {
	if level < 0 || level >= s.numLevels {
		exceptions.Panicf("SpatialSplitSpace.InitLevel(%d): level out of range [0, %d)", level, s.numLevels)
	}
	if unitFactors < 0 || unitFactors > problem.NumDimensions {
		return errors.Errorf("level %d has %d unit factors, must be in [0, %d]", level, unitFactors, problem.NumDimensions)
	}
	s.levels[level] = &spatialLevel{
		unitFactors: unitFactors,
		size:        uint64(problem.NumDimensions + 1 - unitFactors),
	}
	return nil
}

// InitLevelUserSpecified marks the level as spatial with a fixed split.
func (s *SpatialSplitSpace) InitLevelUserSpecified(level, userSplit int) error {
	if level < 0 || level >= s.numLevels {
		exceptions.Panicf("SpatialSplitSpace.InitLevelUserSpecified(%d): level out of range [0, %d)", level, s.numLevels)
	}
	if userSplit < 0 || userSplit > problem.NumDimensions {
		return errors.Errorf("level %d split is %d, must be in [0, %d]", level, userSplit, problem.NumDimensions)
	}
	s.levels[level] = &spatialLevel{
		userSpecified: true,
		userSplit:     userSplit,
		size:          1,
	}
	return nil
}

// IsSpatial reports whether the level was initialized as spatial.
func (s *SpatialSplitSpace) IsSpatial(level int) bool {
	_, found := s.levels[level]
	return found
}

// LevelSize returns the number of split choices of the level: 1 for
// temporal and user-specified levels.
func (s *SpatialSplitSpace) LevelSize(level int) uint64 {
	if lvl, found := s.levels[level]; found {
		return lvl.size
	}
	return 1
}

// Size returns the product of the split choices of all spatial levels.
func (s *SpatialSplitSpace) Size() *big.Int {
	product := big.NewInt(1)
	size := new(big.Int)
	for level := 0; level < s.numLevels; level++ {
		if lvl, found := s.levels[level]; found {
			product.Mul(product, size.SetUint64(lvl.size))
		}
	}
	return product
}

// Decode returns the split point of every spatial level, keyed by level;
// temporal levels are absent. Free levels consume the id digits in
// ascending level order, user-specified ones consume nothing. It panics
// unless 0 <= id < Size().
func (s *SpatialSplitSpace) Decode(id *big.Int) map[int]int {
	if id.Sign() < 0 || id.Cmp(s.Size()) >= 0 {
		exceptions.Panicf("SpatialSplitSpace.Decode(%s): id out of range, space has %s points", id, s.Size())
	}
	splits := make(map[int]int, len(s.levels))
	rest := new(big.Int).Set(id)
	levelSize, digit := new(big.Int), new(big.Int)
	for level := 0; level < s.numLevels; level++ {
		lvl, found := s.levels[level]
		if !found {
			continue
		}
		if lvl.userSpecified {
			splits[level] = lvl.userSplit
			continue
		}
		rest.DivMod(rest, levelSize.SetUint64(lvl.size), digit)
		splits[level] = lvl.unitFactors + int(digit.Uint64())
	}
	return splits
}
