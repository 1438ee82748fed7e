// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/MusaviMariam/timeloop/problem"
)

// LevelSpec configures one tiling level of the mapping space.
type LevelSpec struct {
	// Name labels the level in reports, e.g. "DRAM" or "PE array".
	Name string `json:"name,omitempty"`

	// Spatial marks the level as spreading its loops across hardware
	// instances, which gives it a spatial split.
	Spatial bool `json:"spatial,omitempty"`

	// Prefix pins the first loops of the level's order; the dimensions not
	// listed are enumerated freely. Mutually exclusive with Canonical.
	Prefix []problem.Dimension `json:"prefix,omitempty"`

	// Canonical pins the whole level to the canonical dimension order.
	Canonical bool `json:"canonical,omitempty"`

	// Split pins the spatial split point instead of enumerating it.
	Split *int `json:"split,omitempty"`
}

// Spec configures a MapSpace: the tiling-level structure plus any
// user-pinned tile factors, as they come from a configuration file.
type Spec struct {
	Levels []LevelSpec `json:"levels"`

	// Factors pins tile factors per dimension and level, e.g.
	// {"C": {"0": 4}} forces dimension C to use a factor of 4 at level 0.
	// A factor of 1 removes the dimension from that level, which also
	// prunes it from the level's loop-order enumeration.
	Factors map[problem.Dimension]map[int]uint64 `json:"factors,omitempty"`
}

// NumLevels returns the number of tiling levels.
func (s *Spec) NumLevels() int { return len(s.Levels) }

// LevelName returns the level's configured name, or "level <i>".
func (s *Spec) LevelName(level int) string {
	if level >= 0 && level < len(s.Levels) && s.Levels[level].Name != "" {
		return s.Levels[level].Name
	}
	return "level " + strconv.Itoa(level)
}

// Validate checks the configuration for internal consistency. Whether the
// pinned factors divide the workload bounds is only known once a workload
// is attached, in New.
func (s *Spec) Validate() error {
	if len(s.Levels) == 0 {
		return errors.Errorf("mapspace needs at least one tiling level")
	}
	for ii, level := range s.Levels {
		if level.Canonical && len(level.Prefix) > 0 {
			return errors.Errorf("level %d: canonical order and an explicit prefix are mutually exclusive", ii)
		}
		seen := make(map[problem.Dimension]bool, len(level.Prefix))
		for _, dim := range level.Prefix {
			if !dim.IsADimension() {
				return errors.Errorf("level %d prefix holds invalid dimension %d", ii, int(dim))
			}
			if seen[dim] {
				return errors.Errorf("level %d prefix repeats dimension %s", ii, dim)
			}
			seen[dim] = true
		}
		if level.Split != nil {
			if !level.Spatial {
				return errors.Errorf("level %d has a spatial split but is not spatial", ii)
			}
			if *level.Split < 0 || *level.Split > problem.NumDimensions {
				return errors.Errorf("level %d split is %d, must be in [0, %d]", ii, *level.Split, problem.NumDimensions)
			}
		}
	}
	for dim, byLevel := range s.Factors {
		if !dim.IsADimension() {
			return errors.Errorf("pinned factors name invalid dimension %d", int(dim))
		}
		for level, factor := range byLevel {
			if level < 0 || level >= len(s.Levels) {
				return errors.Errorf("pinned factor for %s names level %d, out of range [0, %d)", dim, level, len(s.Levels))
			}
			if factor == 0 {
				return errors.Errorf("pinned factor for %s at level %d must be positive", dim, level)
			}
		}
	}
	return nil
}

// prunedDimensions returns, in canonical order, the dimensions whose tile
// factor is pinned to 1 at the given level.
func (s *Spec) prunedDimensions(level int) []problem.Dimension {
	var pruned []problem.Dimension
	for _, dim := range problem.AllDimensions() {
		if s.Factors[dim][level] == 1 {
			pruned = append(pruned, dim)
		}
	}
	return pruned
}
