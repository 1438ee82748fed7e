// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Shape holds the loop bound of every problem dimension, indexed by
// Dimension. A valid shape has every bound >= 1; a bound of 1 means the
// dimension is trivial for this layer.
type Shape [NumDimensions]int

// Bound returns the loop bound of the given dimension.
func (s Shape) Bound(dim Dimension) int {
	if !dim.IsADimension() {
		exceptions.Panicf("Shape.Bound(%d): invalid dimension", int(dim))
	}
	return s[dim]
}

// SetBound sets the loop bound of the given dimension.
func (s *Shape) SetBound(dim Dimension, bound int) {
	if !dim.IsADimension() {
		exceptions.Panicf("Shape.SetBound(%d, %d): invalid dimension", int(dim), bound)
	}
	s[dim] = bound
}

// Volume returns the product of all bounds, the number of MACC operations
// of the layer.
func (s Shape) Volume() int {
	volume := 1
	for _, bound := range s {
		volume *= bound
	}
	return volume
}

// Validate checks that every bound is positive.
func (s Shape) Validate() error {
	for ii, bound := range s {
		if bound < 1 {
			return errors.Errorf("dimension %s has bound %d, must be >= 1", Dimension(ii), bound)
		}
	}
	return nil
}

// String returns the bounds as "R=3 S=3 P=57 Q=57 C=48 K=96 N=1".
func (s Shape) String() string {
	parts := make([]string, NumDimensions)
	for ii, bound := range s {
		parts[ii] = fmt.Sprintf("%s=%d", Dimension(ii), bound)
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the shape as an object keyed by dimension name, in
// canonical dimension order.
func (s Shape) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for ii, bound := range s {
		if ii > 0 {
			buf.WriteByte(',')
		}
		_, _ = fmt.Fprintf(&buf, "%q:%d", Dimension(ii).String(), bound)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by dimension name. All seven
// dimensions must be present and no other key is accepted.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "cannot parse shape")
	}
	var parsed Shape
	seen := make(map[Dimension]bool)
	for key, bound := range raw {
		dim, err := DimensionString(key)
		if err != nil {
			return errors.Errorf("unknown dimension %q in shape", key)
		}
		parsed[dim] = bound
		seen[dim] = true
	}
	if len(seen) != NumDimensions {
		for _, dim := range AllDimensions() {
			if !seen[dim] {
				return errors.Errorf("shape is missing dimension %s", dim)
			}
		}
	}
	*s = parsed
	return nil
}
