// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"math/big"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// MixedRadixDigits decodes rank into one digit per axis, with axis 0 the
// least significant: digit[ii] = rank mod radices[ii], after which rank is
// divided by radices[ii]. An axis with radix 1 always decodes to 0 and
// consumes nothing. Whatever quotient is left after the last axis is
// discarded; range checking is the caller's business (CartesianCounter
// does it).
//
// It panics if any radix is zero.
func MixedRadixDigits(rank *big.Int, radices []uint64) []uint64 {
	digits := make([]uint64, len(radices))
	r := new(big.Int).Set(rank)
	radix, digit := new(big.Int), new(big.Int)
	for ii, rad := range radices {
		if rad == 0 {
			exceptions.Panicf("numeric.MixedRadixDigits: axis %d has radix 0", ii)
		}
		radix.SetUint64(rad)
		r.DivMod(r, radix, digit)
		digits[ii] = digit.Uint64()
	}
	return digits
}

// CartesianCounter addresses the cartesian product of fixed-size option
// lists ("axes") through a single non-negative integer, using mixed-radix
// positional decoding. Axis 0 is the least significant.
type CartesianCounter struct {
	radices []uint64
	size    *big.Int
}

// NewCartesianCounter creates a counter over the given per-axis radices.
// It fails if any radix is zero: an axis with no options makes the whole
// product space empty, which is always a configuration mistake upstream.
func NewCartesianCounter(radices []uint64) (*CartesianCounter, error) {
	size := big.NewInt(1)
	for ii, radix := range radices {
		if radix == 0 {
			return nil, errors.Errorf("cartesian counter axis %d has zero options", ii)
		}
		size.Mul(size, new(big.Int).SetUint64(radix))
	}
	return &CartesianCounter{radices: slices.Clone(radices), size: size}, nil
}

// Len returns the number of axes.
func (c *CartesianCounter) Len() int { return len(c.radices) }

// Radix returns the number of options along the given axis.
func (c *CartesianCounter) Radix(axis int) uint64 {
	if axis < 0 || axis >= len(c.radices) {
		exceptions.Panicf("CartesianCounter.Radix(%d): axis out of range, counter has %d axes", axis, len(c.radices))
	}
	return c.radices[axis]
}

// Size returns the total number of points in the product space.
func (c *CartesianCounter) Size() *big.Int {
	return new(big.Int).Set(c.size)
}

// Decode returns the per-axis digits of rank, axis 0 least significant.
// It panics unless 0 <= rank < Size().
func (c *CartesianCounter) Decode(rank *big.Int) []uint64 {
	if rank.Sign() < 0 || rank.Cmp(c.size) >= 0 {
		exceptions.Panicf("CartesianCounter.Decode(%s): rank out of range, space has %s points", rank, c.size)
	}
	return MixedRadixDigits(rank, c.radices)
}
