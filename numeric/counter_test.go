// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixedRadixDigits(t *testing.T) {
	// rank 5 over radices {3, 1, 4}: 5 mod 3 = 2, quotient 1; the radix-1
	// axis consumes nothing; 1 mod 4 = 1.
	digits := MixedRadixDigits(big.NewInt(5), []uint64{3, 1, 4})
	require.Equal(t, []uint64{2, 0, 1}, digits)

	require.Panics(t, func() { MixedRadixDigits(big.NewInt(0), []uint64{3, 0}) })
}

func TestCartesianCounter(t *testing.T) {
	counter, err := NewCartesianCounter([]uint64{3, 1, 4})
	require.NoError(t, err)
	require.Equal(t, 3, counter.Len())
	require.Equal(t, uint64(1), counter.Radix(1))
	require.Equal(t, "12", counter.Size().String())

	// Every rank decodes to a distinct digit vector, and the radix-1 axis
	// is always 0.
	seen := make(map[string]bool)
	for rank := int64(0); rank < 12; rank++ {
		digits := counter.Decode(big.NewInt(rank))
		require.Zero(t, digits[1])
		key := fmt.Sprint(digits)
		require.False(t, seen[key], "rank %d repeated digits %s", rank, key)
		seen[key] = true
	}

	require.Panics(t, func() { counter.Decode(big.NewInt(12)) })
	require.Panics(t, func() { counter.Decode(big.NewInt(-1)) })
	require.Panics(t, func() { counter.Radix(3) })
}

func TestCartesianCounterZeroRadix(t *testing.T) {
	_, err := NewCartesianCounter([]uint64{3, 0, 4})
	require.Error(t, err)
	require.Contains(t, err.Error(), "axis 1")
}

func TestCartesianCounterHugeProduct(t *testing.T) {
	// 16 axes of 2^32 options each: the product is 2^512, far beyond any
	// native integer.
	radices := make([]uint64, 16)
	for ii := range radices {
		radices[ii] = 1 << 32
	}
	counter, err := NewCartesianCounter(radices)
	require.NoError(t, err)
	require.Equal(t, 513, counter.Size().BitLen())

	// The topmost rank decodes to all-maximal digits.
	top := new(big.Int).Sub(counter.Size(), big.NewInt(1))
	for _, digit := range counter.Decode(top) {
		require.Equal(t, uint64(math.MaxUint32), digit)
	}
}
