// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"math/big"
	"slices"

	"github.com/gomlx/exceptions"
)

// PermutationForRank reorders items in place to the rank-th permutation,
// using the factorial number system: position 0 takes the element at
// rank mod len(items) among the items in their original order, position 1
// takes the element at (rank / len(items)) mod (len(items)-1) among the
// remaining ones, and so on.
//
// Rank 0 yields the identity. Every rank in [0, len(items)!) yields a
// distinct permutation; ranks outside that range panic.
func PermutationForRank[T any](items []T, rank *big.Int) {
	if rank.Sign() < 0 || rank.Cmp(Factorial(len(items))) >= 0 {
		exceptions.Panicf("numeric.PermutationForRank(%s): rank out of range for %d items", rank, len(items))
	}
	remaining := slices.Clone(items)
	r := new(big.Int).Set(rank)
	count, digit := new(big.Int), new(big.Int)
	for ii := range items {
		count.SetInt64(int64(len(remaining)))
		r.DivMod(r, count, digit)
		pick := int(digit.Int64())
		items[ii] = remaining[pick]
		remaining = slices.Delete(remaining, pick, pick+1)
	}
}
