// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

// Package numeric implements the combinatorial machinery behind the mapping
// spaces: factorials and permutation unranking, mixed-radix counters and
// integer factorization tables.
//
// Everything here is exact integer arithmetic. The cardinality of a single
// axis always fits in a uint64, but products across axes routinely overflow
// 64 bits, so combined sizes and ranks are kept in big.Int. All types are
// immutable after construction and safe for concurrent use.
package numeric

import (
	"math/big"

	"github.com/gomlx/exceptions"
)

// Factorial returns n! as a big integer. Factorial(0) is 1.
// It panics if n is negative.
func Factorial(n int) *big.Int {
	if n < 0 {
		exceptions.Panicf("numeric.Factorial(%d): n must be non-negative", n)
	}
	return new(big.Int).MulRange(1, int64(n))
}
