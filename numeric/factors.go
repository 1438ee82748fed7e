// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Factors is the table of ordered factorizations of a positive integer into
// a fixed number of cofactors: every tuple of `order` positive integers
// whose product is the bound, optionally with some levels pinned to a fixed
// value. The table is fully materialized at construction, in a fixed
// deterministic order (ascending cofactor at each unpinned level, earlier
// levels varying slowest), and is immutable afterwards.
type Factors struct {
	bound  uint64
	order  int
	tuples [][]uint64
}

// NewFactors builds the factorization table of bound into order cofactors.
// pinned (may be nil) fixes the cofactor of the given levels; the remaining
// levels enumerate every way to factorize the residual.
//
// It fails if bound is zero, order is not positive, a pinned level is out
// of [0, order), a pinned cofactor is zero or does not divide bound, or the
// pins leave no valid factorization (in particular, all levels pinned with
// a product different from bound).
func NewFactors(bound uint64, order int, pinned map[int]uint64) (f *Factors, err error) {
	if bound == 0 {
		err = errors.Errorf("factorization bound must be positive")
		return
	}
	if order < 1 {
		err = errors.Errorf("factorization of %d needs at least one level, got %d", bound, order)
		return
	}
	for level, factor := range pinned {
		if level < 0 || level >= order {
			err = errors.Errorf("pinned level %d out of range [0, %d)", level, order)
			return
		}
		if factor == 0 {
			err = errors.Errorf("pinned factor at level %d must be positive", level)
			return
		}
		if bound%factor != 0 {
			err = errors.Errorf("pinned factor %d at level %d does not divide bound %d", factor, level, bound)
			return
		}
	}
	f = &Factors{bound: bound, order: order}
	f.enumerate(0, bound, make([]uint64, order), pinned)
	if len(f.tuples) == 0 {
		f = nil
		err = errors.Errorf("pinned factors leave no factorization of %d across %d levels", bound, order)
		return
	}
	return
}

// enumerate appends, in ascending divisor order, every completion of
// current[:level] whose remaining cofactors multiply to residual.
func (f *Factors) enumerate(level int, residual uint64, current []uint64, pinned map[int]uint64) {
	if level == f.order {
		if residual == 1 {
			f.tuples = append(f.tuples, slices.Clone(current))
		}
		return
	}
	if factor, ok := pinned[level]; ok {
		if residual%factor != 0 {
			return
		}
		current[level] = factor
		f.enumerate(level+1, residual/factor, current, pinned)
		return
	}
	for _, divisor := range divisors(residual) {
		current[level] = divisor
		f.enumerate(level+1, residual/divisor, current, pinned)
	}
}

// divisors returns all divisors of n in ascending order.
func divisors(n uint64) []uint64 {
	var low, high []uint64
	for d := uint64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if other := n / d; other != d {
			high = append(high, other)
		}
	}
	slices.Reverse(high)
	return append(low, high...)
}

// Bound returns the integer being factorized.
func (f *Factors) Bound() uint64 { return f.bound }

// Order returns the number of cofactors per tuple.
func (f *Factors) Order() int { return f.order }

// Size returns the number of factorizations in the table.
func (f *Factors) Size() uint64 { return uint64(len(f.tuples)) }

// Factor returns the level-th cofactor of the index-th factorization.
// It panics if index or level is out of range.
func (f *Factors) Factor(index uint64, level int) uint64 {
	if index >= f.Size() {
		exceptions.Panicf("Factors.Factor(%d, %d): index out of range, table has %d factorizations of %d", index, level, f.Size(), f.bound)
	}
	if level < 0 || level >= f.order {
		exceptions.Panicf("Factors.Factor(%d, %d): level out of range [0, %d)", index, level, f.order)
	}
	return f.tuples[index][level]
}

// Tuple returns a copy of the index-th factorization.
// It panics if index is out of range.
func (f *Factors) Tuple(index uint64) []uint64 {
	if index >= f.Size() {
		exceptions.Panicf("Factors.Tuple(%d): index out of range, table has %d factorizations of %d", index, f.Size(), f.bound)
	}
	return slices.Clone(f.tuples[index])
}
