// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package mapspace

import "math/big"

// Subspace is the shape shared by every component space: a finite set of
// choices addressed by one non-negative integer. Implementations are
// immutable once built, Decode is a pure function of the id, and ids
// outside [0, Size()) panic.
type Subspace[T any] interface {
	// Size returns the number of points in the space.
	Size() *big.Int

	// Decode materializes the choice behind the given id.
	Decode(id *big.Int) T
}
