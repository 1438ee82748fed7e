// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

// Package problem models the convolution workload whose mapping space is
// being enumerated: the seven problem dimensions and their loop bounds, the
// per-tensor data densities, and a registry of well-known CNN layer shapes.
package problem

// Dimension identifies one of the seven loop dimensions of a 2D
// convolution: filter width R and height S, output width P and height Q,
// input channels C, output channels K and batch N. The constant order is
// the canonical dimension order.
type Dimension int

//go:generate go tool enumer -type=Dimension -text -json -values dimension.go

const (
	R Dimension = iota
	S
	P
	Q
	C
	K
	N
)

// NumDimensions is the number of problem dimensions.
const NumDimensions = int(N) + 1

// AllDimensions returns the dimensions in canonical order, as a fresh slice
// the caller may reorder.
func AllDimensions() []Dimension {
	return []Dimension{R, S, P, Q, C, K, N}
}

// DataType identifies one of the three tensors a convolution touches.
type DataType int

//go:generate go tool enumer -type=DataType -text -json -values dimension.go

const (
	Weight DataType = iota
	Input
	Output
)

// Densities gives the expected non-zero fraction of each tensor.
type Densities map[DataType]float64

// UniformDensities returns Densities with every tensor at the given
// density. Fully dense is UniformDensities(1).
func UniformDensities(density float64) Densities {
	return Densities{Weight: density, Input: density, Output: density}
}
