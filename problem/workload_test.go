// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package problem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestWorkloadFromLayer(t *testing.T) {
	reg := NewRegistry()

	// Prime padding is on by default.
	w, err := reg.Workload(WorkloadConfig{Layer: "ALEX_conv3"})
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 15, 15, 256, 384, 1}, w.Shape)
	require.Equal(t, 1, w.WStride)
	require.Equal(t, 1, w.HDilation)
	require.Equal(t, UniformDensities(1), w.Densities)

	w, err = reg.Workload(WorkloadConfig{Layer: "ALEX_conv3", PadPrimes: boolPtr(false)})
	require.NoError(t, err)
	require.Equal(t, 13, w.Bound(P))

	// Per-dimension overrides are applied after the layer lookup.
	w, err = reg.Workload(WorkloadConfig{Layer: "ALEX_conv3", N: intPtr(4), K: intPtr(96)})
	require.NoError(t, err)
	require.Equal(t, 4, w.Bound(N))
	require.Equal(t, 96, w.Bound(K))
	require.Equal(t, 15, w.Bound(P))

	_, err = reg.Workload(WorkloadConfig{Layer: "no_such_layer"})
	require.Error(t, err)
}

func TestWorkloadFromExplicitBounds(t *testing.T) {
	reg := NewRegistry()
	cfg := WorkloadConfig{
		R: intPtr(3), S: intPtr(3), P: intPtr(16), Q: intPtr(16),
		C: intPtr(64), K: intPtr(32), N: intPtr(1),
		WStride: intPtr(2), HStride: intPtr(2),
	}
	w, err := reg.Workload(cfg)
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 16, 16, 64, 32, 1}, w.Shape)
	require.Equal(t, 2, w.WStride)
	require.Equal(t, 2, w.HStride)
	require.Equal(t, 1, w.WDilation)

	// Without a layer name, every bound is required.
	cfg.N = nil
	_, err = reg.Workload(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "N is required")
}

func TestWorkloadDensityPrecedence(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.SetDensities("TEST", Densities{Weight: 0.9, Input: 0.9, Output: 0.9}))

	// commonDensity wins over everything.
	w, err := reg.Workload(WorkloadConfig{Layer: "TEST", CommonDensity: floatPtr(0.5)})
	require.NoError(t, err)
	require.Equal(t, UniformDensities(0.5), w.Densities)

	// An explicit densities block is next.
	w, err = reg.Workload(WorkloadConfig{
		Layer:     "TEST",
		Densities: &DensityConfig{Weights: 0.1, Inputs: 0.2, Outputs: 0.3},
	})
	require.NoError(t, err)
	require.Equal(t, Densities{Weight: 0.1, Input: 0.2, Output: 0.3}, w.Densities)

	// Then the registry's per-layer densities.
	w, err = reg.Workload(WorkloadConfig{Layer: "TEST"})
	require.NoError(t, err)
	require.Equal(t, Densities{Weight: 0.9, Input: 0.9, Output: 0.9}, w.Densities)
}

func TestWorkloadValidation(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Workload(WorkloadConfig{Layer: "TEST", WStride: intPtr(0)})
	require.Error(t, err)

	_, err = reg.Workload(WorkloadConfig{Layer: "TEST", K: intPtr(-1)})
	require.Error(t, err)

	_, err = reg.Workload(WorkloadConfig{Layer: "TEST", CommonDensity: floatPtr(1.5)})
	require.Error(t, err)
}

func TestWorkloadJSON(t *testing.T) {
	w := NewWorkload(Shape{3, 3, 16, 16, 64, 32, 1})
	w.WStride = 2
	data, err := json.Marshal(w)
	require.NoError(t, err)

	var back Workload
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, w, back)
}
