// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package problem

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	shape, err := reg.Lookup("ALEX_conv1", false)
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 57, 57, 48, 96, 1}, shape)

	// 57 has almost no divisors; padded it becomes 60.
	shape, err = reg.Lookup("ALEX_conv1", true)
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 60, 60, 48, 96, 1}, shape)

	shape, err = reg.Lookup("ALEX_conv3", true)
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 15, 15, 256, 384, 1}, shape)

	shape, err = reg.Lookup("ALEX_conv2_2", true)
	require.NoError(t, err)
	require.Equal(t, Shape{5, 5, 28, 28, 48, 128, 1}, shape)

	// Already composite extents are left alone.
	shape, err = reg.Lookup("VGG_conv1_1", true)
	require.NoError(t, err)
	require.Equal(t, Shape{3, 3, 224, 224, 3, 64, 1}, shape)

	_, err = reg.Lookup("no_such_layer", true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no_such_layer")
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	names := reg.Names()
	require.Len(t, names, 74)
	require.True(t, slices.IsSorted(names))
	require.Contains(t, names, "TEST")
	require.Contains(t, names, "inception_5b-5x5")
}

func TestRegisterLayer(t *testing.T) {
	reg := NewRegistry()
	require.Error(t, reg.RegisterLayer("", Shape{1, 1, 1, 1, 1, 1, 1}))
	require.Error(t, reg.RegisterLayer("bad", Shape{}))

	custom := Shape{1, 1, 16, 16, 32, 32, 4}
	require.NoError(t, reg.RegisterLayer("custom", custom))
	shape, err := reg.Lookup("custom", true)
	require.NoError(t, err)
	require.Equal(t, custom, shape)

	densities, err := reg.LayerDensities("custom")
	require.NoError(t, err)
	require.Equal(t, UniformDensities(1), densities)
}

func TestDensitiesCSV(t *testing.T) {
	reg := NewRegistry()
	csv := "ALEX_conv1,0.5,0.8,1.0\nTEST,0.25,0.5,0.75\n"
	require.NoError(t, reg.ReadDensitiesCSV(strings.NewReader(csv)))

	densities, err := reg.LayerDensities("ALEX_conv1")
	require.NoError(t, err)
	require.Equal(t, Densities{Weight: 0.5, Input: 0.8, Output: 1.0}, densities)

	densities, err = reg.LayerDensities("TEST")
	require.NoError(t, err)
	require.Equal(t, Densities{Weight: 0.25, Input: 0.5, Output: 0.75}, densities)

	// Untouched layers stay fully dense.
	densities, err = reg.LayerDensities("VGG_conv1_1")
	require.NoError(t, err)
	require.Equal(t, UniformDensities(1), densities)

	err = reg.ReadDensitiesCSV(strings.NewReader("unknown_layer,1,1,1\n"))
	require.Error(t, err)
}

func TestDensitiesCSVRoundTrip(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.SetDensities("TEST", Densities{Weight: 0.125, Input: 0.25, Output: 0.5}))

	var buf bytes.Buffer
	require.NoError(t, reg.WriteDensitiesCSV(&buf))

	fresh := NewRegistry()
	require.NoError(t, fresh.ReadDensitiesCSV(&buf))
	densities, err := fresh.LayerDensities("TEST")
	require.NoError(t, err)
	require.Equal(t, Densities{Weight: 0.125, Input: 0.25, Output: 0.5}, densities)
}

func TestSetDensitiesUnknownLayer(t *testing.T) {
	reg := NewRegistry()
	require.Error(t, reg.SetDensities("nope", UniformDensities(1)))
}
