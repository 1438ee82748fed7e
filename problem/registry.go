// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package problem

import (
	"io"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// nearestComposite rounds the awkward prime-ish extents that appear in the
// built-in layers up (or near) to a number with a richer divisor structure,
// so that their factorization tables are not degenerate.
var nearestComposite = map[int]int{
	11: 12,
	13: 15,
	27: 28,
	55: 56,
	57: 60,
}

// builtinLayers are the bounds of well-known CNN layers, batch size 1.
// AlexNet layers follow the Eyeriss ISCA paper, Table II.
var builtinLayers = map[string]Shape{
	// R  S  P  Q  C  K  N
	"TEST": {3, 3, 40, 40, 64, 1, 1},

	// AlexNet.
	"ALEX_conv1":   {3, 3, 57, 57, 48, 96, 1},
	"ALEX_conv2_1": {5, 5, 27, 27, 48, 128, 1},
	"ALEX_conv2_2": {5, 5, 27, 27, 48, 128, 1},
	"ALEX_conv3":   {3, 3, 13, 13, 256, 384, 1},
	"ALEX_conv4":   {3, 3, 13, 13, 192, 384, 1},
	"ALEX_conv5":   {3, 3, 13, 13, 192, 256, 1},

	// VGG 16.
	"VGG_conv1_1": {3, 3, 224, 224, 3, 64, 1},
	"VGG_conv1_2": {3, 3, 224, 224, 64, 64, 1},
	"VGG_conv2_1": {3, 3, 112, 112, 64, 128, 1},
	"VGG_conv2_2": {3, 3, 112, 112, 128, 128, 1},
	"VGG_conv3_1": {3, 3, 56, 56, 128, 256, 1},
	"VGG_conv3_2": {3, 3, 56, 56, 256, 256, 1},
	"VGG_conv3_3": {3, 3, 56, 56, 256, 256, 1},
	"VGG_conv4_1": {3, 3, 28, 28, 256, 512, 1},
	"VGG_conv4_2": {3, 3, 28, 28, 512, 512, 1},
	"VGG_conv4_3": {3, 3, 28, 28, 512, 512, 1},
	"VGG_conv5_1": {3, 3, 14, 14, 512, 512, 1},
	"VGG_conv5_2": {3, 3, 14, 14, 512, 512, 1},
	"VGG_conv5_3": {3, 3, 14, 14, 512, 512, 1},

	// GoogLeNet inception modules.
	"inception_3a-pool_proj":  {1, 1, 28, 28, 192, 32, 1},
	"inception_3a-1x1":        {1, 1, 28, 28, 192, 64, 1},
	"inception_3a-3x3_reduce": {1, 1, 28, 28, 192, 96, 1},
	"inception_3a-3x3":        {3, 3, 28, 28, 96, 128, 1},
	"inception_3a-5x5_reduce": {1, 1, 28, 28, 192, 16, 1},
	"inception_3a-5x5":        {5, 5, 28, 28, 16, 32, 1},

	"inception_3b-pool_proj":  {1, 1, 28, 28, 256, 64, 1},
	"inception_3b-1x1":        {1, 1, 28, 28, 256, 128, 1},
	"inception_3b-3x3_reduce": {1, 1, 28, 28, 256, 128, 1},
	"inception_3b-3x3":        {3, 3, 28, 28, 128, 192, 1},
	"inception_3b-5x5_reduce": {1, 1, 28, 28, 256, 32, 1},
	"inception_3b-5x5":        {5, 5, 28, 28, 32, 96, 1},

	"inception_4a-pool_proj":  {1, 1, 14, 14, 480, 64, 1},
	"inception_4a-1x1":        {1, 1, 14, 14, 480, 192, 1},
	"inception_4a-3x3_reduce": {1, 1, 14, 14, 480, 96, 1},
	"inception_4a-3x3":        {3, 3, 14, 14, 96, 208, 1},
	"inception_4a-5x5_reduce": {1, 1, 14, 14, 480, 16, 1},
	"inception_4a-5x5":        {5, 5, 14, 14, 16, 48, 1},

	"inception_4b-pool_proj":  {1, 1, 14, 14, 512, 64, 1},
	"inception_4b-1x1":        {1, 1, 14, 14, 512, 160, 1},
	"inception_4b-3x3_reduce": {1, 1, 14, 14, 512, 112, 1},
	"inception_4b-3x3":        {3, 3, 14, 14, 112, 224, 1},
	"inception_4b-5x5_reduce": {1, 1, 14, 14, 512, 24, 1},
	"inception_4b-5x5":        {5, 5, 14, 14, 24, 64, 1},

	"inception_4c-pool_proj":  {1, 1, 14, 14, 512, 64, 1},
	"inception_4c-1x1":        {1, 1, 14, 14, 512, 128, 1},
	"inception_4c-3x3_reduce": {1, 1, 14, 14, 512, 128, 1},
	"inception_4c-3x3":        {3, 3, 14, 14, 128, 256, 1},
	"inception_4c-5x5_reduce": {1, 1, 14, 14, 512, 24, 1},
	"inception_4c-5x5":        {5, 5, 14, 14, 24, 64, 1},

	"inception_4d-pool_proj":  {1, 1, 14, 14, 512, 64, 1},
	"inception_4d-1x1":        {1, 1, 14, 14, 512, 112, 1},
	"inception_4d-3x3_reduce": {1, 1, 14, 14, 512, 144, 1},
	"inception_4d-3x3":        {3, 3, 14, 14, 144, 288, 1},
	"inception_4d-5x5_reduce": {1, 1, 14, 14, 512, 32, 1},
	"inception_4d-5x5":        {5, 5, 14, 14, 32, 64, 1},

	"inception_4e-pool_proj":  {1, 1, 14, 14, 528, 128, 1},
	"inception_4e-1x1":        {1, 1, 14, 14, 528, 256, 1},
	"inception_4e-3x3_reduce": {1, 1, 14, 14, 528, 160, 1},
	"inception_4e-3x3":        {3, 3, 14, 14, 160, 320, 1},
	"inception_4e-5x5_reduce": {1, 1, 14, 14, 528, 32, 1},
	"inception_4e-5x5":        {5, 5, 14, 14, 32, 128, 1},

	"inception_5a-pool_proj":  {1, 1, 7, 7, 832, 128, 1},
	"inception_5a-1x1":        {1, 1, 7, 7, 832, 256, 1},
	"inception_5a-3x3_reduce": {1, 1, 7, 7, 832, 160, 1},
	"inception_5a-3x3":        {3, 3, 7, 7, 160, 320, 1},
	"inception_5a-5x5_reduce": {1, 1, 7, 7, 832, 32, 1},
	"inception_5a-5x5":        {5, 5, 7, 7, 32, 128, 1},

	"inception_5b-pool_proj":  {1, 1, 7, 7, 832, 128, 1},
	"inception_5b-1x1":        {1, 1, 7, 7, 832, 384, 1},
	"inception_5b-3x3_reduce": {1, 1, 7, 7, 832, 192, 1},
	"inception_5b-3x3":        {3, 3, 7, 7, 192, 384, 1},
	"inception_5b-5x5_reduce": {1, 1, 7, 7, 832, 48, 1},
	"inception_5b-5x5":        {5, 5, 7, 7, 48, 128, 1},
}

// Registry resolves layer names to shapes and densities. It is an explicit
// value so callers can hold independently customized tables; it is not safe
// for concurrent mutation.
type Registry struct {
	layers    map[string]Shape
	densities map[string]Densities
}

// NewRegistry returns a registry seeded with the built-in layer table, all
// tensors fully dense.
func NewRegistry() *Registry {
	r := &Registry{
		layers:    maps.Clone(builtinLayers),
		densities: make(map[string]Densities, len(builtinLayers)),
	}
	for name := range r.layers {
		r.densities[name] = UniformDensities(1)
	}
	return r
}

// Names returns the registered layer names, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.layers)
	slices.Sort(names)
	return names
}

// Lookup returns the shape of the named layer. With padPrimes, extents
// listed in the nearest-composite table are replaced before returning, so
// prime-sized extents still factorize into useful tiles.
func (r *Registry) Lookup(name string, padPrimes bool) (Shape, error) {
	shape, found := r.layers[name]
	if !found {
		return Shape{}, errors.Errorf("layer %q not found in registry", name)
	}
	if padPrimes {
		for ii, bound := range shape {
			if composite, found := nearestComposite[bound]; found {
				shape[ii] = composite
			}
		}
	}
	return shape, nil
}

// LayerDensities returns a copy of the densities of the named layer.
func (r *Registry) LayerDensities(name string) (Densities, error) {
	densities, found := r.densities[name]
	if !found {
		return nil, errors.Errorf("layer %q not found in registry", name)
	}
	return maps.Clone(densities), nil
}

// RegisterLayer adds or replaces a named layer shape. Its densities start
// fully dense if the layer is new.
func (r *Registry) RegisterLayer(name string, shape Shape) error {
	if name == "" {
		return errors.Errorf("layer name must not be empty")
	}
	if err := shape.Validate(); err != nil {
		return errors.Wrapf(err, "layer %q", name)
	}
	r.layers[name] = shape
	if _, found := r.densities[name]; !found {
		r.densities[name] = UniformDensities(1)
	}
	return nil
}

// SetDensities replaces the densities of an already registered layer.
func (r *Registry) SetDensities(name string, densities Densities) error {
	if _, found := r.layers[name]; !found {
		return errors.Errorf("layer %q not found in registry", name)
	}
	r.densities[name] = maps.Clone(densities)
	return nil
}

// ReadDensitiesCSV loads per-layer densities from headerless CSV rows of
// the form "layer, weights, inputs, outputs". Every row must name a
// registered layer.
func (r *Registry) ReadDensitiesCSV(reader io.Reader) error {
	df := dataframe.ReadCSV(reader,
		dataframe.HasHeader(false),
		dataframe.Names("layer", "weights", "inputs", "outputs"),
		dataframe.WithTypes(map[string]series.Type{
			"layer":   series.String,
			"weights": series.Float,
			"inputs":  series.Float,
			"outputs": series.Float,
		}))
	if df.Err != nil {
		return errors.Wrapf(df.Err, "cannot parse densities CSV")
	}
	layers := df.Col("layer").Records()
	weights := df.Col("weights").Float()
	inputs := df.Col("inputs").Float()
	outputs := df.Col("outputs").Float()
	for ii, layer := range layers {
		layer = strings.TrimSpace(layer)
		if _, found := r.layers[layer]; !found {
			return errors.Errorf("densities CSV row %d: layer %q not in registry", ii, layer)
		}
		r.densities[layer] = Densities{
			Weight: weights[ii],
			Input:  inputs[ii],
			Output: outputs[ii],
		}
	}
	return nil
}

// WriteDensitiesCSV dumps all layer densities in the same headerless format
// ReadDensitiesCSV accepts, rows sorted by layer name.
func (r *Registry) WriteDensitiesCSV(writer io.Writer) error {
	names := r.Names()
	weights := make([]float64, len(names))
	inputs := make([]float64, len(names))
	outputs := make([]float64, len(names))
	for ii, name := range names {
		densities := r.densities[name]
		weights[ii] = densities[Weight]
		inputs[ii] = densities[Input]
		outputs[ii] = densities[Output]
	}
	df := dataframe.New(
		series.New(names, series.String, "layer"),
		series.New(weights, series.Float, "weights"),
		series.New(inputs, series.Float, "inputs"),
		series.New(outputs, series.Float, "outputs"),
	)
	if df.Err != nil {
		return errors.Wrapf(df.Err, "cannot build densities dataframe")
	}
	return df.WriteCSV(writer, dataframe.WriteHeader(false))
}
