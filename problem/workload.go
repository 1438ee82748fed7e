// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package problem

import (
	"github.com/pkg/errors"
)

// Workload is one convolution layer instance: its loop bounds plus the
// stride, dilation and density parameters that downstream consumers (cost
// models, not this package) care about.
type Workload struct {
	Shape Shape `json:"shape"`

	WStride   int `json:"wStride"`
	HStride   int `json:"hStride"`
	WDilation int `json:"wDilation"`
	HDilation int `json:"hDilation"`

	Densities Densities `json:"densities"`
}

// NewWorkload returns a Workload over the given shape with unit strides and
// dilations and fully dense tensors.
func NewWorkload(shape Shape) Workload {
	return Workload{
		Shape:     shape,
		WStride:   1,
		HStride:   1,
		WDilation: 1,
		HDilation: 1,
		Densities: UniformDensities(1),
	}
}

// Bound returns the loop bound of the given dimension.
func (w Workload) Bound(dim Dimension) int {
	return w.Shape.Bound(dim)
}

// Validate checks bounds, strides, dilations and densities.
func (w Workload) Validate() error {
	if err := w.Shape.Validate(); err != nil {
		return err
	}
	if w.WStride < 1 || w.HStride < 1 {
		return errors.Errorf("strides must be >= 1, got W=%d H=%d", w.WStride, w.HStride)
	}
	if w.WDilation < 1 || w.HDilation < 1 {
		return errors.Errorf("dilations must be >= 1, got W=%d H=%d", w.WDilation, w.HDilation)
	}
	for dataType, density := range w.Densities {
		if density < 0 || density > 1 {
			return errors.Errorf("density of %s is %g, must be in [0, 1]", dataType, density)
		}
	}
	return nil
}

// DensityConfig overrides the density of each tensor individually.
type DensityConfig struct {
	Weights float64 `json:"weights"`
	Inputs  float64 `json:"inputs"`
	Outputs float64 `json:"outputs"`
}

// WorkloadConfig is the external description of a workload. Either a layer
// name (resolved against a Registry, with optional per-dimension overrides)
// or a full set of bounds must be given. Absent strides and dilations
// default to 1; absent densities default to the layer's registered
// densities, or to fully dense.
type WorkloadConfig struct {
	Layer     string `json:"layer,omitempty"`
	PadPrimes *bool  `json:"padPrimes,omitempty"`

	R *int `json:"R,omitempty"`
	S *int `json:"S,omitempty"`
	P *int `json:"P,omitempty"`
	Q *int `json:"Q,omitempty"`
	C *int `json:"C,omitempty"`
	K *int `json:"K,omitempty"`
	N *int `json:"N,omitempty"`

	WStride   *int `json:"Wstride,omitempty"`
	HStride   *int `json:"Hstride,omitempty"`
	WDilation *int `json:"Wdilation,omitempty"`
	HDilation *int `json:"Hdilation,omitempty"`

	CommonDensity *float64       `json:"commonDensity,omitempty"`
	Densities     *DensityConfig `json:"densities,omitempty"`
}

func (cfg *WorkloadConfig) boundOverrides() map[Dimension]*int {
	return map[Dimension]*int{
		R: cfg.R, S: cfg.S, P: cfg.P, Q: cfg.Q, C: cfg.C, K: cfg.K, N: cfg.N,
	}
}

// Workload resolves the configuration against the registry.
func (r *Registry) Workload(cfg WorkloadConfig) (w Workload, err error) {
	var shape Shape
	if cfg.Layer != "" {
		padPrimes := true
		if cfg.PadPrimes != nil {
			padPrimes = *cfg.PadPrimes
		}
		shape, err = r.Lookup(cfg.Layer, padPrimes)
		if err != nil {
			return
		}
	}
	for dim, bound := range cfg.boundOverrides() {
		switch {
		case bound != nil:
			shape[dim] = *bound
		case cfg.Layer == "":
			err = errors.Errorf("workload gives no layer name, so bound %s is required", dim)
			return
		}
	}

	w = NewWorkload(shape)
	if cfg.WStride != nil {
		w.WStride = *cfg.WStride
	}
	if cfg.HStride != nil {
		w.HStride = *cfg.HStride
	}
	if cfg.WDilation != nil {
		w.WDilation = *cfg.WDilation
	}
	if cfg.HDilation != nil {
		w.HDilation = *cfg.HDilation
	}

	switch {
	case cfg.CommonDensity != nil:
		w.Densities = UniformDensities(*cfg.CommonDensity)
	case cfg.Densities != nil:
		w.Densities = Densities{
			Weight: cfg.Densities.Weights,
			Input:  cfg.Densities.Inputs,
			Output: cfg.Densities.Outputs,
		}
	case cfg.Layer != "":
		w.Densities, err = r.LayerDensities(cfg.Layer)
		if err != nil {
			return
		}
	}

	err = w.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid workload configuration")
		w = Workload{}
	}
	return
}
