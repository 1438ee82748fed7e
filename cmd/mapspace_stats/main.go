// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

// mapspace_stats reports the size and structure of the mapping space of a
// convolution workload: how many tile factorizations, loop orders and
// spatial splits a mapper would have to search, and what any particular
// mapping looks like.
//
// Examples:
//
//	mapspace_stats -layer ALEX_conv1 -levels 3 -spatial 1
//	mapspace_stats -bounds 3,3,57,57,48,96,1 -levels 2 -index 12345
//	mapspace_stats -config mapspace.json -check 1000
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/MusaviMariam/timeloop/mapspace"
	"github.com/MusaviMariam/timeloop/problem"
)

var (
	flagLayer = flag.String("layer", "", "Built-in layer to use as the workload, e.g. \"ALEX_conv1\". "+
		"See -list_layers for the registry.")
	flagBounds = flag.String("bounds", "", "Comma-separated loop bounds in the order R,S,P,Q,C,K,N, "+
		"e.g. \"3,3,57,57,48,96,1\". Overrides the bounds of -layer; required when -layer is not given.")
	flagPadPrimes = flag.Bool("pad_primes", true, "Replace awkward prime bounds of built-in layers with "+
		"their nearest composite, so they factorize across levels.")
	flagLevels  = flag.Int("levels", 3, "Number of tiling levels.")
	flagSpatial = flag.String("spatial", "", "Comma-separated indices of the levels that spread their "+
		"loops across hardware instances, e.g. \"1\" or \"0,2\". Those levels get a spatial split subspace.")
	flagConfig = flag.String("config", "", "JSON file holding {\"workload\": {...}, \"mapspace\": {...}}. "+
		"Replaces -layer, -bounds, -levels and -spatial.")
	flagDensities = flag.String("densities", "", "CSV file with per-layer tensor densities, one "+
		"\"layer, weights, inputs, outputs\" row per line. Registered before the workload is resolved.")
)

var titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'mapspace_stats -help'.", flag.Args())
		os.Exit(1)
	}

	registry := problem.NewRegistry()
	if *flagDensities != "" {
		file := must.M1(os.Open(*flagDensities))
		must.M(registry.ReadDensitiesCSV(file))
		must.M(file.Close())
	}
	if *flagListLayers {
		ListLayers(registry)
		return
	}

	workload, spec := configure(registry)
	space, err := mapspace.New(workload, spec)
	if err != nil {
		klog.Errorf("Cannot build the mapping space: %+v", err)
		os.Exit(1)
	}

	Summary(space)
	if *flagIndex != "" {
		DecodeReport(space, *flagIndex)
	}
	if *flagCheck > 0 {
		Check(space, *flagCheck)
	}
}

// configure resolves the workload and the mapspace spec from the flags.
func configure(registry *problem.Registry) (problem.Workload, mapspace.Spec) {
	if *flagConfig != "" {
		if *flagLayer != "" || *flagBounds != "" {
			klog.Errorf("-config replaces -layer and -bounds, give only one of them.")
			os.Exit(1)
		}
		var file struct {
			Workload problem.WorkloadConfig `json:"workload"`
			MapSpace mapspace.Spec          `json:"mapspace"`
		}
		must.M(json.Unmarshal(must.M1(os.ReadFile(*flagConfig)), &file))
		workload, err := registry.Workload(file.Workload)
		if err != nil {
			klog.Errorf("Invalid workload in %s: %+v", *flagConfig, err)
			os.Exit(1)
		}
		return workload, file.MapSpace
	}

	var cfg problem.WorkloadConfig
	cfg.Layer = *flagLayer
	cfg.PadPrimes = flagPadPrimes
	if *flagBounds != "" {
		fields := strings.Split(*flagBounds, ",")
		if len(fields) != problem.NumDimensions {
			klog.Errorf("-bounds needs %d comma-separated values in the order R,S,P,Q,C,K,N, got %d.",
				problem.NumDimensions, len(fields))
			os.Exit(1)
		}
		bounds := make([]int, problem.NumDimensions)
		for ii, field := range fields {
			bounds[ii] = must.M1(strconv.Atoi(strings.TrimSpace(field)))
		}
		cfg.R, cfg.S, cfg.P, cfg.Q = &bounds[0], &bounds[1], &bounds[2], &bounds[3]
		cfg.C, cfg.K, cfg.N = &bounds[4], &bounds[5], &bounds[6]
	} else if cfg.Layer == "" {
		klog.Errorf("One of -layer, -bounds or -config is required. See 'mapspace_stats -help'.")
		os.Exit(1)
	}
	workload, err := registry.Workload(cfg)
	if err != nil {
		klog.Errorf("Invalid workload: %+v", err)
		os.Exit(1)
	}

	if *flagLevels < 1 {
		klog.Errorf("-levels must be at least 1, got %d.", *flagLevels)
		os.Exit(1)
	}
	spec := mapspace.Spec{Levels: make([]mapspace.LevelSpec, *flagLevels)}
	if *flagSpatial != "" {
		for _, field := range strings.Split(*flagSpatial, ",") {
			level := must.M1(strconv.Atoi(strings.TrimSpace(field)))
			if level < 0 || level >= *flagLevels {
				klog.Errorf("-spatial names level %d, out of range [0, %d).", level, *flagLevels)
				os.Exit(1)
			}
			spec.Levels[level].Spatial = true
		}
	}
	return workload, spec
}
