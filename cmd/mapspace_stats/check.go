// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/MusaviMariam/timeloop/mapspace"
	"github.com/MusaviMariam/timeloop/problem"
)

var flagCheck = flag.Int("check", 0, "Decode this many mappings, evenly spaced over the whole space, and "+
	"verify that each one's tile factors multiply back to the workload bounds.")

// Check decodes evenly spaced mappings across the whole space and verifies
// the tile factors of each one.
func Check(space *mapspace.MapSpace, samples int) {
	fmt.Println(titleStyle.Render("Decode Check"))
	size := space.Size()
	if size.IsInt64() && int64(samples) > size.Int64() {
		samples = int(size.Int64())
	}
	step := new(big.Int).Div(size, big.NewInt(int64(samples)))

	output := termenv.NewOutput(os.Stdout)
	output.HideCursor()
	defer output.ShowCursor()
	bar := progressbar.NewOptions(samples,
		progressbar.OptionSetDescription("      [bold]"),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("mappings"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
	)
	workload := space.Workload()
	id := big.NewInt(0)
	for ii := 0; ii < samples; ii++ {
		mapping := space.Decode(id)
		for _, dim := range problem.AllDimensions() {
			product := uint64(1)
			for level := 0; level < space.NumLevels(); level++ {
				product *= mapping.TileFactors.Factor(dim, level)
			}
			if product != uint64(workload.Bound(dim)) {
				_ = bar.Clear()
				output.ShowCursor()
				klog.Errorf("Mapping %s: %s tile factors multiply to %d, want %d.",
					id, dim, product, workload.Bound(dim))
				os.Exit(1)
			}
		}
		for level, order := range mapping.LoopOrders {
			var seen [problem.NumDimensions]bool
			distinct := 0
			for _, dim := range order {
				if !seen[dim] {
					seen[dim] = true
					distinct++
				}
			}
			if len(order) != problem.NumDimensions || distinct != problem.NumDimensions {
				_ = bar.Clear()
				output.ShowCursor()
				klog.Errorf("Mapping %s: level %d loop order %v is not a permutation of the dimensions.",
					id, level, order)
				os.Exit(1)
			}
		}
		_ = bar.Add(1)
		id.Add(id, step)
	}
	_ = bar.Finish()
	fmt.Println()
	fmt.Printf("Decoded %s mappings, all tile factors multiply back to the workload bounds "+
		"and all loop orders are permutations.\n", humanize.Comma(int64(samples)))
}
