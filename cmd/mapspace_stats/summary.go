// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MusaviMariam/timeloop/mapspace"
	"github.com/MusaviMariam/timeloop/problem"
)

// Summary reports the workload, the size of each mapping subspace and the
// per-level breakdown.
func Summary(space *mapspace.MapSpace) {
	workload := space.Workload()

	fmt.Println(titleStyle.Render("Workload"))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	for _, dim := range problem.AllDimensions() {
		table.Row(dim.String(), humanize.Comma(int64(workload.Bound(dim))))
	}
	table.Row("strides", fmt.Sprintf("W=%d H=%d", workload.WStride, workload.HStride))
	table.Row("dilations", fmt.Sprintf("W=%d H=%d", workload.WDilation, workload.HDilation))
	densities := make([]string, 0, len(workload.Densities))
	for _, dataType := range problem.DataTypeValues() {
		densities = append(densities,
			fmt.Sprintf("%s=%g", strings.ToLower(dataType.String()), workload.Densities[dataType]))
	}
	table.Row("densities", strings.Join(densities, " "))
	fmt.Println(table.Render())

	fmt.Println(titleStyle.Render("Factorizations"))
	table = newPlainTable(lipgloss.Right)
	table.Headers("Dimension", "Options")
	for _, dim := range problem.AllDimensions() {
		table.Row(dim.String(), humanize.Comma(int64(space.IndexFactorizations().Options(dim))))
	}
	fmt.Println(table.Render())

	fmt.Println(titleStyle.Render("Mapping Space"))
	table = newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Headers("Subspace", "Size")
	table.Row("index factorizations", humanize.BigComma(space.IndexFactorizations().Size()))
	table.Row("loop permutations", humanize.BigComma(space.Permutations().Size()))
	table.Row("spatial splits", humanize.BigComma(space.SpatialSplits().Size()))
	table.Row("total mappings", humanize.BigComma(space.Size()))
	fmt.Println(table.Render())

	fmt.Println(titleStyle.Render("Levels"))
	table = newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Headers("Level", "Name", "Pinned Prefix", "Permutations", "Spatial Splits")
	spec := space.Spec()
	for level := 0; level < space.NumLevels(); level++ {
		prefix := "-"
		if baked := space.Permutations().BakedPrefix(level); len(baked) > 0 {
			names := make([]string, len(baked))
			for ii, dim := range baked {
				names[ii] = dim.String()
			}
			prefix = strings.Join(names, " ")
		}
		splits := "-"
		if space.SpatialSplits().IsSpatial(level) {
			splits = humanize.Comma(int64(space.SpatialSplits().LevelSize(level)))
		}
		table.Row(strconv.Itoa(level), spec.LevelName(level), prefix,
			humanize.Comma(int64(space.Permutations().LevelSize(level))), splits)
	}
	fmt.Println(table.Render())
}
