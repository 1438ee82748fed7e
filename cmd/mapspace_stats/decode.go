// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/MusaviMariam/timeloop/mapspace"
	"github.com/MusaviMariam/timeloop/problem"
)

var flagIndex = flag.String("index", "", "Decode the mapping with this id (decimal, arbitrary size) and "+
	"print its tile factors, loop orders and spatial splits.")

// DecodeReport prints the mapping behind one id.
func DecodeReport(space *mapspace.MapSpace, text string) {
	id, ok := new(big.Int).SetString(text, 10)
	if !ok {
		klog.Errorf("-index %q is not a decimal integer.", text)
		os.Exit(1)
	}
	if id.Sign() < 0 || id.Cmp(space.Size()) >= 0 {
		klog.Errorf("-index %s is out of range, the space has %s mappings.",
			text, humanize.BigComma(space.Size()))
		os.Exit(1)
	}
	factorizationID, permutationID, splitID := space.Split(id)
	mapping := space.Decode(id)

	fmt.Println(titleStyle.Render("Mapping " + humanize.BigComma(id)))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("factorization id", humanize.BigComma(factorizationID))
	table.Row("permutation id", humanize.BigComma(permutationID))
	table.Row("spatial split id", humanize.BigComma(splitID))
	fmt.Println(table.Render())

	spec := space.Spec()
	table = newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Headers("Level", "Name", "Loop Order", "Split")
	for level, order := range mapping.LoopOrders {
		names := make([]string, len(order))
		for ii, dim := range order {
			names[ii] = dim.String()
		}
		split := "-"
		if at, found := mapping.Splits[level]; found {
			split = "@" + strconv.Itoa(at)
		}
		table.Row(strconv.Itoa(level), spec.LevelName(level), strings.Join(names, " "), split)
	}
	fmt.Println(table.Render())

	table = newPlainTable(lipgloss.Right)
	headers := make([]string, 1+space.NumLevels())
	headers[0] = "Factors"
	for level := 1; level < len(headers); level++ {
		headers[level] = "L" + strconv.Itoa(level-1)
	}
	table.Headers(headers...)
	for _, dim := range problem.AllDimensions() {
		row := make([]string, 1+space.NumLevels())
		row[0] = dim.String()
		for level := 0; level < space.NumLevels(); level++ {
			row[1+level] = strconv.FormatUint(mapping.TileFactors.Factor(dim, level), 10)
		}
		table.Row(row...)
	}
	fmt.Println(table.Render())
}
