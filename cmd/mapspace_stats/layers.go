// Copyright 2026 Mariam Musavi. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"

	"github.com/MusaviMariam/timeloop/problem"
)

var flagListLayers = flag.Bool("list_layers", false, "List the built-in layers with their bounds (after "+
	"-pad_primes padding) and exit.")

// ListLayers prints the layer registry.
func ListLayers(registry *problem.Registry) {
	fmt.Println(titleStyle.Render("Layers"))
	table := newPlainTable(lipgloss.Left, lipgloss.Right)
	headers := make([]string, 1+problem.NumDimensions)
	headers[0] = "Layer"
	for ii, dim := range problem.AllDimensions() {
		headers[1+ii] = dim.String()
	}
	table.Headers(headers...)
	for _, name := range registry.Names() {
		shape := must.M1(registry.Lookup(name, *flagPadPrimes))
		row := make([]string, 1+problem.NumDimensions)
		row[0] = name
		for ii, dim := range problem.AllDimensions() {
			row[1+ii] = strconv.Itoa(shape.Bound(dim))
		}
		table.Row(row...)
	}
	fmt.Println(table.Render())
}
