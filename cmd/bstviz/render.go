package main

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

// plotHeight is the number of rows used by the level plot.
const plotHeight = 8

func renderTable(w io.Writer, header []string, rows [][]string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.AppendBulk(rows)
	tbl.Render()
}

// writeLevelPlot draws nodes-per-level; trees shorter than two levels have
// nothing worth plotting.
func writeLevelPlot(w io.Writer, levels []int) {
	if len(levels) < 2 {
		fmt.Fprintln(w, "level plot: fewer than two levels")
		return
	}
	data := make([]float64, len(levels))
	for i, n := range levels {
		data[i] = float64(n)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Caption("nodes per level (root = 0)")))
}
