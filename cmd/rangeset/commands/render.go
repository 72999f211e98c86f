package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/baratali/rangeset/pkg/cut"
	"github.com/baratali/rangeset/pkg/rangeset"
)

const floatPrecision = 6

var (
	unboundedColor = color.New(color.FgYellow)
	emptyColor     = color.New(color.FgRed)
	boundColor     = color.New(color.FgGreen)
)

// RenderRanges prints ranges as an aligned table, one row per range, with
// unbounded cuts and an empty result highlighted in color.
func RenderRanges(ranges []rangeset.Range[float64]) string {
	if len(ranges) == 0 {
		return emptyColor.Sprint("(empty)")
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"#", "lower", "upper"})

	for i, r := range ranges {
		tbl.AppendRow(table.Row{i, renderCut(r.Lower()), renderCut(r.Upper())})
	}

	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d range(s)", len(ranges))})

	return tbl.Render()
}

func renderCut(c cut.Cut[float64]) string {
	if c.IsBelowAll() {
		return unboundedColor.Sprint("-inf")
	}

	if c.IsAboveAll() {
		return unboundedColor.Sprint("+inf")
	}

	v, _ := c.Value()

	return boundColor.Sprint(strconv.FormatFloat(v, 'f', floatPrecision, 64))
}
