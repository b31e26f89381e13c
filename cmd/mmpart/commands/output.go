// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mmpart/partition"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}

	return nil
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

func count(n int) string { return humanize.Comma(int64(n)) }

// writeVerifyTable prints the partition sizes before and after
// redistribution followed by the verdict.
func writeVerifyTable(w io.Writer, rep partition.Report) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"", "Red", "Blue", "Unassigned"})
	tbl.AppendRow(table.Row{"raw", count(rep.Raw.Red), count(rep.Raw.Blue), count(rep.Raw.Unassigned)})
	tbl.AppendRow(table.Row{"redistributed", count(rep.Balanced.Red), count(rep.Balanced.Blue), count(rep.Balanced.Unassigned)})
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d x %d", rep.Rows, rep.Cols), "", "", count(rep.NNZ) + " nonzeros"})

	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintf(w, "imbalance: %.6f (epsilon %g)\n", rep.Imbalance, rep.Epsilon)
	color.New(color.FgGreen).Fprintln(w, "PASS")
}

// writeInfoTable prints a key/value description of a matrix file.
func writeInfoTable(w io.Writer, info matrixInfo) {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Property", "Value"})
	tbl.AppendRow(table.Row{"file", info.Path})
	tbl.AppendRow(table.Row{"size", fmt.Sprintf("%d x %d", info.Rows, info.Cols)})
	tbl.AppendRow(table.Row{"field", info.Field})
	tbl.AppendRow(table.Row{"symmetry", info.Symmetry})
	tbl.AppendRow(table.Row{"declared nonzeros", count(info.DeclaredNNZ)})
	tbl.AppendRow(table.Row{"nonzeros", count(info.NNZ)})
	if info.Labels != nil {
		tbl.AppendSeparator()
		tbl.AppendRow(table.Row{"red", count(info.Labels.Red)})
		tbl.AppendRow(table.Row{"blue", count(info.Labels.Blue)})
		tbl.AppendRow(table.Row{"unassigned", count(info.Labels.Unassigned)})
		tbl.AppendRow(table.Row{"min |red-blue|", count(*info.MinDifference)})
	}

	fmt.Fprintln(w, tbl.Render())
	if info.Labels == nil {
		color.New(color.FgYellow).Fprintln(w, "values are not partition labels")
	}
}
