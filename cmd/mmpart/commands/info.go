// SPDX-License-Identifier: MIT

package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmpart/config"
	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
)

// matrixInfo describes one matrix file. Labels and MinDifference are set
// only when every value is a partition label.
type matrixInfo struct {
	Path          string            `json:"path" yaml:"path"`
	Rows          int               `json:"rows" yaml:"rows"`
	Cols          int               `json:"cols" yaml:"cols"`
	Field         matrix.Field      `json:"field" yaml:"field"`
	Symmetry      matrix.Symmetry   `json:"symmetry" yaml:"symmetry"`
	DeclaredNNZ   int               `json:"declared_nonzeros" yaml:"declared_nonzeros"`
	NNZ           int               `json:"nonzeros" yaml:"nonzeros"`
	Labels        *partition.Counts `json:"labels,omitempty" yaml:"labels,omitempty"`
	MinDifference *int              `json:"min_difference,omitempty" yaml:"min_difference,omitempty"`
}

func newInfoCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Describe a MatrixMarket file and its partition labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				a.cfg.Output.Format = output
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			return runInfo(cmd.OutOrStdout(), a, args[0])
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutputFormat, "report format: table, json or yaml")

	return cmd
}

func describe(path string, m *matrix.Sparse) matrixInfo {
	h := m.Header()
	info := matrixInfo{
		Path:        path,
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		Field:       h.Field,
		Symmetry:    h.Symmetry,
		DeclaredNNZ: h.DeclaredNNZ,
		NNZ:         m.NNZ(),
	}

	if counts, err := partition.CountLabels(m); err == nil {
		diff := counts.MinDifference()
		info.Labels = &counts
		info.MinDifference = &diff
	}

	return info
}

func runInfo(w io.Writer, a *app, path string) error {
	m, err := matrix.ReadFile(path)
	if err != nil {
		return err
	}

	info := describe(path, m)
	if info.Labels == nil {
		a.logger.Debug("values are not partition labels", "path", path)
	}

	if a.cfg.Output.Format == formatTable {
		writeInfoTable(w, info)

		return nil
	}

	return writeStructured(w, a.cfg.Output.Format, info)
}
