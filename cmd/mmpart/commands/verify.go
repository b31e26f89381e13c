// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmpart/config"
	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
)

const (
	verifyCmdUse   = "verify <original> <partitioned>"
	verifyCmdShort = "Check that a partitioned matrix is a balanced labelling of the original"
	verifyArgCount = 2
)

func newVerifyCommand(a *app) *cobra.Command {
	var (
		epsilon float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   verifyCmdUse,
		Short: verifyCmdShort,
		Long: `Check that a partitioned matrix is a balanced labelling of the original.

Every value of the partitioned matrix must be 1 (red), 2 (blue) or
3 (unassigned) and sit on a nonzero of the original. Unassigned entries are
first given to the smaller side, the rest split with the odd one to red.
The partition passes when max(red, blue) / ceil(nonzeros/2) - 1 <= epsilon.

Exit status is 2 when the partition is rejected.`,
		Args: cobra.ExactArgs(verifyArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("epsilon") {
				a.cfg.Verify.Epsilon = epsilon
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Output.Format = output
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			return runVerify(cmd.OutOrStdout(), a, args[0], args[1])
		},
	}

	cmd.Flags().Float64VarP(&epsilon, "epsilon", "e", config.DefaultEpsilon, "maximum tolerated imbalance")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutputFormat, "report format: table, json or yaml")

	return cmd
}

func runVerify(w io.Writer, a *app, originalPath, partitionedPath string) error {
	original, err := matrix.ReadFile(originalPath)
	if err != nil {
		return err
	}

	partitioned, err := matrix.ReadFile(partitionedPath)
	if err != nil {
		return err
	}

	a.logger.Debug("matrices loaded",
		slog.String("original", originalPath), slog.String("partitioned", partitionedPath))

	rep, err := partition.Verify(original, partitioned,
		partition.WithEpsilon(a.cfg.Verify.Epsilon), partition.WithLogger(a.logger))
	if err != nil {
		return err
	}

	a.logger.Info("partition accepted", slog.Float64("imbalance", rep.Imbalance))

	if a.quiet {
		return nil
	}

	if a.cfg.Output.Format == formatTable {
		writeVerifyTable(w, rep)

		return nil
	}

	return writeStructured(w, a.cfg.Output.Format, rep)
}
