// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmpart/matrix"
)

func newCanonicalizeCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "canonicalize <input>",
		Short: "Write the symmetry-expanded, de-duplicated form of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.ReadFile(args[0])
			if err != nil {
				return err
			}

			if out == "" {
				return matrix.Write(cmd.OutOrStdout(), m)
			}

			if err = writeTarget(out, func(w io.Writer) error { return matrix.Write(w, m) }); err != nil {
				return err
			}

			a.logger.Info("canonical matrix written",
				slog.String("path", out), slog.Int("nonzeros", m.NNZ()), slog.Int("declared", m.Header().DeclaredNNZ))

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: standard output)")

	return cmd
}
