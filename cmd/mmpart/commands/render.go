// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmpart/config"
	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
	"github.com/katalvlaran/mmpart/render"
)

const (
	renderCmdUse   = "render <partitioned> <target|->"
	renderCmdShort = "Draw a partitioned matrix as SVG, PNG or ASCII"
	renderArgCount = 2
	outputFilePerm = 0o644
	stdoutTarget   = "-"
)

// ErrUnknownRenderFormat is returned for a format no renderer handles.
var ErrUnknownRenderFormat = errors.New("unknown render format")

func newRenderCommand(a *app) *cobra.Command {
	var (
		format    string
		maxPixels int
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Long: `Draw a partitioned matrix: red for label 1, blue for 2, yellow for 3.

Every value must be a partition label. Cells are scaled so the longest side
is about --max-pixels, between 1 and 10 pixels per cell. Use "-" as target
to write to standard output.`,
		Args: cobra.ExactArgs(renderArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Render.Format = format
			}
			if cmd.Flags().Changed("max-pixels") {
				a.cfg.Render.MaxPixels = maxPixels
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			return runRender(cmd.OutOrStdout(), a, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.DefaultRenderFormat, "image format: svg, png or ascii")
	cmd.Flags().IntVar(&maxPixels, "max-pixels", config.DefaultMaxPixels, "target length of the longest image side")

	return cmd
}

func runRender(stdout io.Writer, a *app, source, target string) error {
	m, err := matrix.ReadFile(source)
	if err != nil {
		return err
	}

	counts, err := partition.CountLabels(m)
	if err != nil {
		return err
	}

	renderOpts := []render.Option{render.WithMaxPixels(a.cfg.Render.MaxPixels)}
	fill := func(w io.Writer) error { return draw(w, m, a.cfg.Render.Format, renderOpts...) }
	if target == stdoutTarget {
		err = fill(stdout)
	} else {
		err = writeTarget(target, fill)
	}
	if err != nil {
		return err
	}

	a.logger.Info("rendered",
		slog.String("target", target), slog.String("format", a.cfg.Render.Format),
		slog.Int("cell", render.CellSize(m.Rows(), m.Cols(), a.cfg.Render.MaxPixels)),
		slog.Int("red", counts.Red), slog.Int("blue", counts.Blue), slog.Int("unassigned", counts.Unassigned))

	return nil
}

func draw(w io.Writer, m *matrix.Sparse, format string, opts ...render.Option) error {
	switch format {
	case "svg":
		return render.SVG(w, m, opts...)
	case "png":
		return render.PNG(w, m, opts...)
	case "ascii":
		return render.ASCII(w, m, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderFormat, format)
	}
}

// writeTarget runs fill into memory and writes path only when it succeeds,
// so a failed render or write never leaves a truncated file behind.
func writeTarget(path string, fill func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), outputFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
