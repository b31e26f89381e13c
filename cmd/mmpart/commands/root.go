// SPDX-License-Identifier: MIT

// Package commands implements the mmpart subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmpart/config"
	"github.com/katalvlaran/mmpart/partition"
)

// Exit codes.
const (
	ExitOK                  = 0
	ExitError               = 1
	ExitVerificationFailure = 2
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the mmpart command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mmpart",
		Short: "Verify and render red/blue partitions of MatrixMarket matrices",
		Long: `mmpart reads sparse matrices in MatrixMarket coordinate format and checks
that a partitioned copy, whose values are labels 1 (red), 2 (blue) and
3 (unassigned), is balanced within epsilon.

Commands:
  verify        Check a partitioned matrix against its original
  render        Draw a partitioned matrix as SVG, PNG or ASCII
  info          Describe a matrix file
  canonicalize  Write the expanded, de-duplicated form of a matrix`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./mmpart.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newVerifyCommand(a))
	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newInfoCommand(a))
	rootCmd.AddCommand(newCanonicalizeCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log, a.verbose, a.quiet)

	return nil
}

// ExitCode maps a command error to the process exit status: verification
// failures exit 2, every other error 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, partition.ErrVerification):
		return ExitVerificationFailure
	default:
		return ExitError
	}
}

// revalidate re-checks the config after flags overrode it.
func (a *app) revalidate() error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return nil
}
