// Package cli implements the vdppdf command-line interface.
//
// This package provides commands for composing double-sided print-ready
// documents from a master template PDF and a content PDF, and for inspecting
// input documents. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the vdppdf CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "vdppdf",
		Short:        "vdppdf composes double-sided print-ready PDFs with back-side numbering",
		Long:         `vdppdf overlays every page of a content PDF onto the front page of a 2-page master template and pairs it with the master's back page stamped with a sequential number, producing a 2N-page document ready for duplex printing.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vdppdf %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMergeCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(context.Background())
}
