// Package cli implements the percolate command-line interface.
//
// # Commands
//
//   - label:   generate (or read) a lattice, label its clusters, render and dump them
//   - lattice: generate a lattice and render the raw occupancy
//   - bridge:  count the empty sites that must be occupied to join the two largest clusters
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "percolate"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Percolate labels clusters on random lattices",
		Long:         `Percolate generates site-percolation lattices, labels their 4-connected clusters with the Hoshen-Kopelman method and renders the result as PNG.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML run configuration")

	root.AddCommand(newLabelCmd(&configPath))
	root.AddCommand(newLatticeCmd(&configPath))
	root.AddCommand(newBridgeCmd(&configPath))

	return root
}
