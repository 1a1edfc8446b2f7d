// Package cli implements the command-line interface for rcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rcube/internal/config"
)

const version = "0.1.0"

// app holds global flag values and the resolved configuration shared by
// every subcommand.
type app struct {
	// Global flags
	dbPath     string
	configFile string
	verbose    bool

	cfg *config.Config
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rcube",
		Short: "Rubik's cube move engine",
		Long: `rcube applies quarter turns to a 3x3x3 Rubik's cube and scores how close
the result is to solved.

Moves: U D R L F B (faces) and E M S (middle slices). Prefix a move with
"-" for its reverse, e.g. "R U -R -U".

Sessions keep a cube's move log in a local SQLite database so practice can
be resumed, extended and undone.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/.rcube/rcube.db)")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ~/.rcube/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newInvertCmd(a))
	rootCmd.AddCommand(newSimplifyCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration once flags are parsed.
func (a *app) loadConfig(cmd *cobra.Command) error {
	var dirs []string
	if dir, err := config.DefaultDir(); err == nil {
		dirs = append(dirs, dir)
	}

	cfg, err := config.Load(a.configFile, cmd.Root().PersistentFlags(), dirs...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.File != "" {
		a.verbosef(cmd, "Using config file %s\n", cfg.File)
	}
	return nil
}
