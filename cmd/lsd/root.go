package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
	"github.com/aretw0/lsd/internal/platform"
	"github.com/aretw0/lsd/pkg/core"
)

var (
	verbose   bool
	graphFlag string
	cfg       *platform.Config
)

// errExit makes the process exit with 1 without printing an error.
var errExit = errors.New("exit 1")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lsd",
	Short: "Heal the Markdown files of a Logseq graph",
	Long: `lsd keeps a Logseq graph tidy.
It appends to journals respecting the empty-bullet placeholder Logseq creates,
removes unnecessary tag brackets from pages and collapses list spacing.

The graph is taken from --graph, then $LOGSEQ_GRAPH_PATH, then the config
file, then the first parent directory that looks like a graph.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}

		handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:           level,
			ReportTimestamp: verbose,
			Prefix:          "lsd",
		})
		slog.SetDefault(slog.New(handler))

		var err error
		cfg, err = platform.LoadConfig()
		if err != nil {
			return err
		}
		slog.Debug("config loaded", "path", platform.ConfigPath())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&graphFlag, "graph", "g", "", "Logseq graph directory (default $"+platform.GraphEnv+")")
}

// graphRoot resolves the graph directory for commands that need one.
func graphRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := platform.ResolveGraph(graphFlag, config(), cwd)
	if err != nil {
		if errors.Is(err, core.ErrRootNotFound) {
			return "", fmt.Errorf("%w; use --graph or set %s", err, platform.GraphEnv)
		}
		return "", err
	}
	slog.Debug("graph resolved", "path", root)
	return root, nil
}

// newService builds a service honouring the config file; opts win over it.
func newService(root string, opts ...lsd.Option) (*core.Service, error) {
	all := append(config().Options(), lsd.WithLogger(slog.Default()))
	return lsd.New(root, append(all, opts...)...)
}

func config() *platform.Config {
	if cfg == nil {
		return platform.DefaultConfig()
	}
	return cfg
}
