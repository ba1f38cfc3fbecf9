package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
	lsdlifecycle "github.com/aretw0/lsd/pkg/adapters/lifecycle"
	"github.com/aretw0/lsd/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Tidy up pages as they change",
	Long: `Watch the pages and journals of the graph and tidy up every Markdown file
matching the pattern when it is created or modified. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := graphRoot()
		if err != nil {
			return err
		}

		pattern := watchPattern
		if pattern == "" {
			pattern = config().WatchPattern
		}

		svc, err := newService(root, lsd.WithWatcherErrorHandler(func(err error) {
			slog.Warn("watcher error", "error", err)
		}))
		if err != nil {
			return err
		}

		watchable, ok := svc.Store().(core.Watchable)
		if !ok {
			return fmt.Errorf("store %T cannot be watched", svc.Store())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := watchable.Watch(ctx, pattern)
		if err != nil {
			return err
		}

		src := lsdlifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		slog.Info("watching", "graph", root, "pattern", pattern)
		for ev := range src.Events() {
			e, ok := ev.(core.Event)
			if !ok || e.Type == core.EventDelete {
				continue
			}
			tidyOnChange(ctx, svc, e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob relative to the graph (default from config, "+`"pages/**/*.md"`+")")
}

// tidyOnChange tidies the page behind e. The rewrite triggers another event,
// which finds nothing left to fix.
func tidyOnChange(ctx context.Context, svc *core.Service, e core.Event) {
	results, err := svc.TidyUp(ctx, e.Path)
	if err != nil {
		slog.Error("tidy-up failed", "path", e.Path, "error", err)
		return
	}
	for _, res := range results {
		if res.Changed {
			slog.Info("tidied", "path", res.Path, "fixes", res.Fixes)
		}
	}
}
