package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
	"github.com/aretw0/lsd/pkg/core"
)

var tidyDryRun bool

var tidyUpCmd = &cobra.Command{
	Use:   "tidy-up FILE|GLOB...",
	Short: "Tidy up Markdown pages",
	Long: `Tidy up Markdown pages, fixing them in place:

- Remove unnecessary brackets from tags (#[[tag]] becomes #tag)
- Remove empty bullets (when remove_empty_bullets is set in the config)

Globs are expanded with ** support. Every fix is printed as "path: message"
and the command exits with 1 when anything was changed, so it can run as a
pre-commit hook.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandPaths(args)
		if err != nil {
			return err
		}

		svc, err := newService("", lsd.WithReadOnly(tidyDryRun))
		if err != nil {
			return err
		}

		results, err := svc.TidyUp(cmd.Context(), paths...)
		changed := report(cmd.OutOrStdout(), results, tidyDryRun)
		if err := withoutReadOnly(err); err != nil || changed {
			// Failures were printed per file.
			return errExit
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tidyUpCmd)
	tidyUpCmd.Flags().BoolVarP(&tidyDryRun, "dry-run", "n", false, "Report fixes without writing them")
}

// expandPaths expands doublestar globs. Arguments without glob syntax are
// kept as they are so missing files get reported.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid glob %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// report prints one line per fix and returns whether anything changed.
func report(w io.Writer, results []core.TidyResult, dryRun bool) bool {
	changed := false
	for _, res := range results {
		path := pathStyle.Render(res.Path)
		switch {
		case res.Skipped():
			fmt.Fprintf(w, "%s: %s\n", path, dimStyle.Render("skipping, not a Markdown file"))
		case dryRun && errors.Is(res.Err, core.ErrReadOnly):
			changed = true
			for _, fix := range res.Fixes {
				fmt.Fprintf(w, "%s: %s\n", path, warningStyle.Render("would fix: "+fix))
			}
			printDiff(w, unifiedDiff(res.Path, res.Before, res.After))
		case res.Err != nil:
			fmt.Fprintf(w, "%s: %s\n", path, errorStyle.Render(res.Err.Error()))
		case res.Changed:
			changed = true
			for _, fix := range res.Fixes {
				fmt.Fprintf(w, "%s: %s\n", path, successStyle.Render(fix))
			}
		}
	}
	return changed
}

// withoutReadOnly drops the read-only refusals a dry run expects.
func withoutReadOnly(err error) error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		if errors.Is(err, core.ErrReadOnly) {
			return nil
		}
		return err
	}
	var rest []error
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, core.ErrReadOnly) {
			rest = append(rest, e)
		}
	}
	return errors.Join(rest...)
}
