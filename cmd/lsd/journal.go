package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/lsd"
	"github.com/aretw0/lsd/internal/platform"
	"github.com/aretw0/lsd/pkg/core"
	"github.com/aretw0/lsd/pkg/outline"
)

var (
	journalDate    string
	journalPrepend bool
	journalFormat  bool
	journalTidy    bool
	journalDryRun  bool
)

var journalCmd = &cobra.Command{
	Use:   "journal [CONTENT...]",
	Short: "Add content to a journal page",
	Long: `Append content to the journal of a date (today by default).

Arguments are joined with spaces; piped stdin is added after them on its own
line. A journal holding only the empty bullet Logseq creates is treated as
empty and replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := platform.ParseDate(journalDate, time.Now())
		if err != nil {
			return err
		}

		content, err := readContent(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if journalFormat {
			if content, err = outline.Convert(content); err != nil {
				return err
			}
			content = strings.TrimSuffix(content, "\n")
		}
		if journalTidy {
			content = lsd.StripTagBrackets(lsd.CollapseListSpacing(content))
		}

		mode := lsd.Append
		if journalPrepend {
			mode = lsd.Prepend
		}

		root, err := graphRoot()
		if err != nil {
			return err
		}
		svc, err := newService(root)
		if err != nil {
			return err
		}

		j := core.NewJournal(root, &date)

		if journalDryRun {
			return previewJournal(cmd, svc, j, content, mode)
		}

		return svc.MutateJournal(cmd.Context(), j, content, mode)
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().StringVarP(&journalDate, "date", "d", "", "Journal date: YYYY-MM-DD, today, yesterday, tomorrow or a weekday name")
	journalCmd.Flags().BoolVarP(&journalPrepend, "prepend", "p", false, "Prepend content instead of appending")
	journalCmd.Flags().BoolVarP(&journalFormat, "format", "f", false, "Format flat text as a Logseq outline")
	journalCmd.Flags().BoolVar(&journalTidy, "tidy", false, "Collapse list spacing and tag brackets of the content")
	journalCmd.Flags().BoolVarP(&journalDryRun, "dry-run", "n", false, "Print the resulting journal instead of writing it")
}

// previewJournal prints the diff MutateJournal would apply.
func previewJournal(cmd *cobra.Command, svc *core.Service, j core.Journal, content string, mode core.Mode) error {
	op, preview, err := svc.PlanJournal(cmd.Context(), j, content, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", pathStyle.Render(j.Path()), dimStyle.Render("("+op.Kind.String()+")"))
	if op.Kind == core.OpSkip {
		return nil
	}

	current, _, err := svc.Store().Read(cmd.Context(), j.Path())
	if err != nil {
		return err
	}
	printDiff(out, unifiedDiff(j.Path(), current, preview))
	return nil
}

// readContent joins args with spaces and adds stdin, unless stdin is a terminal.
func readContent(args []string, in io.Reader) (string, error) {
	var parts []string
	if len(args) > 0 {
		parts = append(parts, strings.Join(args, " "))
	}

	if in != nil && !isTerminal(in) {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if s := strings.TrimSuffix(string(data), "\n"); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "\n"), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
