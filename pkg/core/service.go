package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
)

// ServiceConfig holds the tunables of a Service.
type ServiceConfig struct {
	Logger *slog.Logger
	// RemoveEmptyBullets makes TidyUpPage also drop lines holding a lone dash.
	RemoveEmptyBullets bool
}

// Service handles the business logic for journals and pages.
type Service struct {
	store  Store
	logger *slog.Logger
	config ServiceConfig
}

// NewService creates a new Service on top of store.
func NewService(store Store, config ServiceConfig) *Service {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, logger: logger, config: config}
}

// Store returns the underlying store.
func (s *Service) Store() Store {
	return s.store
}

// Journal actions reported in trace lines.
const (
	ActionCreated     = "created"
	ActionOverwritten = "overwritten"
	ActionPrepended   = "prepended"
	ActionAppended    = "appended"
	ActionSkipped     = "skipped"
)

// PlanJournal reads the journal and returns the operation MutateJournal would
// perform, along with the content the file would hold afterwards.
func (s *Service) PlanJournal(ctx context.Context, j Journal, content string, mode Mode) (FileOp, string, error) {
	if content == "" {
		return Skip(), "", nil
	}

	path := j.Path()
	current, exists, err := s.store.Read(ctx, path)
	if err != nil {
		return FileOp{}, "", fmt.Errorf("failed to read journal %s: %w", path, err)
	}

	var cur *string
	if exists {
		cur = &current
	}
	op := PlanJournalMutation(cur, content, mode)
	return op, op.Apply(current), nil
}

// MutateJournal appends or prepends content to the journal.
//
// Workflow:
//  1. Empty content returns immediately, without any filesystem access.
//  2. Read the current content (a missing file counts as empty).
//  3. Plan the operation (see PlanJournalMutation).
//  4. Apply it through the store, which flushes before returning.
func (s *Service) MutateJournal(ctx context.Context, j Journal, content string, mode Mode) error {
	path := j.Path()
	if content == "" {
		s.logger.Debug("journal", "path", path, "action", ActionSkipped, "reason", "no content provided")
		return nil
	}

	current, exists, err := s.store.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read journal %s: %w", path, err)
	}

	var cur *string
	if exists {
		cur = &current
	}
	op := PlanJournalMutation(cur, content, mode)

	if err := s.store.Apply(ctx, path, op); err != nil {
		return fmt.Errorf("failed to write journal %s: %w", path, err)
	}

	action := journalAction(op, exists, exists && IsPlaceholderEmpty(current))
	s.logger.Info("journal", "path", path, "action", action, "mode", mode.String())
	return nil
}

func journalAction(op FileOp, existed, placeholder bool) string {
	switch op.Kind {
	case OpAppendWithSeparator:
		return ActionAppended
	case OpOverwrite:
		switch {
		case !existed:
			return ActionCreated
		case placeholder:
			return ActionOverwritten
		default:
			return ActionPrepended
		}
	default:
		return ActionSkipped
	}
}

// Page fixes reported by a tidy-up.
const (
	FixTagBrackets  = "unnecessary tag brackets removed"
	FixEmptyBullets = "empty bullets removed"
)

// TidyResult describes what a tidy-up did to one file.
type TidyResult struct {
	Path    string
	Changed bool
	Fixes   []string
	// Before and After hold the page content when a fix applied, even if the
	// write then failed.
	Before, After string
	// Err is set when the file was skipped or could not be processed.
	Err error
}

// Skipped reports whether the file was ignored because it is not Markdown.
func (r TidyResult) Skipped() bool {
	return errors.Is(r.Err, ErrNotMarkdown)
}

// TidyUpPage normalizes tags of a page and rewrites it only if something
// changed. It returns true when the file was modified.
func (s *Service) TidyUpPage(ctx context.Context, p Page) (bool, error) {
	res := s.tidy(ctx, p)
	return res.Changed, res.Err
}

// TidyUp runs TidyUpPage on every path. Non-Markdown paths are reported as
// skipped; failures are collected and returned joined after all paths ran.
func (s *Service) TidyUp(ctx context.Context, paths ...string) ([]TidyResult, error) {
	results := make([]TidyResult, 0, len(paths))
	var errs []error

	for _, path := range paths {
		p := NewPage(path)
		if !p.IsMarkdown() {
			results = append(results, TidyResult{Path: path, Err: ErrNotMarkdown})
			continue
		}

		res := s.tidy(ctx, p)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

// CollapsePageSpacing rewrites the page with CollapseListSpacing applied and
// returns true when the file was modified.
func (s *Service) CollapsePageSpacing(ctx context.Context, p Page) (bool, error) {
	original, exists, err := s.store.Read(ctx, p.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read page %s: %w", p.Path, err)
	}
	if !exists {
		return false, &fs.PathError{Op: "read", Path: p.Path, Err: fs.ErrNotExist}
	}

	collapsed := CollapseListSpacing(original)
	if collapsed == original {
		return false, nil
	}

	if err := s.store.Apply(ctx, p.Path, Overwrite(collapsed)); err != nil {
		return false, fmt.Errorf("failed to write page %s: %w", p.Path, err)
	}
	s.logger.Info("spacing collapsed", "path", p.Path)
	return true, nil
}

func (s *Service) tidy(ctx context.Context, p Page) TidyResult {
	res := TidyResult{Path: p.Path}

	original, exists, err := s.store.Read(ctx, p.Path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read page %s: %w", p.Path, err)
		return res
	}
	if !exists {
		res.Err = &fs.PathError{Op: "read", Path: p.Path, Err: fs.ErrNotExist}
		return res
	}

	tidied := StripTagBrackets(original)
	if tidied != original {
		res.Fixes = append(res.Fixes, FixTagBrackets)
	}

	if s.config.RemoveEmptyBullets {
		before := tidied
		tidied = RemoveEmptyBullets(tidied)
		if tidied != before {
			res.Fixes = append(res.Fixes, FixEmptyBullets)
		}
	}

	if tidied == original {
		s.logger.Debug("page unchanged", "path", p.Path)
		return res
	}
	res.Before, res.After = original, tidied

	if err := s.store.Apply(ctx, p.Path, Overwrite(tidied)); err != nil {
		res.Err = fmt.Errorf("failed to write page %s: %w", p.Path, err)
		return res
	}

	res.Changed = true
	s.logger.Info("page tidied", "path", p.Path, "fixes", res.Fixes)
	return res
}
