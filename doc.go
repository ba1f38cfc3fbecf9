// Package lsd is the Composition Root for lsd, a toolkit that heals the
// Markdown files of a Logseq graph.
//
// It connects the core business logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) using the Hexagonal Architecture pattern.
//
// Features:
//
//   - **Text normalization**: CollapseListSpacing and StripTagBrackets are pure
//     and idempotent.
//   - **Journal mutation**: MutateJournal appends or prepends content to the
//     journal of a date, treating a file holding a lone "-" as empty.
//   - **Page tidy-up**: TidyUpPage removes unnecessary tag brackets and only
//     rewrites files that changed.
//   - **Safe writes**: overwrites go through a temp file and a rename, appends
//     are synced before returning.
//
// Usage:
//
//	root := "/home/me/logseq"
//	svc, err := lsd.New(root,
//		lsd.WithCreateDirs(true),
//		lsd.WithLogger(logger),
//	)
//
//	// Append to today's journal
//	err = svc.MutateJournal(ctx, core.NewJournal(root, nil), "- TODO call Bob", lsd.Append)
package lsd
