// Package core holds the domain of lsd: journals, pages, the pure text
// transforms applied to them and the service that mutates them through a Store.
package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// JournalsDir is the graph sub-directory holding one file per day.
	JournalsDir = "journals"
	// PagesDir is the graph sub-directory holding freeform pages.
	PagesDir = "pages"
	// JournalLayout is the time layout of a journal file name (without extension).
	JournalLayout = "2006_01_02"
	// MarkdownExt is the extension of every file the core writes.
	MarkdownExt = ".md"
)

// Journal identifies the note of one calendar day inside a graph.
// Two journals with the same root and date are interchangeable.
type Journal struct {
	Root string
	Date time.Time
}

// NewJournal builds a Journal for the given date, or for the local current
// date when date is nil.
func NewJournal(root string, date *time.Time) Journal {
	d := time.Now()
	if date != nil {
		d = *date
	}
	return Journal{Root: root, Date: d}
}

// NewJournalFromYMD builds a Journal from calendar components.
// It fails with ErrInvalidDate when the day does not exist (e.g. 31 April)
// instead of letting time.Date normalize it into the next month.
func NewJournalFromYMD(root string, year int, month time.Month, day int) (Journal, error) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return Journal{}, fmt.Errorf("%04d-%02d-%02d: %w", year, int(month), day, ErrInvalidDate)
	}
	return Journal{Root: root, Date: d}, nil
}

// Name returns the file name of the journal, e.g. "2025_01_31.md".
func (j Journal) Name() string {
	return j.Date.Format(JournalLayout) + MarkdownExt
}

// Path derives <root>/journals/<YYYY>_<MM>_<DD>.md.
func (j Journal) Path() string {
	return filepath.Join(j.Root, JournalsDir, j.Name())
}

// Page wraps the path of a freeform note file.
type Page struct {
	Path string
}

// NewPage wraps path as a Page.
func NewPage(path string) Page {
	return Page{Path: path}
}

// IsMarkdown reports whether the page looks like a Markdown file, by extension only.
func (p Page) IsMarkdown() bool {
	return p.Path != "" && strings.EqualFold(filepath.Ext(p.Path), MarkdownExt)
}

// Mode selects where new content goes in a journal.
type Mode int

const (
	// Append places new content after the existing content.
	Append Mode = iota
	// Prepend places new content before the existing content.
	Prepend
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Append:
		return "append"
	case Prepend:
		return "prepend"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "append" or "prepend" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "append", "":
		return Append, nil
	case "prepend":
		return Prepend, nil
	default:
		return Append, fmt.Errorf("%q: %w", s, ErrInvalidMode)
	}
}

// EventType represents the type of change observed in the graph.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a file of the graph.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
