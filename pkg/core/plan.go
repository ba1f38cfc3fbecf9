package core

import "fmt"

// OpKind enumerates the file operations a journal mutation can resolve to.
type OpKind int

const (
	// OpSkip means nothing has to be written.
	OpSkip OpKind = iota
	// OpOverwrite truncates the file (creating it if needed) and writes Text.
	OpOverwrite
	// OpAppendWithSeparator appends a line break followed by Text.
	OpAppendWithSeparator
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpSkip:
		return "skip"
	case OpOverwrite:
		return "overwrite"
	case OpAppendWithSeparator:
		return "append"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// FileOp is the outcome of planning a journal mutation.
type FileOp struct {
	Kind OpKind
	Text string
}

// Skip returns the no-op FileOp.
func Skip() FileOp { return FileOp{Kind: OpSkip} }

// Overwrite returns a FileOp replacing the whole file with text.
func Overwrite(text string) FileOp { return FileOp{Kind: OpOverwrite, Text: text} }

// AppendWithSeparator returns a FileOp appending "\n" + text.
func AppendWithSeparator(text string) FileOp {
	return FileOp{Kind: OpAppendWithSeparator, Text: text}
}

// Separator is written between existing and new journal content.
const Separator = "\n"

// PlanJournalMutation decides how content is merged into a journal whose
// current content is current (nil when the file does not exist).
//
// Policy:
//  1. Empty content is a no-op.
//  2. A missing or placeholder-empty file is overwritten with content alone.
//  3. Prepend rewrites the file as content + "\n" + current.
//  4. Append adds "\n" + content after the current content.
func PlanJournalMutation(current *string, content string, mode Mode) FileOp {
	if content == "" {
		return Skip()
	}

	if current == nil || IsPlaceholderEmpty(*current) {
		return Overwrite(content)
	}

	switch mode {
	case Prepend:
		return Overwrite(content + Separator + *current)
	default:
		return AppendWithSeparator(content)
	}
}

// Apply returns the content a file would hold after op is applied to current.
// It mirrors what a Store does on disk and is used to preview mutations.
func (op FileOp) Apply(current string) string {
	switch op.Kind {
	case OpOverwrite:
		return op.Text
	case OpAppendWithSeparator:
		return current + Separator + op.Text
	default:
		return current
	}
}
