package core

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	multipleSpaces = regexp.MustCompile(` {2,}`)

	// A tag token cannot hold whitespace, brackets or another hash, so a
	// rewritten tag can never be matched again.
	bracketTag = regexp.MustCompile(`#\[\[([^\s\[\]#]+?)\]\]`)
)

// CollapseListSpacing collapses runs of two or more spaces into one on lines
// that begin with a dash, keeping the indentation before the dash as is.
// Other lines are left untouched. A trailing line break is preserved.
func CollapseListSpacing(text string) string {
	endsWithLinebreak := strings.HasSuffix(text, "\n")
	body := strings.TrimSuffix(text, "\n")

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "-") {
			continue
		}
		dash := strings.IndexByte(line, '-')
		lines[i] = line[:dash] + multipleSpaces.ReplaceAllString(line[dash:], " ")
	}

	result := strings.Join(lines, "\n")
	if endsWithLinebreak {
		result += "\n"
	}
	return result
}

// StripTagBrackets rewrites #[[tag]] as #tag when the tag has no whitespace.
func StripTagBrackets(text string) string {
	return bracketTag.ReplaceAllString(text, "#$1")
}

// IsPlaceholderEmpty reports whether text is logically empty: nothing but
// whitespace, optionally behind a single bullet dash.
// Logseq writes "-" into pages it creates empty.
func IsPlaceholderEmpty(text string) bool {
	rest := strings.TrimRightFunc(text, unicode.IsSpace)
	if after, found := strings.CutPrefix(rest, "-"); found {
		rest = strings.TrimLeftFunc(after, unicode.IsSpace)
	}
	return rest == ""
}

// RemoveEmptyBullets drops lines holding only a dash (and indentation).
// The first line is always kept, and so is a dash that still has children,
// i.e. when the next non-blank line is indented deeper.
func RemoveEmptyBullets(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 1, len(lines))
	kept[0] = lines[0]
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "-" && !hasChildren(lines[i+1:], indentOf(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func hasChildren(rest []string, indent int) bool {
	for _, line := range rest {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return indentOf(line) > indent
	}
	return false
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
