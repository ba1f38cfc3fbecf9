package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// unifiedDiff returns the unified diff turning before into after.
func unifiedDiff(path, before, after string) string {
	name := filepath.Base(path)
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified("a/"+name, "b/"+name, before, edits))
}

// printDiff writes diff with added and removed lines coloured.
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			io.WriteString(w, pathStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "+"):
			io.WriteString(w, successStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "-"):
			io.WriteString(w, errorStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "@@"):
			io.WriteString(w, dimStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		default:
			io.WriteString(w, line)
		}
	}
}
