// Package outline turns flat Markdown into the indented bullet outline
// Logseq expects.
package outline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bullet = "- "
	indent = "  "
)

// Converter renders Markdown as an outline. The zero value is not usable,
// use New.
type Converter struct {
	md goldmark.Markdown
}

// New returns a Converter using plain CommonMark parsing, so tables and other
// extension syntax pass through as paragraph lines.
func New() *Converter {
	return &Converter{md: goldmark.New()}
}

// Convert is a shortcut for New().Convert.
func Convert(markdown string) (string, error) {
	return New().Convert(markdown)
}

// Convert parses markdown and renders it as an outline:
//   - a heading of level N becomes a bullet at depth N-1, keeping its # marks,
//     and everything after it nests one level deeper;
//   - every paragraph line becomes its own bullet;
//   - lists keep their nesting, ordered or not;
//   - thematic breaks render as ---.
func (c *Converter) Convert(markdown string) (string, error) {
	src := []byte(markdown)
	doc := c.md.Parser().Parse(text.NewReader(src))

	r := &renderer{src: src}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if err := r.block(n, r.level); err != nil {
			return "", err
		}
	}
	return r.buf.String(), nil
}

type renderer struct {
	src   []byte
	buf   bytes.Buffer
	level int // depth set by the last heading
}

func (r *renderer) line(depth int, s string) {
	r.buf.WriteString(strings.Repeat(indent, depth))
	r.buf.WriteString(bullet)
	r.buf.WriteString(s)
	r.buf.WriteByte('\n')
}

// raw writes a line without a bullet, aligned with the text of a bullet at depth.
func (r *renderer) raw(depth int, s string) {
	r.buf.WriteString(strings.Repeat(indent, depth+1))
	r.buf.WriteString(s)
	r.buf.WriteByte('\n')
}

func (r *renderer) lines(n ast.Node) []string {
	segs := n.Lines()
	out := make([]string, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		if s := strings.TrimSpace(string(seg.Value(r.src))); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *renderer) block(n ast.Node, depth int) error {
	switch n := n.(type) {
	case *ast.Heading:
		r.line(n.Level-1, strings.Repeat("#", n.Level)+" "+strings.Join(r.lines(n), " "))
		r.level = n.Level

	case *ast.Paragraph, *ast.TextBlock:
		for _, l := range r.lines(n) {
			r.line(depth, l)
		}

	case *ast.List:
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if err := r.listItem(item, depth); err != nil {
				return err
			}
		}

	case *ast.ThematicBreak:
		r.buf.WriteString("---\n")

	case *ast.FencedCodeBlock:
		r.line(depth, "```"+string(n.Language(r.src)))
		r.code(n, depth)
		r.raw(depth, "```")

	case *ast.CodeBlock:
		r.line(depth, "```")
		r.code(n, depth)
		r.raw(depth, "```")

	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			for _, l := range r.lines(c) {
				r.line(depth, "> "+l)
			}
		}

	case *ast.HTMLBlock:
		for _, l := range r.lines(n) {
			r.line(depth, l)
		}

	default:
		if n.Type() != ast.TypeBlock {
			return fmt.Errorf("unexpected %s node at top level", n.Kind())
		}
		for _, l := range r.lines(n) {
			r.line(depth, l)
		}
	}
	return nil
}

func (r *renderer) listItem(item ast.Node, depth int) error {
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		d := depth
		if _, nested := c.(*ast.List); nested {
			d = depth + 1
		}
		if err := r.block(c, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) code(n ast.Node, depth int) {
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		r.raw(depth, strings.TrimRight(string(seg.Value(r.src)), "\r\n"))
	}
}
