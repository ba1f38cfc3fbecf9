package outline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/aretw0/lsd/pkg/outline"
)

// dedent strips the leading newline and the common tab indentation of a raw
// string literal.
func dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, "\t\t")
	}
	return strings.Join(lines, "\n")
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "header hierarchy preserved and whitespace removed",
			in: `
		#  Header 1


		-  Item 1

		-  Item 2

		## Header 2

		- Item 3
		###  Header 3
		-  Item 4
		`,
			want: `
		- # Header 1
		  - Item 1
		  - Item 2
		  - ## Header 2
		    - Item 3
		    - ### Header 3
		      - Item 4
		`,
		},
		{
			name: "links",
			in: `
		#  Header

		-  [Link only](https://example.com)
		-   Text before, then [a link](https://link.com), then text after
		`,
			want: `
		- # Header
		  - [Link only](https://example.com)
		  - Text before, then [a link](https://link.com), then text after
		`,
		},
		{
			name: "flat paragraphs without header",
			in: `
		Some flat paragraph.

		[Link only](https://example.com).
		Text before, then [a link](https://link.com), then text after.
		`,
			want: `
		- Some flat paragraph.
		- [Link only](https://example.com).
		- Text before, then [a link](https://link.com), then text after.
		`,
		},
		{
			name: "deeper header without h1",
			in: `
		## Some sneaky h2 without h1
		Some flat paragraph.
		`,
			want: `
		  - ## Some sneaky h2 without h1
		    - Some flat paragraph.
		`,
		},
		{
			name: "nested list",
			in: `
		# Header

		- Parent
		  - Child 1
		  - Child 2
		`,
			want: `
		- # Header
		  - Parent
		    - Child 1
		    - Child 2
		`,
		},
		{
			name: "thematic break",
			in: `
		First

		***

		Second
		`,
			want: `
		- First
		---
		- Second
		`,
		},
		{
			name: "fenced code",
			in: "```go\nfmt.Println(1)\n```\n",
			want: "- ```go\n  fmt.Println(1)\n  ```\n",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outline.Convert(dedent(tt.in))
			require.NoError(t, err)
			assert.Equal(t, dedent(tt.want), got)
		})
	}
}

func TestConvert_Golden(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "meeting.md"))
	require.NoError(t, err)

	got, err := outline.New().Convert(string(src))
	require.NoError(t, err)
	golden.Assert(t, got, "meeting.golden")
}
