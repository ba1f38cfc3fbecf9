package core_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/aretw0/lsd/pkg/core"
)

func TestCollapseListSpacing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Non-dash line untouched", "    abc   123     def  ", "    abc   123     def  "},
		{"Nested bullets", "\n  - abc  123\n    - def   4  5 ", "\n  - abc 123\n    - def 4 5 "},
		{"Dash without space", "   -This   is   a  test\n   Another  test\n-  Dash  line  here",
			"   -This is a test\n   Another  test\n- Dash line here"},
		{"Spaces right after dash", "    -   This   is   a  test\n   Another  test\n-  Dash  line  here   with   extra  spaces",
			"    - This is a test\n   Another  test\n- Dash line here with extra spaces"},
		{"Trailing linebreak kept", "- Root\n  - Child\n", "- Root\n  - Child\n"},
		{"Trailing linebreak not added", "-  Root", "- Root"},
		{"Tab indentation kept", "\t-  tabbed  item\n", "\t- tabbed item\n"},
		{"Empty", "", ""},
		{"Only linebreak", "\n", "\n"},
		{"Blank lines kept", "- a  b\n\n\n", "- a b\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.CollapseListSpacing(tt.input))
		})
	}
}

func TestStripTagBrackets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Single tag", "#[[tag]]", "#tag"},
		{"Tag with space kept", "#[[my tag]]", "#[[my tag]]"},
		{"Mixed", "- #[[a]] and #[[b c]] and #[[d-e]]", "- #a and #[[b c]] and #d-e"},
		{"Page link untouched", "[[page]] #tag", "[[page]] #tag"},
		{"Empty brackets untouched", "#[[]]", "#[[]]"},
		{"Adjacent tags", "#[[x]]#[[y]]", "#x#y"},
		{"Multiline", "#[[one]]\n#[[two]]\n", "#one\n#two\n"},
		{"Tag with hash kept", "#[[C#]]", "#[[C#]]"},
		{"Tag with bracket kept", "#[[a]b]]", "#[[a]b]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.StripTagBrackets(tt.input))
		})
	}
}

func TestIsPlaceholderEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   \n\t\n", true},
		{"-", true},
		{"- ", true},
		{"-\n", true},
		{"-   \n\n  ", true},
		{"- x", false},
		{"-x", false},
		{"--", false},
		{"abc", false},
		{"- \n- ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, core.IsPlaceholderEmpty(tt.input), "input %q", tt.input)
		})
	}
}

func TestRemoveEmptyBullets(t *testing.T) {
	assert.Equal(t, "- a\n  - b\n", core.RemoveEmptyBullets("- a\n  -\n  - b\n-\n"))
	assert.Equal(t, "-\n- a", core.RemoveEmptyBullets("-\n- a"), "first line is kept")
	assert.Equal(t, "no bullets", core.RemoveEmptyBullets("no bullets"))
	assert.Equal(t, "- a\n-\n  - child\n", core.RemoveEmptyBullets("- a\n-\n  - child\n"), "a dash with children stays")
	assert.Equal(t, "- a\n-\n\n\t- child", core.RemoveEmptyBullets("- a\n-\n\n\t- child"), "blank lines are skipped when looking for children")
	assert.Equal(t, "- a\n  - b\n- c", core.RemoveEmptyBullets("- a\n  - b\n  -\n- c"), "a dash followed by a shallower line goes")
}

// outlineText draws Markdown-ish text made of bullets, tags and spaces.
func outlineText() *rapid.Generator[string] {
	line := rapid.StringMatching(`[ \t]{0,3}(- ?)?[a-z #\[\]]{0,16}`)
	return rapid.Custom(func(t *rapid.T) string {
		lines := rapid.SliceOfN(line, 0, 8).Draw(t, "lines")
		text := strings.Join(lines, "\n")
		if rapid.Bool().Draw(t, "trailing") {
			text += "\n"
		}
		return text
	})
}

func anyText() *rapid.Generator[string] {
	return rapid.OneOf(outlineText(), rapid.String())
}

func TestCollapseListSpacing_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := anyText().Draw(t, "input")
		once := core.CollapseListSpacing(input)

		// Property: idempotence
		if twice := core.CollapseListSpacing(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}

		// Property: trailing linebreak preserved
		if strings.HasSuffix(input, "\n") != strings.HasSuffix(once, "\n") {
			t.Fatalf("trailing linebreak changed: %q -> %q", input, once)
		}

		// Property: non-dash lines are byte-identical
		in := strings.Split(input, "\n")
		out := strings.Split(once, "\n")
		if len(in) != len(out) {
			t.Fatalf("line count changed: %d -> %d", len(in), len(out))
		}
		for i := range in {
			if !strings.HasPrefix(strings.TrimLeftFunc(in[i], unicode.IsSpace), "-") && in[i] != out[i] {
				t.Fatalf("non-dash line %d changed: %q -> %q", i, in[i], out[i])
			}
		}
	})
}

func TestStripTagBrackets_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := anyText().Draw(t, "input")
		once := core.StripTagBrackets(input)

		// Property: idempotence
		if twice := core.StripTagBrackets(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}

func TestStripTagBrackets_SpacedTagsKept_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z0-9-]{1,8}`)
		spaced := "#[[" + word.Draw(t, "left") + " " + word.Draw(t, "right") + "]]"
		plain := word.Draw(t, "plain")
		input := spaced + " #[[" + plain + "]]"

		// Property: the spaced tag survives, the plain one loses its wrapper only
		assert.Equal(t, spaced+" #"+plain, core.StripTagBrackets(input))
	})
}
