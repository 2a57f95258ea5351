package confluence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wstein/markdown2confluence/internal/types"
)

// TestHeading_Levels tests the h<level>. prefix for all six levels.
func TestHeading_Levels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		t.Run(fmt.Sprintf("h%d", level), func(t *testing.T) {
			got := heading(level, "Title")
			want := fmt.Sprintf("h%d. Title\n\n", level)
			if got != want {
				t.Errorf("heading(%d, \"Title\") = %q, want %q", level, got, want)
			}
		})
	}
}

// TestHeading_Termination tests that a heading ends with exactly two newlines.
func TestHeading_Termination(t *testing.T) {
	got := heading(3, "x")
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("heading() = %q, want trailing blank line", got)
	}
	if strings.HasSuffix(got, "\n\n\n") {
		t.Errorf("heading() = %q, want exactly two trailing newlines", got)
	}
}

// TestParagraph_Termination tests the paragraph block terminator.
func TestParagraph_Termination(t *testing.T) {
	if got := paragraph("hello"); got != "hello\n\n" {
		t.Errorf("paragraph(\"hello\") = %q, want \"hello\\n\\n\"", got)
	}
}

// TestHorizontalRule tests the ---- rule block.
func TestHorizontalRule(t *testing.T) {
	if got := horizontalRule(); got != "----\n\n" {
		t.Errorf("horizontalRule() = %q, want \"----\\n\\n\"", got)
	}
}

// TestInlineWrappers tests strong, em and strikethrough wrapping.
func TestInlineWrappers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"strong", strong("x"), "*x*"},
		{"em", em("x"), "_x_"},
		{"strikethrough", strikethrough("x"), "-x-"},
		{"strong empty", strong(""), "**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestLink_LabelSelection tests the text, title, bare fallback chain.
func TestLink_LabelSelection(t *testing.T) {
	tests := []struct {
		name  string
		href  string
		title string
		text  string
		want  string
	}{
		{"text label", "https://e.com", "", "docs", "[docs|https://e.com]"},
		{"title fallback", "https://e.com", "Docs", "", "[Docs|https://e.com]"},
		{"text beats title", "https://e.com", "Docs", "here", "[here|https://e.com]"},
		{"bare target", "https://e.com", "", "", "[https://e.com]"},
		{"everything empty", "", "", "", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := link(tt.href, tt.title, tt.text); got != tt.want {
				t.Errorf("link(%q, %q, %q) = %q, want %q", tt.href, tt.title, tt.text, got, tt.want)
			}
		})
	}
}

// TestImage_TargetOnly tests that image markup keeps only the target.
func TestImage_TargetOnly(t *testing.T) {
	if got := image("https://e.com/x.png"); got != "!https://e.com/x.png!" {
		t.Errorf("image() = %q, want \"!https://e.com/x.png!\"", got)
	}
	if got := image(""); got != "!!" {
		t.Errorf("image(\"\") = %q, want \"!!\"", got)
	}
}

// TestBlockquote_Trim tests whitespace trimming inside the quote block.
func TestBlockquote_Trim(t *testing.T) {
	if got := blockquote("  x  "); got != "{quote}\nx\n{quote}\n\n" {
		t.Errorf("blockquote(\"  x  \") = %q, want \"{quote}\\nx\\n{quote}\\n\\n\"", got)
	}
}

// TestCodespan_Escaping tests the monospace escaping table.
func TestCodespan_Escaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"letters digits spaces", "abc DEF 123", "{{abc DEF 123}}"},
		{"tilde", "a~b", "{{a&#126;b}}"},
		{"braces", "{x}", "{{&#123;x&#125;}}"},
		{"ampersand without reference", "a&b", "{{a&#38;b}}"},
		{"existing reference untouched", "a&amp;b", "{{a&amp;b}}"},
		{"reference between specials", "&lt;~&gt;", "{{&lt;&#126;&gt;}}"},
		{"numeric reference untouched", "&#126;", "{{&#126;}}"},
		{"non ascii", "é", "{{&#233;}}"},
		{"newline", "a\nb", "{{a&#10;b}}"},
		{"empty", "", "{{}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codespan(tt.in); got != tt.want {
				t.Errorf("codespan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestCodeBlock_MappedLanguage tests the full macro head for a known alias.
func TestCodeBlock_MappedLanguage(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	got := codeBlock("js", "var x = 1;", cfg)
	want := "{code:title=javascript|language=javascript|borderStyle=solid|theme=RDark|linenumbers=true|collapse=true}\nvar x = 1;\n{code}\n\n"
	if got != want {
		t.Errorf("codeBlock(\"js\") = %q, want %q", got, want)
	}
}

// TestCodeBlock_TagLowercased tests case-insensitive alias resolution.
func TestCodeBlock_TagLowercased(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	if got, want := codeBlock("JS", "x", cfg), codeBlock("js", "x", cfg); got != want {
		t.Errorf("codeBlock(\"JS\") = %q, want %q", got, want)
	}
}

// TestCodeBlock_UnmappedLanguage tests that a miss omits title and language.
func TestCodeBlock_UnmappedLanguage(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	got := codeBlock("zzz", "hi", cfg)
	want := "{code:borderStyle=solid|theme=RDark|linenumbers=true|collapse=true}\nhi\n{code}\n\n"
	if got != want {
		t.Errorf("codeBlock(\"zzz\") = %q, want %q", got, want)
	}
	if strings.Contains(got, "language=") || strings.Contains(got, "title=") {
		t.Errorf("codeBlock(\"zzz\") = %q, should omit title and language", got)
	}
}

// TestCodeBlock_AllParametersOmitted tests the degenerate {code} head.
func TestCodeBlock_AllParametersOmitted(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	cfg.CodeMacro = &types.CodeMacroConfig{}
	got := codeBlock("zzz", "hi", cfg)
	if got != "{code}\nhi\n{code}\n\n" {
		t.Errorf("codeBlock() = %q, want bare {code} head", got)
	}
}

// TestTableCell_Boundaries tests header and body cell prefixes.
func TestTableCell_Boundaries(t *testing.T) {
	if got := tableCell("x", true); got != "||x" {
		t.Errorf("tableCell(header) = %q, want \"||x\"", got)
	}
	if got := tableCell("x", false); got != "|x" {
		t.Errorf("tableCell(body) = %q, want \"|x\"", got)
	}
}

// TestTableRow_ClosesWithOpeningBoundary tests row termination.
func TestTableRow_ClosesWithOpeningBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"header row", "||H1||H2", "||H1||H2||\n"},
		{"body row", "|d1|d2", "|d1|d2|\n"},
		{"empty row", "", "|\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableRow(tt.in); got != tt.want {
				t.Errorf("tableRow(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestTable_Assembly tests that the table block adds only its blank line.
func TestTable_Assembly(t *testing.T) {
	got := table("||H1||H2||\n", "|d1|d2|\n")
	want := "||H1||H2||\n|d1|d2|\n\n"
	if got != want {
		t.Errorf("table() = %q, want %q", got, want)
	}
}

// TestTaskCheckbox_Markers tests the configured checkbox symbols.
func TestTaskCheckbox_Markers(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	if got := taskCheckbox(true, cfg); got != "(/) " {
		t.Errorf("taskCheckbox(true) = %q, want \"(/) \"", got)
	}
	if got := taskCheckbox(false, cfg); got != "( ) " {
		t.Errorf("taskCheckbox(false) = %q, want \"( ) \"", got)
	}
}

// TestInlineHTML_TagMapping tests the simple tag rewrite table.
func TestInlineHTML_TagMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b>", "*"},
		{"</b>", "*"},
		{"<strong>", "*"},
		{"</strong>", "*"},
		{"<i>", "_"},
		{"</em>", "_"},
		{"<s>", "-"},
		{"</del>", "-"},
		{"<u>", "+"},
		{"</ins>", "+"},
		{"<sup>", "^"},
		{"</sup>", "^"},
		{"<sub>", "~"},
		{"<code>", "{{"},
		{"</code>", "}}"},
		{"<tt>", "{{"},
		{"<br>", "\n"},
		{"<br/>", "\n"},
		{"<br />", "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := inlineHTML(tt.in); got != tt.want {
				t.Errorf("inlineHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestInlineHTML_Passthrough tests that unknown fragments survive unchanged.
func TestInlineHTML_Passthrough(t *testing.T) {
	tests := []string{
		`<span class="x">`,
		"<!-- note -->",
		"<unknowntag>",
		"</unknowntag>",
		"<b attr=1>",
		"plain text",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if got := inlineHTML(in); got != in {
				t.Errorf("inlineHTML(%q) = %q, want passthrough", in, got)
			}
		})
	}
}

// TestRules_RepeatedCallsIdentical tests that rules carry no hidden state.
func TestRules_RepeatedCallsIdentical(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	pairs := [][2]string{
		{codespan("a~b"), codespan("a~b")},
		{heading(2, "x"), heading(2, "x")},
		{link("u", "t", ""), link("u", "t", "")},
		{codeBlock("py", "pass", cfg), codeBlock("py", "pass", cfg)},
	}
	for i, p := range pairs {
		if p[0] != p[1] {
			t.Errorf("rule %d: repeated call differs: %q vs %q", i, p[0], p[1])
		}
	}
}
