package confluence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wstein/markdown2confluence/internal/macro"
	"github.com/wstein/markdown2confluence/internal/types"
)

// Markup rules, one per node kind. Each rule is a pure function from the
// already rendered child text plus the node's own attributes to a markup
// fragment; renderer.go decides which rule runs for which AST node.

// paragraph terminates a run of inline text as its own block.
func paragraph(t string) string {
	return t + "\n\n"
}

// heading renders "h<level>. <text>" for levels 1 through 6.
func heading(level int, t string) string {
	return fmt.Sprintf("h%d. %s\n\n", level, t)
}

func horizontalRule() string {
	return "----\n\n"
}

func lineBreak() string {
	return "\n"
}

func strong(t string) string {
	return "*" + t + "*"
}

func em(t string) string {
	return "_" + t + "_"
}

func strikethrough(t string) string {
	return "-" + t + "-"
}

// image keeps only the target; wiki markup cannot carry alt text or a
// title.
func image(href string) string {
	return "!" + href + "!"
}

// link labels the target with the rendered text, falling back to the
// title. Without either the target stands alone as [href].
func link(href, title, text string) string {
	label := text
	if label == "" {
		label = title
	}
	if label == "" {
		return "[" + href + "]"
	}
	return "[" + label + "|" + href + "]"
}

// blockquote wraps trimmed content in a quote block.
func blockquote(t string) string {
	return "{quote}\n" + strings.TrimSpace(t) + "\n{quote}\n\n"
}

// charRefPattern matches an HTML character reference already present in
// the text.
var charRefPattern = regexp.MustCompile(`&[^;]+;`)

// codespan wraps raw text in {{...}} monospace markup. Every character
// that is not an ASCII letter, digit or space becomes a numeric character
// reference so Confluence cannot misread markup characters (notably ~)
// inside the span. Existing references pass through untouched rather
// than being escaped a second time.
func codespan(t string) string {
	var b strings.Builder
	b.WriteString("{{")
	last := 0
	for _, m := range charRefPattern.FindAllStringIndex(t, -1) {
		escapeInto(&b, t[last:m[0]])
		b.WriteString(t[m[0]:m[1]])
		last = m[1]
	}
	escapeInto(&b, t[last:])
	b.WriteString("}}")
	return b.String()
}

func escapeInto(b *strings.Builder, s string) {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			fmt.Fprintf(b, "&#%d;", r)
		}
	}
}

// codeBlock renders the Confluence code macro around raw code text. The
// fence tag is lower-cased and resolved through the language table; an
// unmapped tag omits the title and language parameters.
func codeBlock(lang, code string, cfg *types.RenderConfig) string {
	resolved := cfg.Languages[strings.ToLower(lang)]
	head := "{code}"
	if s := codeMacroParams(resolved, cfg.CodeMacro).String(); s != "" {
		head = "{code:" + s + "}"
	}
	return head + "\n" + code + "\n{code}\n\n"
}

// codeMacroParams builds the ordered macro parameter list. The serializer
// drops empty values, so omitted parameters leave no stray separator.
func codeMacroParams(lang string, cfg *types.CodeMacroConfig) macro.Params {
	return macro.Params{
		{Key: "title", Value: lang},
		{Key: "language", Value: lang},
		{Key: "borderStyle", Value: cfg.BorderStyle},
		{Key: "theme", Value: cfg.Theme},
		{Key: "linenumbers", Value: flag(cfg.LineNumbers)},
		{Key: "collapse", Value: flag(cfg.Collapse)},
	}
}

func flag(v bool) string {
	if v {
		return "true"
	}
	return ""
}

// tableCell opens a cell with its boundary, doubled for header cells. The
// closing boundary belongs to the row.
func tableCell(t string, header bool) string {
	if header {
		return "||" + t
	}
	return "|" + t
}

// tableRow closes a row of concatenated cells with the same boundary
// style the first cell opened with and terminates the line. An empty row
// closes with the plain boundary.
func tableRow(t string) string {
	boundary := "|"
	if strings.HasPrefix(t, "||") {
		boundary = "||"
	}
	return t + boundary + "\n"
}

// table joins the header row with the body rows. Rows self-terminate, so
// the block only adds its trailing blank line.
func table(header, body string) string {
	return header + body + "\n"
}

// taskCheckbox renders a GFM task list marker with the configured
// symbols.
func taskCheckbox(checked bool, cfg *types.RenderConfig) string {
	if checked {
		return cfg.TaskDone + " "
	}
	return cfg.TaskOpen + " "
}

// tagMarkup is the wiki markup pair a simple HTML tag maps to.
type tagMarkup struct {
	open  string
	close string
}

var htmlTagMarkup = map[string]tagMarkup{
	"b":      {"*", "*"},
	"strong": {"*", "*"},
	"i":      {"_", "_"},
	"em":     {"_", "_"},
	"s":      {"-", "-"},
	"strike": {"-", "-"},
	"del":    {"-", "-"},
	"u":      {"+", "+"},
	"ins":    {"+", "+"},
	"sup":    {"^", "^"},
	"sub":    {"~", "~"},
	"code":   {"{{", "}}"},
	"tt":     {"{{", "}}"},
}

// simpleTagPattern matches a lone tag without attributes, e.g. <sup>,
// </sup> or <br/>.
var simpleTagPattern = regexp.MustCompile(`^<(/?)([a-zA-Z][a-zA-Z0-9]*)\s*/?>$`)

// inlineHTML rewrites simple inline tags to their wiki markup equivalent.
// Anything else (attributes, comments, unknown tags) passes through
// unchanged.
func inlineHTML(fragment string) string {
	m := simpleTagPattern.FindStringSubmatch(strings.TrimSpace(fragment))
	if m == nil {
		return fragment
	}
	name := strings.ToLower(m[2])
	if name == "br" {
		return lineBreak()
	}
	markup, ok := htmlTagMarkup[name]
	if !ok {
		return fragment
	}
	if m[1] == "/" {
		return markup.close
	}
	return markup.open
}
