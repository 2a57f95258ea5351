// Package parser builds the goldmark engine that turns markdown source
// into the AST the renderer folds over.
package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// extensionRegistry maps the extension names accepted by the public
// options to goldmark extenders. "gfm" bundles tables, strikethrough,
// task lists and autolinks.
var extensionRegistry = map[string]goldmark.Extender{
	"gfm":             extension.GFM,
	"table":           extension.Table,
	"strikethrough":   extension.Strikethrough,
	"tasklist":        extension.TaskList,
	"linkify":         extension.Linkify,
	"definition-list": extension.DefinitionList,
	"footnote":        extension.Footnote,
	"typographer":     extension.Typographer,
}

// DefaultExtensions returns the extension set used when the caller names
// none.
func DefaultExtensions() []string {
	return []string{"gfm"}
}

// Resolve maps extension names to extenders, preserving order and
// dropping duplicates. Names are matched case-insensitively. Unknown
// names are returned separately instead of failing the conversion.
func Resolve(names []string) ([]goldmark.Extender, []string) {
	var (
		extenders []goldmark.Extender
		unknown   []string
	)
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ext, ok := extensionRegistry[key]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		extenders = append(extenders, ext)
	}
	return extenders, unknown
}

// New constructs a goldmark engine with the given extenders.
func New(extenders ...goldmark.Extender) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Parse parses markdown source into its document node.
func Parse(md goldmark.Markdown, source []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(source))
}
