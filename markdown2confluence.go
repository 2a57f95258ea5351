// Package markdown2confluence converts Markdown into Confluence wiki
// markup text.
//
// The conversion is a pure text-to-text function: goldmark parses the
// source into an AST and a bottom-up fold renders every node kind with a
// fixed markup rule. Headings become "h1." lines, fenced code becomes the
// {code} macro, GFM tables become ||header||/|cell| rows, and nested
// lists are flattened into Confluence's per-level marker runs ("#*" for a
// bullet under a number).
//
// Main API:
//   - Convert(): convert markdown source, optionally configured with
//     functional options.
//
// Example:
//
//	markup := markdown2confluence.Convert(src)
//
//	markup := markdown2confluence.Convert(src,
//		markdown2confluence.WithExtensions("table", "strikethrough"),
//		markdown2confluence.WithFrontMatterStripping(true),
//	)
package markdown2confluence

import (
	"github.com/wstein/markdown2confluence/internal/confluence"
	"github.com/wstein/markdown2confluence/internal/parser"
)

// Convert renders markdown source as Confluence wiki markup.
//
// Conversion is total: malformed or degenerate input produces degenerate
// but valid markup instead of an error. Options select the goldmark
// extensions, inject a RenderConfig and enable front matter stripping;
// with no options the source is parsed with GFM and rendered with the
// default configuration.
func Convert(markdown string, opts ...Option) string {
	options := applyOptions(opts...)

	source := []byte(markdown)
	if options.StripFrontMatter {
		source = stripFrontMatter(source)
	}

	extenders, unknown := parser.Resolve(options.Extensions)
	for _, name := range unknown {
		Logger.Printf("unknown markdown extension %q ignored", name)
	}

	doc := parser.Parse(parser.New(extenders...), source)
	return confluence.NewRenderer(source, options.Config).Render(doc)
}
