// Package confluence folds a parsed markdown document into Confluence
// wiki markup.
package confluence

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/wstein/markdown2confluence/internal/types"
)

// Renderer renders one parsed document. Rendering is a pure bottom-up
// pass: a node's markup depends only on its attributes and its children's
// already rendered text, so a Renderer holds nothing but its inputs.
type Renderer struct {
	source []byte
	cfg    *types.RenderConfig
}

// NewRenderer returns a renderer over the given source. A nil or
// partially filled config is completed with defaults.
func NewRenderer(source []byte, cfg *types.RenderConfig) *Renderer {
	return &Renderer{source: source, cfg: cfg.Normalized()}
}

// Render concatenates the markup of the document's root blocks.
func (r *Renderer) Render(doc ast.Node) string {
	var b strings.Builder
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.renderBlock(c))
	}
	return b.String()
}

func (r *Renderer) renderBlock(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Paragraph:
		return paragraph(r.renderInlines(n))

	case *ast.TextBlock:
		return paragraph(r.renderInlines(n))

	case *ast.Heading:
		return heading(n.Level, r.renderInlines(n))

	case *ast.Blockquote:
		return blockquote(r.renderBlocks(n))

	case *ast.List:
		return r.renderList(n).markup()

	case *ast.FencedCodeBlock:
		return codeBlock(string(n.Language(r.source)), r.blockText(n), r.cfg)

	case *ast.CodeBlock:
		// Indented code block, never carries a fence tag.
		return codeBlock("", r.blockText(n), r.cfg)

	case *ast.ThematicBreak:
		return horizontalRule()

	case *east.Table:
		return r.renderTable(n)

	case *ast.HTMLBlock:
		return r.renderHTMLBlock(n)

	default:
		// Blocks without a rule of their own (definition lists,
		// footnote containers) degrade to their children's markup.
		return r.renderChildren(n)
	}
}

func (r *Renderer) renderInline(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Text:
		t := string(n.Segment.Value(r.source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			t += lineBreak()
		}
		return t

	case *ast.String:
		return string(n.Value)

	case *ast.CodeSpan:
		return codespan(r.codeSpanText(n))

	case *ast.Emphasis:
		if n.Level == 2 {
			return strong(r.renderInlines(n))
		}
		return em(r.renderInlines(n))

	case *east.Strikethrough:
		return strikethrough(r.renderInlines(n))

	case *ast.Link:
		return link(string(n.Destination), string(n.Title), r.renderInlines(n))

	case *ast.Image:
		// Alt text children are dropped, only the target survives.
		return image(string(n.Destination))

	case *ast.AutoLink:
		return link(r.autoLinkURL(n), "", "")

	case *east.TaskCheckBox:
		return taskCheckbox(n.IsChecked, r.cfg)

	case *ast.RawHTML:
		return inlineHTML(string(n.Segments.Value(r.source)))

	default:
		return r.renderInlines(n)
	}
}

// renderInlines concatenates the inline markup of a node's children.
func (r *Renderer) renderInlines(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.renderInline(c))
	}
	return b.String()
}

// renderBlocks concatenates the block markup of a node's children.
func (r *Renderer) renderBlocks(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.renderBlock(c))
	}
	return b.String()
}

// renderChildren dispatches every child by its own level. Used for node
// kinds the rule table does not name.
func (r *Renderer) renderChildren(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == ast.TypeInline {
			b.WriteString(r.renderInline(c))
		} else {
			b.WriteString(r.renderBlock(c))
		}
	}
	return b.String()
}

// --- Lists ---

// renderList flattens a list subtree into marked lines, prepending this
// level's marker character to every line produced below it.
func (r *Renderer) renderList(list *ast.List) listLines {
	marker := "*"
	if list.IsOrdered() {
		// Start offsets are not expressible in # markers and are
		// ignored.
		marker = "#"
	}
	var out listLines
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		out.extend(r.renderListItem(item))
	}
	out.prependMarker(marker)
	return out
}

// renderListItem renders one item. Content before the first nested list
// becomes the item's own line; an item whose content renders empty still
// yields that line with empty text, ahead of any nested lines. Nested
// lists contribute their already marked lines in document order, and
// content following a nested list becomes a plain continuation line
// rather than a new marker line.
func (r *Renderer) renderListItem(item ast.Node) listLines {
	var (
		out   listLines
		parts []string
	)
	flush := func() {
		if parts == nil {
			return
		}
		if out.empty() {
			out.add(strings.Join(parts, " "))
		} else {
			out.addPlain(strings.Join(parts, " "))
		}
		parts = nil
	}
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if nested, ok := c.(*ast.List); ok {
			flush()
			if out.empty() {
				out.add("")
			}
			out.extend(r.renderList(nested))
			continue
		}
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			parts = append(parts, r.renderInlines(c))
		default:
			parts = append(parts, strings.TrimSpace(r.renderBlock(c)))
		}
	}
	flush()
	if out.empty() {
		out.add("")
	}
	return out
}

// --- Tables ---

func (r *Renderer) renderTable(t *east.Table) string {
	var header, body strings.Builder
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader:
			header.WriteString(tableRow(r.renderTableCells(row, true)))
		case *east.TableRow:
			body.WriteString(tableRow(r.renderTableCells(row, false)))
		}
	}
	return table(header.String(), body.String())
}

// renderTableCells concatenates a row's cells, each opened with its
// boundary. Line breaks inside a cell would split the row, so they become
// spaces.
func (r *Renderer) renderTableCells(row ast.Node, header bool) string {
	var b strings.Builder
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		t := strings.ReplaceAll(r.renderInlines(cell), "\n", " ")
		b.WriteString(tableCell(t, header))
	}
	return b.String()
}

// --- Raw source helpers ---

// blockText joins the raw source lines of a leaf block, without the final
// line's newline.
func (r *Renderer) blockText(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(r.source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderHTMLBlock passes block HTML through unchanged.
func (r *Renderer) renderHTMLBlock(n *ast.HTMLBlock) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(r.source))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(r.source))
	}
	return strings.TrimRight(b.String(), "\n") + "\n\n"
}

func (r *Renderer) autoLinkURL(n *ast.AutoLink) string {
	url := string(n.URL(r.source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
		url = "mailto:" + url
	}
	return url
}

func (r *Renderer) codeSpanText(n *ast.CodeSpan) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(r.source))
		}
	}
	return b.String()
}
