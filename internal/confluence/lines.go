package confluence

import "strings"

// listLine is one rendered line of a flattened list: its text and its
// marker run, kept apart so enclosing lists can grow the run. A plain
// line carries item content that follows a nested list; it stays outside
// the marker protocol and never gains markers.
type listLine struct {
	markers string
	text    string
	plain   bool
}

// listLines carries list output between nesting levels. Each enclosing
// list prepends exactly one marker character to every line's run, so the
// outermost list's marker ends up first, the way Confluence spells
// nesting depth.
type listLines struct {
	lines []listLine
}

// add appends one line with an empty marker run.
func (ll *listLines) add(text string) {
	ll.lines = append(ll.lines, listLine{text: text})
}

// addPlain appends a continuation line that never receives markers.
func (ll *listLines) addPlain(text string) {
	ll.lines = append(ll.lines, listLine{text: text, plain: true})
}

// extend appends the lines of a nested block in place.
func (ll *listLines) extend(other listLines) {
	ll.lines = append(ll.lines, other.lines...)
}

// prependMarker grows every marked line's run by one leading character.
// Plain lines are skipped.
func (ll *listLines) prependMarker(marker string) {
	for i := range ll.lines {
		if ll.lines[i].plain {
			continue
		}
		ll.lines[i].markers = marker + ll.lines[i].markers
	}
}

func (ll listLines) empty() bool {
	return len(ll.lines) == 0
}

// markup serializes the block: one "<markers> <text>" line per marked
// entry, plain lines as bare text, then the blank line separating the
// list from the next block.
func (ll listLines) markup() string {
	var b strings.Builder
	for _, line := range ll.lines {
		if !line.plain {
			b.WriteString(line.markers)
			b.WriteString(" ")
		}
		b.WriteString(line.text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
