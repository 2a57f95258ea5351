// Package macro renders Confluence macro parameter lists.
package macro

import "strings"

// Param is a single macro parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered macro parameter list. Serialization preserves the
// given order; parameters with an empty value are skipped entirely and
// contribute no separator.
type Params []Param

// Encode joins every non-empty parameter as key<kvSep>value, separated by
// pairSep.
func (p Params) Encode(pairSep, kvSep string) string {
	var b strings.Builder
	for _, param := range p {
		if param.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(pairSep)
		}
		b.WriteString(param.Key)
		b.WriteString(kvSep)
		b.WriteString(param.Value)
	}
	return b.String()
}

// String serializes with the separators Confluence wiki macros use.
func (p Params) String() string {
	return p.Encode("|", "=")
}
