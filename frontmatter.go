package markdown2confluence

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// stripFrontMatter removes a leading YAML or TOML front matter block from
// the source. Malformed front matter is logged and the source returned
// unchanged; conversion never fails over metadata.
func stripFrontMatter(source []byte) []byte {
	var meta map[string]interface{}
	rest, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		Logger.Printf("front matter ignored: %v", err)
		return source
	}
	return rest
}
