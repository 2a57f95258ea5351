package markdown2confluence

import (
	"github.com/wstein/markdown2confluence/internal/types"
)

// Exported type aliases
type RenderConfig = types.RenderConfig
type CodeMacroConfig = types.CodeMacroConfig

// DefaultConfig returns a fresh default render configuration. Every call
// returns a new value, so callers may customize the result without
// affecting other conversions.
func DefaultConfig() *RenderConfig {
	return types.DefaultRenderConfig()
}

// DefaultLanguages returns the built-in code fence language alias table.
func DefaultLanguages() map[string]string {
	return types.DefaultLanguages()
}
