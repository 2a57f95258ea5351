package types

// CodeMacroConfig holds the fixed parameters emitted on every Confluence
// code macro. An empty string or false means the parameter is omitted
// from the macro head entirely.
type CodeMacroConfig struct {
	BorderStyle string
	Theme       string
	LineNumbers bool
	Collapse    bool
}

// DefaultCodeMacroConfig returns the default code macro parameters.
func DefaultCodeMacroConfig() *CodeMacroConfig {
	return &CodeMacroConfig{
		BorderStyle: "solid",
		Theme:       "RDark",
		LineNumbers: true,
		Collapse:    true,
	}
}

const (
	defaultTaskDone = "(/)"
	defaultTaskOpen = "( )"
)

// RenderConfig holds the rendering configuration. It is read-only during
// rendering; every conversion receives it by injection.
type RenderConfig struct {
	// CodeMacro supplies the fixed code macro parameters.
	CodeMacro *CodeMacroConfig
	// Languages maps lower-cased code fence aliases to canonical
	// Confluence language identifiers. Lookups probe with the
	// lower-cased fence tag; a miss omits the language parameter.
	Languages map[string]string
	// TaskDone and TaskOpen mark GFM task list checkboxes.
	TaskDone string
	TaskOpen string
}

// DefaultRenderConfig returns a fresh default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		CodeMacro: DefaultCodeMacroConfig(),
		Languages: DefaultLanguages(),
		TaskDone:  defaultTaskDone,
		TaskOpen:  defaultTaskOpen,
	}
}

// Normalized returns a copy with unset fields replaced by defaults. A nil
// receiver yields the full default configuration, so callers can pass a
// partially constructed config or none at all.
func (c *RenderConfig) Normalized() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	out := *c
	if out.CodeMacro == nil {
		out.CodeMacro = DefaultCodeMacroConfig()
	}
	if out.Languages == nil {
		out.Languages = DefaultLanguages()
	}
	if out.TaskDone == "" {
		out.TaskDone = defaultTaskDone
	}
	if out.TaskOpen == "" {
		out.TaskOpen = defaultTaskOpen
	}
	return &out
}

// DefaultLanguages returns the built-in language alias table for the code
// macro: common fence tags mapped to the identifiers Confluence's code
// macro highlights. Unlisted tags fall back to no language parameter.
func DefaultLanguages() map[string]string {
	return map[string]string{
		"actionscript3": "actionscript3",
		"bash":          "bash",
		"sh":            "bash",
		"shell":         "bash",
		"zsh":           "bash",
		"csharp":        "csharp",
		"cs":            "csharp",
		"c#":            "csharp",
		"coldfusion":    "coldfusion",
		"cpp":           "cpp",
		"c++":           "cpp",
		"c":             "cpp",
		"css":           "css",
		"delphi":        "delphi",
		"pascal":        "delphi",
		"diff":          "diff",
		"patch":         "diff",
		"erlang":        "erlang",
		"groovy":        "groovy",
		"html":          "html",
		"htm":           "html",
		"java":          "java",
		"javafx":        "javafx",
		"javascript":    "javascript",
		"js":            "javascript",
		"jsx":           "javascript",
		"json":          "javascript",
		"node":          "javascript",
		"none":          "none",
		"plaintext":     "none",
		"text":          "none",
		"perl":          "perl",
		"pl":            "perl",
		"php":           "php",
		"powershell":    "powershell",
		"ps1":           "powershell",
		"python":        "python",
		"py":            "python",
		"ruby":          "ruby",
		"rb":            "ruby",
		"scala":         "scala",
		"sql":           "sql",
		"mysql":         "sql",
		"postgresql":    "sql",
		"vb":            "vb",
		"visualbasic":   "vb",
		"xml":           "xml",
		"xhtml":         "xml",
		"xslt":          "xml",
		"yaml":          "yaml",
		"yml":           "yaml",
	}
}
