package markdown2confluence

import (
	"github.com/wstein/markdown2confluence/internal/parser"
)

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Extensions       []string
	StripFrontMatter bool
	Config           *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithExtensions names the goldmark extensions to enable, replacing the
// default set ("gfm"). Unknown names are logged and skipped.
func WithExtensions(names ...string) Option {
	return func(opts *ConvertOptions) {
		opts.Extensions = names
	}
}

// WithFrontMatterStripping sets whether a leading YAML or TOML front
// matter block is removed before parsing.
func WithFrontMatterStripping(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.StripFrontMatter = enable
	}
}

// WithRenderConfig sets a custom RenderConfig. Unset fields fall back to
// their defaults.
func WithRenderConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Extensions: parser.DefaultExtensions(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
