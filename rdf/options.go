package rdf

import (
	"io"
	"log/slog"
)

// Option configures serialization.
type Option func(*SerializeOptions)

// SerializeOptions configures a Turtle serialization.
type SerializeOptions struct {
	// MinimalPrefixes disables inventing prefixes for namespaces that have no
	// registered label; such IRIs are written in full.
	MinimalPrefixes bool

	// Base is the document IRI. When the empty prefix is bound to the
	// relative DocumentNamespace, IRIs in Base's fragment namespace are
	// abbreviated with the empty prefix.
	Base string

	// BaseFor, when set, returns the base for each encoded graph and
	// overrides Base. An empty result disables base abbreviation.
	BaseFor func(doc Term) string

	// Hints suggests extra prefix bindings for this call only. Hints that
	// conflict with the registry are ignored.
	Hints map[string]string

	// Registry supplies prefix bindings. When nil, the source's registry is
	// used if it has one, otherwise the package default.
	Registry *Registry

	// Logger receives debug output about formatting fallbacks.
	Logger *slog.Logger
}

// OptMinimalPrefixes disables prefix invention.
func OptMinimalPrefixes() Option {
	return func(opts *SerializeOptions) {
		opts.MinimalPrefixes = true
	}
}

// OptFlags applies a legacy flag string where each character is a flag.
// Only 'm' (minimal prefixes) is recognized; other characters are ignored.
func OptFlags(flags string) Option {
	return func(opts *SerializeOptions) {
		parsed := ParseFlags(flags)
		opts.MinimalPrefixes = opts.MinimalPrefixes || parsed.MinimalPrefixes
	}
}

// OptBase sets the document IRI.
func OptBase(base string) Option {
	return func(opts *SerializeOptions) {
		opts.Base = base
	}
}

// OptBaseFor sets a per-graph base, used when one option set serializes
// documents that are stored at different locations.
func OptBaseFor(baseFor func(doc Term) string) Option {
	return func(opts *SerializeOptions) {
		opts.BaseFor = baseFor
	}
}

// OptNamespaceHints adds per-call prefix suggestions.
func OptNamespaceHints(hints map[string]string) Option {
	return func(opts *SerializeOptions) {
		opts.Hints = hints
	}
}

// OptRegistry sets the registry to read prefix bindings from.
func OptRegistry(reg *Registry) Option {
	return func(opts *SerializeOptions) {
		opts.Registry = reg
	}
}

// OptLogger sets the logger used for debug output.
func OptLogger(logger *slog.Logger) Option {
	return func(opts *SerializeOptions) {
		opts.Logger = logger
	}
}

// ParseFlags converts a legacy flag string into options.
func ParseFlags(flags string) SerializeOptions {
	var opts SerializeOptions
	for _, ch := range flags {
		switch ch {
		case 'm':
			opts.MinimalPrefixes = true
		}
	}
	return opts
}

func defaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func buildSerializeOptions(opts []Option) SerializeOptions {
	options := defaultSerializeOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = defaultSerializeOptions().Logger
	}
	return options
}
