package rdf

const (
	DefaultMaxInputBytes = 64 << 20
	DefaultMaxStatements = 1 << 24
	DefaultMaxDepth      = 256
)

// ParseOptions configures ParseTurtle limits.
// Zero values use defaults. Use negative values to disable specific limits.
type ParseOptions struct {
	// MaxInputBytes bounds the size of the document.
	MaxInputBytes int64
	// MaxStatements bounds the number of statements produced, including
	// those generated for collections and blank node property lists.
	MaxStatements int
	// MaxDepth bounds the nesting of [ ] and ( ) terms.
	MaxDepth int
}

// ParseOption configures ParseTurtle.
type ParseOption func(*ParseOptions)

// OptMaxInputBytes sets the document size limit.
func OptMaxInputBytes(n int64) ParseOption {
	return func(opts *ParseOptions) {
		opts.MaxInputBytes = n
	}
}

// OptMaxStatements sets the statement limit.
func OptMaxStatements(n int) ParseOption {
	return func(opts *ParseOptions) {
		opts.MaxStatements = n
	}
}

// OptMaxDepth sets the nesting limit.
func OptMaxDepth(n int) ParseOption {
	return func(opts *ParseOptions) {
		opts.MaxDepth = n
	}
}

// DefaultParseOptions returns safe defaults for parser limits.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		MaxInputBytes: DefaultMaxInputBytes,
		MaxStatements: DefaultMaxStatements,
		MaxDepth:      DefaultMaxDepth,
	}
}

func buildParseOptions(opts []ParseOption) ParseOptions {
	var options ParseOptions
	for _, opt := range opts {
		opt(&options)
	}
	return normalizeParseOptions(options)
}

func normalizeParseOptions(opts ParseOptions) ParseOptions {
	if opts.MaxInputBytes == 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}
	if opts.MaxStatements == 0 {
		opts.MaxStatements = DefaultMaxStatements
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return opts
}
