package rdf

import (
	"context"
	"iter"
	"mime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// MediaTypeTurtle is the media type produced by Serialize.
const MediaTypeTurtle = "text/turtle"

// maxParallelGraphs bounds SerializeGraphs concurrency.
const maxParallelGraphs = 8

// StatementSource yields the statements stored for a graph. Implementations
// may yield statements from other graphs; the serializer filters them out.
type StatementSource interface {
	Statements(graph Term) iter.Seq[Statement]
}

// namespaceSource is implemented by sources that carry their own prefix
// bindings, such as Store.
type namespaceSource interface {
	Namespaces() *Registry
}

// StatementSlice adapts a slice of statements to StatementSource.
type StatementSlice []Statement

// Statements yields every statement in the slice.
func (s StatementSlice) Statements(Term) iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for _, stmt := range s {
			if !yield(stmt) {
				return
			}
		}
	}
}

// defaultRegistry is used when neither the options nor the source supply a
// registry. It is never modified after initialization.
var defaultRegistry = DefaultRegistry()

func registryOf(src StatementSource) *Registry {
	if ns, ok := src.(namespaceSource); ok {
		if reg := ns.Namespaces(); reg != nil {
			return reg
		}
	}
	return defaultRegistry
}

// Serialize writes the statements of src in graph doc as a Turtle document.
//
// mediaType must name Turtle ("text/turtle" or "application/x-turtle",
// parameters ignored); anything else fails with *UnsupportedFormatError.
// base and hints are shorthands for OptBase and OptNamespaceHints.
// A graph without statements yields a document with only the prefix header.
func Serialize(doc Term, src StatementSource, base, mediaType string, hints map[string]string, opts ...Option) (string, error) {
	if err := checkMediaType(mediaType); err != nil {
		return "", err
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, OptBase(base), OptNamespaceHints(hints))
	all = append(all, opts...)

	var out strings.Builder
	if err := NewTurtleEncoder(&out, all...).Encode(doc, src); err != nil {
		return "", err
	}
	return out.String(), nil
}

// SerializeGraphs serializes several graphs of src concurrently. Results are
// returned in the order of docs. Each document gets its own prefix tracking,
// so invented prefixes never leak between documents. An IRI document is its
// own base unless opts set one with OptBase or OptBaseFor.
func SerializeGraphs(ctx context.Context, docs []Term, src StatementSource, mediaType string, opts ...Option) ([]string, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}
	out := make([]string, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelGraphs)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docOpts := opts
			if iri, ok := doc.(IRI); ok {
				docOpts = append([]Option{OptBase(iri.Value)}, opts...)
			}
			var b strings.Builder
			if err := NewTurtleEncoder(&b, docOpts...).Encode(doc, src); err != nil {
				return err
			}
			out[i] = b.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func checkMediaType(mediaType string) error {
	format, ok := FormatForMediaType(mediaType)
	if !ok || format != FormatTurtle {
		return &UnsupportedFormatError{MediaType: mediaType}
	}
	return nil
}

// parseMediaType returns the lower-cased media type without parameters.
func parseMediaType(value string) string {
	mt, _, err := mime.ParseMediaType(value)
	if err != nil {
		mt, _, _ = strings.Cut(value, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
