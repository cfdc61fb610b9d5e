package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/geoknoesis/rdf-turtle/internal/config"
	"github.com/geoknoesis/rdf-turtle/rdf"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

const stdio = "-"

// formatter runs one formatting pass over a set of input files.
type formatter struct {
	cfg    config.Config
	reg    *rdf.Registry
	output string
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

func newFormatter(cfg config.Config, output string, logger *slog.Logger) (*formatter, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return &formatter{
		cfg:    cfg,
		reg:    reg,
		output: output,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		logger: logger,
	}, nil
}

// document is one input file and where its formatted form goes.
type document struct {
	input    string
	graph    rdf.IRI
	output   string
	base     string // IRI of output; relative IRIs in the result resolve against it
	prefixes []rdf.Namespace
}

func (f *formatter) plan(inputs []string) ([]*document, error) {
	if len(inputs) == 0 {
		return nil, errors.New("no input files")
	}
	if len(inputs) > 1 && f.output != "" {
		return nil, errors.New("-o requires a single input")
	}
	if len(inputs) > 1 && f.cfg.Base != "" {
		return nil, errors.New("-base requires a single input")
	}
	docs := make([]*document, 0, len(inputs))
	seen := map[string]bool{}
	for _, input := range inputs {
		graph := f.cfg.Base
		if graph == "" {
			var err error
			if graph, err = documentIRI(input); err != nil {
				return nil, err
			}
		}
		if seen[graph] {
			return nil, fmt.Errorf("%s: input listed twice", input)
		}
		seen[graph] = true

		output := f.output
		switch {
		case output != "":
		case len(inputs) == 1 || input == stdio:
			output = stdio
		default:
			output = outputPath(input)
		}
		base, err := f.outputBase(output)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &document{input: input, graph: rdf.IRI{Value: graph}, output: output, base: base})
	}
	return docs, nil
}

// run parses every input into one store, serializes each document in
// parallel and writes the results.
func (f *formatter) run(ctx context.Context, inputs []string) error {
	docs, err := f.plan(inputs)
	if err != nil {
		return err
	}

	store := rdf.NewStoreWithRegistry(f.reg.Clone())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.jobs())
	for _, doc := range docs {
		g.Go(func() error {
			return f.parse(gctx, store, doc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	f.registerDocumentPrefixes(store, docs)

	graphs := make([]rdf.Term, len(docs))
	bases := make(map[rdf.Term]string, len(docs))
	for i, doc := range docs {
		graphs[i] = doc.graph
		bases[doc.graph] = doc.base
	}
	opts := append(f.cfg.SerializeOptions(),
		rdf.OptLogger(f.logger),
		rdf.OptBaseFor(func(graph rdf.Term) string { return bases[graph] }),
	)
	results, err := rdf.SerializeGraphs(ctx, graphs, store, rdf.MediaTypeTurtle, opts...)
	if err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(f.jobs())
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := f.write(doc.output, results[i]); err != nil {
				return fmt.Errorf("%s: %w", doc.output, err)
			}
			f.logger.InfoContext(gctx, "Formatted", "input", doc.input, "output", doc.output)
			return nil
		})
	}
	return g.Wait()
}

// outputBase returns the IRI the written document is read back from. Standard
// output has none unless -base names it.
func (f *formatter) outputBase(output string) (string, error) {
	if output == stdio {
		return f.cfg.Base, nil
	}
	return documentIRI(output)
}

func (f *formatter) parse(ctx context.Context, store *rdf.Store, doc *document) error {
	data, err := f.read(doc.input)
	if err != nil {
		return fmt.Errorf("%s: %w", doc.input, err)
	}
	if format, ok := rdf.DetectFormat(data); ok && format != rdf.FormatTurtle {
		return fmt.Errorf("%s: %w", doc.input, &rdf.UnsupportedFormatError{MediaType: format.MediaType()})
	}
	parsed, err := rdf.ParseTurtle(ctx, bytes.NewReader(data), doc.graph.Value, doc.graph, f.cfg.ParseOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", doc.input, err)
	}
	if err := store.AddAll(parsed.Statements); err != nil {
		return fmt.Errorf("%s: %w", doc.input, err)
	}
	doc.prefixes = parsed.Prefixes
	f.logger.DebugContext(ctx, "Parsed", "input", doc.input, "graph", doc.graph.Value, "statements", len(parsed.Statements), "prefixes", len(parsed.Prefixes))
	return nil
}

// registerDocumentPrefixes adds the prefixes declared by the inputs, in
// input order. Configured and built-in bindings win over document ones.
func (f *formatter) registerDocumentPrefixes(store *rdf.Store, docs []*document) {
	for _, doc := range docs {
		for _, ns := range doc.prefixes {
			if ns.Prefix == "" {
				continue
			}
			if err := store.SetPrefix(ns.Prefix, ns.IRI); err != nil {
				f.logger.Debug("Document prefix ignored", "input", doc.input, "prefix", ns.Prefix, "iri", ns.IRI, "err", err)
			}
		}
	}
}

func (f *formatter) jobs() int {
	if f.cfg.Jobs > 0 {
		return f.cfg.Jobs
	}
	return runtime.NumCPU()
}

// read returns the decompressed contents of path, or of stdin for "-".
func (f *formatter) read(path string) ([]byte, error) {
	var r io.Reader
	if path == stdio {
		r = f.stdin
	} else {
		file, err := os.Open(path) //nolint:gosec // User-specified input path
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()
		r = file
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	// Bound decompressed input; the reader reports the limit itself.
	if limit := f.cfg.ParseLimit(); limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	return io.ReadAll(r)
}

// write stores content at path, compressing by extension. Files are
// replaced atomically.
func (f *formatter) write(path, content string) error {
	if path == stdio {
		_, err := io.WriteString(f.stdout, content)
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ttlfmt-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := compress(tmp, path, content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func compress(w io.Writer, path, content string) error {
	var zw io.WriteCloser
	switch {
	case strings.HasSuffix(path, ".gz"):
		zw = gzip.NewWriter(w)
	case strings.HasSuffix(path, ".zst"):
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		zw = enc
	default:
		_, err := io.WriteString(w, content)
		return err
	}
	if _, err := io.WriteString(zw, content); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// documentIRI names the document read from path.
func documentIRI(path string) (string, error) {
	if path == stdio {
		return "file:///dev/stdin", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// outputPath returns the default output for input: the same directory and
// compression, with ".fmt.ttl" replacing the Turtle extension.
func outputPath(input string) string {
	name, suffix := input, ""
	for _, ext := range []string{".gz", ".zst"} {
		if strings.HasSuffix(name, ext) {
			name, suffix = strings.TrimSuffix(name, ext), ext
			break
		}
	}
	for _, ext := range []string{".ttl", ".turtle", ".nt"} {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return name + ".fmt.ttl" + suffix
}
