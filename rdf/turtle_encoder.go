package rdf

import (
	"bufio"
	"io"
	"strings"
)

const predicateIndent = "    "

// TurtleEncoder writes the statements of one graph as a Turtle document.
//
// The document starts with prefix declarations for the empty prefix and for
// every other prefix the body uses, followed by one block per subject in
// first-seen order.
type TurtleEncoder struct {
	writer *bufio.Writer
	opts   SerializeOptions
}

// NewTurtleEncoder returns an encoder writing to w.
func NewTurtleEncoder(w io.Writer, opts ...Option) *TurtleEncoder {
	return &TurtleEncoder{writer: bufio.NewWriter(w), opts: buildSerializeOptions(opts)}
}

// Encode writes the statements of src that belong to graph. A graph with no
// statements produces a document holding only the prefix header.
func (e *TurtleEncoder) Encode(graph Term, src StatementSource) error {
	reg := e.opts.Registry
	if reg == nil {
		reg = registryOf(src)
	}
	opts := e.opts
	if opts.BaseFor != nil {
		opts.Base = opts.BaseFor(graph)
	}
	usage := newPrefixUsage(reg, opts)
	subjects := groupBySubject(selectStatements(graph, src))
	usage.scan(subjects)

	if err := e.writeHeader(usage); err != nil {
		return err
	}
	for _, group := range subjects {
		if _, err := e.writer.WriteString(renderSubject(group, usage)); err != nil {
			return err
		}
	}
	e.opts.Logger.Debug("turtle document encoded", "graph", graph, "subjects", len(subjects), "prefixes", usage.used.Len())
	return e.writer.Flush()
}

func (e *TurtleEncoder) writeHeader(usage *prefixUsage) error {
	var header strings.Builder
	header.WriteString("@prefix : <" + usage.headerNS + ">.\n")
	for _, ns := range usage.prefixes() {
		header.WriteString("@prefix " + ns.Prefix + ": <" + ns.IRI + ">.\n")
	}
	header.WriteString("\n")
	_, err := e.writer.WriteString(header.String())
	return err
}

// subjectGroup holds the statements of one subject, with objects grouped
// by predicate in first-seen order.
type subjectGroup struct {
	subject    Term
	predicates []predicateGroup
}

type predicateGroup struct {
	predicate IRI
	objects   []Term
}

func (g subjectGroup) size() int {
	n := 0
	for _, p := range g.predicates {
		n += len(p.objects)
	}
	return n
}

// selectStatements returns the valid statements of src in graph.
func selectStatements(graph Term, src StatementSource) []Statement {
	if graph == nil {
		graph = DefaultGraph{}
	}
	var out []Statement
	for stmt := range src.Statements(graph) {
		if stmt.Valid() && stmt.InGraph(graph) {
			out = append(out, stmt)
		}
	}
	return out
}

// groupBySubject groups statements by subject and predicate, preserving
// first-seen order and dropping duplicate objects.
func groupBySubject(stmts []Statement) []subjectGroup {
	var groups []subjectGroup
	subjectIndex := map[Term]int{}
	type predKey struct {
		subject   int
		predicate string
	}
	predIndex := map[predKey]int{}
	type objKey struct {
		pred   predKey
		object Term
	}
	seen := map[objKey]bool{}

	for _, stmt := range stmts {
		si, ok := subjectIndex[stmt.S]
		if !ok {
			si = len(groups)
			subjectIndex[stmt.S] = si
			groups = append(groups, subjectGroup{subject: stmt.S})
		}
		pk := predKey{subject: si, predicate: stmt.P.Value}
		key := objKey{pred: pk, object: stmt.O}
		if seen[key] {
			continue
		}
		seen[key] = true
		pi, ok := predIndex[pk]
		if !ok {
			pi = len(groups[si].predicates)
			predIndex[pk] = pi
			groups[si].predicates = append(groups[si].predicates, predicateGroup{predicate: stmt.P})
		}
		groups[si].predicates[pi].objects = append(groups[si].predicates[pi].objects, stmt.O)
	}
	return groups
}

// scan formats every term once, predicate then subject then object for each
// statement, so prefixes are declared in the order they are first needed.
func (u *prefixUsage) scan(groups []subjectGroup) {
	u.reserveBlankLabels(groups)
	for _, g := range groups {
		for _, p := range g.predicates {
			for _, o := range p.objects {
				u.iri(p.predicate)
				u.term(g.subject)
				u.term(o)
			}
		}
	}
}

// renderSubject renders one subject block followed by a blank line.
func renderSubject(g subjectGroup, usage *prefixUsage) string {
	var b strings.Builder
	subject := usage.term(g.subject)
	last := ""
	if g.size() == 1 {
		p := g.predicates[0]
		last = usage.term(p.objects[0])
		b.WriteString(subject + " " + usage.iri(p.predicate) + " " + last)
	} else {
		b.WriteString(subject + "\n")
		for i, p := range g.predicates {
			objects := make([]string, len(p.objects))
			for j, o := range p.objects {
				objects[j] = usage.term(o)
			}
			last = objects[len(objects)-1]
			b.WriteString(predicateIndent + usage.iri(p.predicate) + " " + strings.Join(objects, ", "))
			if i < len(g.predicates)-1 {
				b.WriteString(";\n")
			}
		}
	}
	b.WriteString(terminator(last))
	b.WriteString("\n\n")
	return b.String()
}

// terminator returns the statement terminator for a block whose final token
// is last. A space keeps the dot from being read as part of a number or a
// prefixed name.
func terminator(last string) string {
	if strings.HasSuffix(last, ">") || strings.HasSuffix(last, `"`) {
		return "."
	}
	return " ."
}
