package rdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vocabulary IRIs the serializer gives special treatment.
const (
	rdfNS   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS   = "http://www.w3.org/2001/XMLSchema#"
	rdfType = rdfNS + "type"

	XSDString     = xsdNS + "string"
	XSDBoolean    = xsdNS + "boolean"
	XSDInteger    = xsdNS + "integer"
	XSDDecimal    = xsdNS + "decimal"
	XSDDouble     = xsdNS + "double"
	RDFLangString = rdfNS + "langString"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
	// TermDefaultGraph represents the default graph marker.
	TermDefaultGraph
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank"
	case TermLiteral:
		return "literal"
	case TermDefaultGraph:
		return "default-graph"
	default:
		return "unknown"
	}
}

// Term is a value that can appear in RDF statements.
//
// The set of terms is closed: IRI, BlankNode, Literal and DefaultGraph are the
// only implementations.
type Term interface {
	Kind() TermKind
	String() string
	isTerm()
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// NewIRI returns an IRI term for value.
func NewIRI(value string) IRI { return IRI{Value: value} }

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

func (IRI) isTerm() {}

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

func (BlankNode) isTerm() {}

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any. A language tag takes precedence over Datatype.
	Lang string
}

// NewLiteral returns a plain string literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral returns a language-tagged string literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral returns a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewBooleanLiteral returns an xsd:boolean literal.
func NewBooleanLiteral(v bool) Literal {
	return Literal{Lexical: strconv.FormatBool(v), Datatype: IRI{Value: XSDBoolean}}
}

// NewIntegerLiteral returns an xsd:integer literal.
func NewIntegerLiteral(v int64) Literal {
	return Literal{Lexical: strconv.FormatInt(v, 10), Datatype: IRI{Value: XSDInteger}}
}

// NewLiteralFromNumber classifies n as xsd:integer when it has no fractional
// part and as xsd:decimal otherwise. Decimal lexical forms always contain a
// point and never an exponent. NaN and infinities have no decimal form and
// become xsd:double literals.
func NewLiteralFromNumber(n float64) Literal {
	switch {
	case math.IsNaN(n):
		return Literal{Lexical: "NaN", Datatype: IRI{Value: XSDDouble}}
	case math.IsInf(n, 1):
		return Literal{Lexical: "INF", Datatype: IRI{Value: XSDDouble}}
	case math.IsInf(n, -1):
		return Literal{Lexical: "-INF", Datatype: IRI{Value: XSDDouble}}
	}
	lexical := strconv.FormatFloat(n, 'f', -1, 64)
	if n == math.Trunc(n) {
		if lexical == "-0" {
			lexical = "0"
		}
		return Literal{Lexical: lexical, Datatype: IRI{Value: XSDInteger}}
	}
	if !strings.Contains(lexical, ".") {
		lexical += ".0"
	}
	return Literal{Lexical: lexical, Datatype: IRI{Value: XSDDecimal}}
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// EffectiveDatatype returns rdf:langString for tagged literals, xsd:string
// when no datatype is set, and the declared datatype otherwise.
func (l Literal) EffectiveDatatype() IRI {
	if l.Lang != "" {
		return IRI{Value: RDFLangString}
	}
	if l.Datatype.Value == "" {
		return IRI{Value: XSDString}
	}
	return l.Datatype
}

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" && l.Datatype.Value != XSDString {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

func (Literal) isTerm() {}

// DefaultGraph marks statements that belong to no named graph.
type DefaultGraph struct{}

// Kind returns TermDefaultGraph.
func (DefaultGraph) Kind() TermKind { return TermDefaultGraph }

// String returns an empty string; the default graph has no name.
func (DefaultGraph) String() string { return "" }

func (DefaultGraph) isTerm() {}

// Statement is a triple tagged with the graph it belongs to.
type Statement struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name. Nil is treated as DefaultGraph.
	G Term
}

// NewStatement builds a statement in graph g.
func NewStatement(s Term, p IRI, o Term, g Term) Statement {
	return Statement{S: s, P: p, O: o, G: g}
}

// Valid reports whether the subject, predicate and object are all present.
func (s Statement) Valid() bool {
	return s.S != nil && s.P.Value != "" && s.O != nil
}

// Graph returns the statement's graph, substituting DefaultGraph for nil.
func (s Statement) Graph() Term {
	if s.G == nil {
		return DefaultGraph{}
	}
	return s.G
}

// InGraph reports whether the statement belongs to graph g.
func (s Statement) InGraph(g Term) bool {
	if g == nil {
		g = DefaultGraph{}
	}
	return TermsEqual(s.Graph(), g)
}

// TermsEqual compares two terms by kind and value. Nil equals only nil.
func TermsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
