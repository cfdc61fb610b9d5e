package rdf

import "testing"

func TestTermKindsAndStrings(t *testing.T) {
	iri := NewIRI("http://example.org/s")
	if iri.Kind() != TermIRI {
		t.Fatalf("expected IRI kind")
	}
	if iri.String() != "http://example.org/s" {
		t.Fatalf("unexpected IRI string: %s", iri.String())
	}

	blank := BlankNode{ID: "b1"}
	if blank.Kind() != TermBlankNode {
		t.Fatalf("expected blank node kind")
	}
	if blank.String() != "_:b1" {
		t.Fatalf("unexpected blank node string: %s", blank.String())
	}

	litPlain := NewLiteral("plain")
	if litPlain.Kind() != TermLiteral {
		t.Fatalf("expected literal kind")
	}
	if litPlain.String() != "\"plain\"" {
		t.Fatalf("unexpected literal string: %s", litPlain.String())
	}

	litLang := NewLangLiteral("hi", "en")
	if litLang.String() != "\"hi\"@en" {
		t.Fatalf("unexpected lang literal: %s", litLang.String())
	}

	litDT := NewTypedLiteral("1", IRI{Value: "http://example.org/int"})
	if litDT.String() != "\"1\"^^<http://example.org/int>" {
		t.Fatalf("unexpected datatype literal: %s", litDT.String())
	}

	if (DefaultGraph{}).Kind() != TermDefaultGraph || (DefaultGraph{}).String() != "" {
		t.Fatalf("unexpected default graph term")
	}
	if TermLiteral.String() != "literal" {
		t.Fatalf("unexpected kind name: %s", TermLiteral.String())
	}
}

func TestEffectiveDatatype(t *testing.T) {
	cases := []struct {
		lit  Literal
		want string
	}{
		{NewLiteral("x"), XSDString},
		{NewLangLiteral("x", "en"), RDFLangString},
		{NewIntegerLiteral(3), XSDInteger},
		{Literal{Lexical: "x", Datatype: IRI{Value: XSDDouble}, Lang: "en"}, RDFLangString},
	}
	for _, c := range cases {
		if got := c.lit.EffectiveDatatype().Value; got != c.want {
			t.Fatalf("%s: got %s want %s", c.lit, got, c.want)
		}
	}
}

func TestStatementGraph(t *testing.T) {
	s := NewStatement(IRI{Value: "http://example.org/s"}, IRI{Value: "http://example.org/p"}, NewLiteral("o"), nil)
	if !s.Valid() {
		t.Fatal("expected valid statement")
	}
	if _, ok := s.Graph().(DefaultGraph); !ok {
		t.Fatalf("expected default graph, got %T", s.Graph())
	}
	if !s.InGraph(nil) || !s.InGraph(DefaultGraph{}) {
		t.Fatal("expected statement in default graph")
	}

	doc := IRI{Value: "http://example.org/doc"}
	s.G = doc
	if !s.InGraph(doc) || s.InGraph(DefaultGraph{}) {
		t.Fatal("expected statement only in named graph")
	}

	if (Statement{S: IRI{Value: "http://example.org/s"}, O: NewLiteral("o")}).Valid() {
		t.Fatal("expected statement without predicate to be invalid")
	}
	if (Statement{P: IRI{Value: "http://example.org/p"}, O: NewLiteral("o")}).Valid() {
		t.Fatal("expected statement without subject to be invalid")
	}
}

func TestTermsEqual(t *testing.T) {
	if !TermsEqual(NewLiteral("a"), Literal{Lexical: "a"}) {
		t.Fatal("expected equal literals")
	}
	if TermsEqual(NewLiteral("1"), NewIntegerLiteral(1)) {
		t.Fatal("datatype must take part in equality")
	}
	if TermsEqual(IRI{Value: "x"}, BlankNode{ID: "x"}) {
		t.Fatal("kinds must take part in equality")
	}
	if !TermsEqual(nil, nil) || TermsEqual(nil, DefaultGraph{}) {
		t.Fatal("unexpected nil handling")
	}
}
