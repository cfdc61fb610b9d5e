// Package rdf serializes RDF graphs to Turtle.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package has a small term model (IRI, BlankNode, Literal, DefaultGraph),
// a Statement type carrying the graph a triple belongs to, a namespace
// Registry and a Turtle serializer that writes the statements of one graph:
//
//	store := rdf.NewStore()
//	doc := rdf.IRI{Value: "https://doc.example"}
//	_ = store.Add(rdf.Statement{
//	    S: rdf.IRI{Value: "https://example.com/subject"},
//	    P: rdf.IRI{Value: "http://schema.org/name"},
//	    O: rdf.NewLiteralFromNumber(0.5),
//	    G: doc,
//	})
//	out, err := rdf.Serialize(doc, store, "", rdf.MediaTypeTurtle, nil)
//
// The serializer declares only the prefixes the body uses, in the order they
// are first needed, and always declares the empty prefix first. IRIs are
// abbreviated when a registered namespace matches and the remaining local
// name is made of letters, digits, '_' and '-'; otherwise they are written
// in full. Unless OptMinimalPrefixes (flag "m") is set, prefixes are invented
// for unregistered namespaces; invented prefixes are local to one call.
//
// Integer, decimal, boolean and double literals are written without quotes
// when their lexical form allows it. Doubles without an exponent get "e0"
// (and ".0" when there is no decimal point) so they re-parse as doubles.
//
// ParseTurtle reads Turtle back into statements; it exists so serialized
// output can be checked and reformatted.
package rdf
