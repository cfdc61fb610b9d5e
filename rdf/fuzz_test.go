package rdf

import (
	"bytes"
	"context"
	"testing"
)

func FuzzParseTurtle(f *testing.F) {
	f.Add([]byte(`@prefix ex: <http://example.org/> . ex:s ex:p "v" .`))
	f.Add([]byte(`[ <http://e/p> ( 1 2.5 3e0 ) ] <http://e/q> """long""" .`))
	f.Add([]byte(`@base <http://e/> . <s> a <T> ; <p> _:b, true .`))
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 32<<10 {
			return
		}
		graph := IRI{Value: "http://fuzz.example/doc"}
		doc, err := ParseTurtle(context.Background(), bytes.NewReader(data), graph.Value, graph)
		if err != nil {
			return
		}
		if _, err := Serialize(graph, StatementSlice(doc.Statements), graph.Value, MediaTypeTurtle, nil); err != nil {
			t.Fatalf("serialize parsed document: %v", err)
		}
	})
}
