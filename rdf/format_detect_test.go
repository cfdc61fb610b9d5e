package rdf

import "testing"

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   Format
		expect bool
	}{
		{"prefix directive", "@prefix ex: <http://example.org/> .\nex:s ex:p ex:o .", FormatTurtle, true},
		{"sparql prefix", "PREFIX ex: <http://example.org/>\n", FormatTurtle, true},
		{"ntriples", "<http://e/s> <http://e/p> <http://e/o> .", FormatTurtle, true},
		{"comment first", "# generated\n\n_:b <http://e/p> 1 .", FormatTurtle, true},
		{"prefixed name", "ex:s ex:p ex:o .", FormatTurtle, true},
		{"empty prefix", ":me :p 1 .", FormatTurtle, true},
		{"bom", "\xef\xbb\xbf@base <http://e/> .", FormatTurtle, true},
		{"jsonld object", `{"@context": {}, "@id": "http://e/s"}`, FormatJSONLD, true},
		{"jsonld array", `[{"@id": "http://e/s"}]`, FormatJSONLD, true},
		{"rdfxml", `<?xml version="1.0"?><rdf:RDF/>`, FormatRDFXML, true},
		{"empty", "  \n", "", false},
		{"only comments", "# nothing\n", "", false},
		{"prose", "hello world", "", false},
	}
	for _, c := range cases {
		got, ok := DetectFormat([]byte(c.input))
		if ok != c.expect || got != c.want {
			t.Fatalf("%s: got (%v, %v) want (%v, %v)", c.name, got, ok, c.want, c.expect)
		}
	}
}
