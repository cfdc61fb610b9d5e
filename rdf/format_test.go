package rdf

import "testing"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		input  string
		want   Format
		expect bool
	}{
		{"turtle", FormatTurtle, true},
		{" TTL ", FormatTurtle, true},
		{"trig", FormatTriG, true},
		{"nt", FormatNTriples, true},
		{"nq", FormatNQuads, true},
		{"n3", FormatN3, true},
		{"xml", FormatRDFXML, true},
		{"json-ld", FormatJSONLD, true},
		{"unknown", "", false},
	}
	for _, c := range cases {
		got, ok := ParseFormat(c.input)
		if ok != c.expect {
			t.Fatalf("input %q ok=%v want %v", c.input, ok, c.expect)
		}
		if got != c.want {
			t.Fatalf("input %q got %v want %v", c.input, got, c.want)
		}
	}
}

func TestFormatForMediaType(t *testing.T) {
	cases := []struct {
		input  string
		want   Format
		expect bool
	}{
		{"text/turtle", FormatTurtle, true},
		{"text/turtle;charset=utf-8", FormatTurtle, true},
		{"TEXT/TURTLE", FormatTurtle, true},
		{"application/x-turtle", FormatTurtle, true},
		{"application/trig", FormatTriG, true},
		{"application/n-triples", FormatNTriples, true},
		{"application/n-quads", FormatNQuads, true},
		{"text/n3", FormatN3, true},
		{"application/rdf+xml", FormatRDFXML, true},
		{"application/ld+json", FormatJSONLD, true},
		{"text/html", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := FormatForMediaType(c.input)
		if ok != c.expect || got != c.want {
			t.Fatalf("media type %q got (%v, %v) want (%v, %v)", c.input, got, ok, c.want, c.expect)
		}
	}
}

func TestFormatMediaTypeRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatTurtle, FormatTriG, FormatNTriples, FormatNQuads, FormatN3, FormatRDFXML, FormatJSONLD} {
		got, ok := FormatForMediaType(f.MediaType())
		if !ok || got != f {
			t.Fatalf("%s: media type %q maps back to (%v, %v)", f, f.MediaType(), got, ok)
		}
	}
	if Format("bogus").MediaType() != "" {
		t.Fatal("expected no media type for unknown format")
	}
}
