package rdf

import "strings"

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatN3       Format = "n3"
	FormatRDFXML   Format = "rdfxml"
	FormatJSONLD   Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "trig":
		return FormatTriG, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "nquads", "nq":
		return FormatNQuads, true
	case "n3":
		return FormatN3, true
	case "rdfxml", "rdf", "xml":
		return FormatRDFXML, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// FormatForMediaType maps a media type, with or without parameters, to a Format.
func FormatForMediaType(mediaType string) (Format, bool) {
	switch parseMediaType(mediaType) {
	case "text/turtle", "application/x-turtle":
		return FormatTurtle, true
	case "application/trig":
		return FormatTriG, true
	case "application/n-triples":
		return FormatNTriples, true
	case "application/n-quads":
		return FormatNQuads, true
	case "text/n3", "text/rdf+n3":
		return FormatN3, true
	case "application/rdf+xml":
		return FormatRDFXML, true
	case "application/ld+json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// MediaType returns the registered media type of f.
func (f Format) MediaType() string {
	switch f {
	case FormatTurtle:
		return MediaTypeTurtle
	case FormatTriG:
		return "application/trig"
	case FormatNTriples:
		return "application/n-triples"
	case FormatNQuads:
		return "application/n-quads"
	case FormatN3:
		return "text/n3"
	case FormatRDFXML:
		return "application/rdf+xml"
	case FormatJSONLD:
		return "application/ld+json"
	default:
		return ""
	}
}
