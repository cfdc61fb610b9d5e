package rdf

import (
	"bytes"
	"strings"
)

// detectSampleBytes is how much of a document DetectFormat looks at.
const detectSampleBytes = 512

// DetectFormat guesses the RDF syntax of a document from its first bytes.
// It distinguishes the formats a Turtle reader must refuse (JSON-LD and
// RDF/XML) from Turtle and its N-Triples subset.
func DetectFormat(data []byte) (Format, bool) {
	sample := data[:min(len(data), detectSampleBytes)]
	sample = bytes.TrimPrefix(sample, []byte("\xef\xbb\xbf"))
	text := strings.TrimSpace(skipComments(string(sample)))
	if text == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(text, "{"):
		return FormatJSONLD, true
	case strings.HasPrefix(text, "[") && (strings.Contains(text, `"@`) || strings.HasPrefix(strings.TrimSpace(text[1:]), "{")):
		return FormatJSONLD, true
	case strings.HasPrefix(text, "<?xml"), strings.HasPrefix(text, "<rdf:"), strings.HasPrefix(text, "<rdf "):
		return FormatRDFXML, true
	}

	upper := strings.ToUpper(text)
	for _, directive := range []string{"@PREFIX", "PREFIX", "@BASE", "BASE"} {
		if strings.HasPrefix(upper, directive) {
			return FormatTurtle, true
		}
	}
	if strings.HasPrefix(text, "<") || strings.HasPrefix(text, "_:") || strings.HasPrefix(text, "[") || strings.HasPrefix(text, "(") {
		return FormatTurtle, true
	}
	if colon := strings.IndexByte(text, ':'); colon >= 0 && isValidPrefixLabel(text[:colon]) {
		return FormatTurtle, true
	}
	return "", false
}

// skipComments drops leading '#' comment lines.
func skipComments(text string) string {
	for {
		text = strings.TrimLeft(text, " \t\r\n")
		if !strings.HasPrefix(text, "#") {
			return text
		}
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
}
