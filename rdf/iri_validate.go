package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateNamespace checks that ns can be bound to a prefix label: either
// DocumentNamespace or an absolute IRI that can be written between angle
// brackets without escaping.
func ValidateNamespace(ns string) error {
	if ns == DocumentNamespace {
		return nil
	}
	if ns == "" {
		return fmt.Errorf("empty namespace IRI")
	}
	if !isAbsoluteIRI(ns) {
		return fmt.Errorf("namespace IRI %q has no scheme", ns)
	}
	if i := strings.IndexFunc(ns, isForbiddenIRIRune); i >= 0 {
		return fmt.Errorf("namespace IRI %q contains %q", ns, ns[i])
	}
	if _, err := url.Parse(ns); err != nil {
		return fmt.Errorf("invalid namespace IRI: %w", err)
	}
	return nil
}

// isForbiddenIRIRune reports characters excluded from IRIREF.
func isForbiddenIRIRune(r rune) bool {
	return r <= ' ' || strings.ContainsRune("<>\"{}|^`\\", r)
}
