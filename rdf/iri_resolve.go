package rdf

import (
	"net/url"
	"strings"
)

// resolveIRI resolves a relative IRI reference against base (RFC 3986).
// Without a usable base the reference is returned unchanged.
func resolveIRI(base, ref string) string {
	if base == "" || isAbsoluteIRI(ref) {
		return ref
	}
	// url.ResolveReference drops an empty fragment, which would turn <#>
	// into the base itself.
	if strings.HasPrefix(ref, "#") {
		before, _, _ := strings.Cut(base, "#")
		return before + ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
