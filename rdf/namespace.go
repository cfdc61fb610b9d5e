package rdf

import (
	"sort"
	"strings"
	"sync"
)

// DocumentNamespace is the relative namespace bound to the empty prefix by
// default. It names fragments of the document being written.
const DocumentNamespace = "#"

// Namespace is a prefix label bound to a namespace IRI.
type Namespace struct {
	Prefix string
	IRI    string
}

// wellKnownNamespaces seeds DefaultRegistry.
var wellKnownNamespaces = []Namespace{
	{Prefix: "acl", IRI: "http://www.w3.org/ns/auth/acl#"},
	{Prefix: "as", IRI: "https://www.w3.org/ns/activitystreams#"},
	{Prefix: "dc", IRI: "http://purl.org/dc/elements/1.1/"},
	{Prefix: "dct", IRI: "http://purl.org/dc/terms/"},
	{Prefix: "foaf", IRI: "http://xmlns.com/foaf/0.1/"},
	{Prefix: "geo", IRI: "http://www.w3.org/2003/01/geo/wgs84_pos#"},
	{Prefix: "ldp", IRI: "http://www.w3.org/ns/ldp#"},
	{Prefix: "owl", IRI: "http://www.w3.org/2002/07/owl#"},
	{Prefix: "prov", IRI: "http://www.w3.org/ns/prov#"},
	{Prefix: "rdf", IRI: rdfNS},
	{Prefix: "rdfs", IRI: "http://www.w3.org/2000/01/rdf-schema#"},
	{Prefix: "schema", IRI: "http://schema.org/"},
	{Prefix: "sioc", IRI: "http://rdfs.org/sioc/ns#"},
	{Prefix: "skos", IRI: "http://www.w3.org/2004/02/skos/core#"},
	{Prefix: "solid", IRI: "http://www.w3.org/ns/solid/terms#"},
	{Prefix: "time", IRI: "http://www.w3.org/2006/time#"},
	{Prefix: "vcard", IRI: "http://www.w3.org/2006/vcard/ns#"},
	{Prefix: "xsd", IRI: xsdNS},
}

// Registry is a bidirectional mapping between prefix labels and namespace
// IRIs. No two non-empty labels map to the same namespace; the empty label
// may alias a namespace that also has a named label.
//
// A Registry is safe for concurrent use. Serialization works on a Clone, so
// registrations made while a document is being written do not affect it.
type Registry struct {
	mu       sync.RWMutex
	byLabel  map[string]string
	byIRI    map[string]string // namespace -> non-empty label
	emptyIRI string
}

// NewRegistry returns a registry holding only the empty prefix, bound to
// DocumentNamespace.
func NewRegistry() *Registry {
	return &Registry{
		byLabel:  map[string]string{"": DocumentNamespace},
		byIRI:    map[string]string{},
		emptyIRI: DocumentNamespace,
	}
}

// DefaultRegistry returns a registry seeded with widely used vocabularies
// (rdf, rdfs, xsd, owl, schema, foaf, ...). Seeded entries count as
// explicit registrations.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, ns := range wellKnownNamespaces {
		r.byLabel[ns.Prefix] = ns.IRI
		r.byIRI[ns.IRI] = ns.Prefix
	}
	return r
}

// Register binds label to namespace. It returns a *ConflictError when the
// label is bound to a different namespace, or when the namespace is bound to
// a different non-empty label. Registering an existing pair is a no-op.
// Binding the empty label replaces the document namespace.
func (r *Registry) Register(label, namespace string) error {
	if !isValidPrefixLabel(label) || namespace == "" {
		return ErrInvalidPrefix
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if label == "" {
		r.byLabel[""] = namespace
		r.emptyIRI = namespace
		return nil
	}
	if bound, ok := r.byLabel[label]; ok {
		if bound == namespace {
			return nil
		}
		return &ConflictError{Label: label, Namespace: namespace, BoundLabel: label, BoundNamespace: bound}
	}
	if bound, ok := r.byIRI[namespace]; ok {
		return &ConflictError{Label: label, Namespace: namespace, BoundLabel: bound, BoundNamespace: namespace}
	}
	r.byLabel[label] = namespace
	r.byIRI[namespace] = label
	return nil
}

// Lookup returns the namespace bound to label.
func (r *Registry) Lookup(label string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns, ok := r.byLabel[label]
	return ns, ok
}

// LabelFor returns the non-empty label bound to namespace.
func (r *Registry) LabelFor(namespace string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	label, ok := r.byIRI[namespace]
	return label, ok
}

// DefaultNamespace returns the namespace bound to the empty label.
func (r *Registry) DefaultNamespace() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emptyIRI
}

// Resolve finds the longest registered namespace that is a strict prefix of
// iri and returns its label with the remaining local part. The empty label
// takes part only when its namespace is absolute. The local part is not
// checked; callers use IsValidLocalName before abbreviating.
func (r *Registry) Resolve(iri string) (label, local string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := ""
	for l, ns := range r.byLabel {
		if l == "" && !isAbsoluteIRI(ns) {
			continue
		}
		if len(ns) >= len(iri) || !strings.HasPrefix(iri, ns) {
			continue
		}
		// Prefer the named label when the empty label aliases the same namespace.
		if len(ns) > len(best) || (len(ns) == len(best) && ok && label == "") {
			best, label, ok = ns, l, true
		}
	}
	if !ok {
		return "", "", false
	}
	return label, iri[len(best):], true
}

// Namespaces returns all bindings sorted by label. The empty label sorts first.
func (r *Registry) Namespaces() []Namespace {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Namespace, 0, len(r.byLabel))
	for label, ns := range r.byLabel {
		out = append(out, Namespace{Prefix: label, IRI: ns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{
		byLabel:  make(map[string]string, len(r.byLabel)),
		byIRI:    make(map[string]string, len(r.byIRI)),
		emptyIRI: r.emptyIRI,
	}
	for k, v := range r.byLabel {
		c.byLabel[k] = v
	}
	for k, v := range r.byIRI {
		c.byIRI[k] = v
	}
	return c
}

// isAbsoluteIRI reports whether iri starts with a scheme.
func isAbsoluteIRI(iri string) bool {
	colon := strings.IndexByte(iri, ':')
	if colon <= 0 {
		return false
	}
	for i := 0; i < colon; i++ {
		ch := iri[i]
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		case i > 0 && ((ch >= '0' && ch <= '9') || ch == '+' || ch == '-' || ch == '.'):
		default:
			return false
		}
	}
	return true
}
