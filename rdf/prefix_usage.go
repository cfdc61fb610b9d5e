package rdf

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// prefixUsage formats terms for one serialization and records which prefix
// labels the output uses, in order of first use. Labels it invents exist
// only in this value; the caller's Registry is never modified.
type prefixUsage struct {
	reg       *Registry
	headerNS  string // empty-label namespace as written in the header
	minimal   bool
	logger    *slog.Logger
	used      *orderedmap.OrderedMap[string, string]
	invented  map[string]string // namespace -> label
	reserved  map[string]bool   // labels bound in reg or invented
	tokenMemo map[string]string

	blankLabels map[string]string // invalid blank node id -> minted label
	blankTaken  map[string]bool
	blankCount  int
}

func newPrefixUsage(reg *Registry, opts SerializeOptions) *prefixUsage {
	snapshot := reg.Clone()
	u := &prefixUsage{
		reg:         snapshot,
		minimal:     opts.MinimalPrefixes,
		logger:      opts.Logger,
		used:        orderedmap.New[string, string](),
		invented:    map[string]string{},
		reserved:    map[string]bool{},
		tokenMemo:   map[string]string{},
		blankLabels: map[string]string{},
		blankTaken:  map[string]bool{},
	}

	labels := make([]string, 0, len(opts.Hints))
	for label := range opts.Hints {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if err := snapshot.Register(label, opts.Hints[label]); err != nil {
			u.logger.Debug("namespace hint ignored", "prefix", label, "iri", opts.Hints[label], "err", err)
		}
	}

	// A hint may rebind the empty label; the header must declare the
	// namespace the body abbreviates with.
	u.headerNS = snapshot.DefaultNamespace()

	// Resolve document fragments against the base without changing the header.
	if u.headerNS == DocumentNamespace && opts.Base != "" {
		base := opts.Base
		if i := strings.IndexByte(base, '#'); i >= 0 {
			base = base[:i]
		}
		if isAbsoluteIRI(base) {
			_ = snapshot.Register("", base+DocumentNamespace)
		}
	}

	for _, ns := range snapshot.Namespaces() {
		u.reserved[ns.Prefix] = true
	}
	return u
}

// term formats any term. Terms without a Turtle form degrade to an anonymous
// blank node so the document stays parseable.
func (u *prefixUsage) term(t Term) string {
	switch v := t.(type) {
	case IRI:
		return u.iri(v)
	case BlankNode:
		return "_:" + u.blankLabel(v.ID)
	case Literal:
		if v.Lang != "" && !isValidLangTag(v.Lang) {
			u.logger.Debug("invalid language tag dropped", "lexical", v.Lexical, "lang", v.Lang)
		}
		return FormatLiteral(v, u.iri)
	case DefaultGraph:
		u.logger.Debug("default graph marker used as a statement term")
		return "[]"
	default:
		u.logger.Debug("term without a Turtle form", "term", t)
		return "[]"
	}
}

// iri returns label:local when the IRI can be abbreviated, otherwise <iri>.
func (u *prefixUsage) iri(iri IRI) string {
	if token, ok := u.tokenMemo[iri.Value]; ok {
		return token
	}
	token := u.abbreviate(iri.Value)
	u.tokenMemo[iri.Value] = token
	return token
}

func (u *prefixUsage) abbreviate(iri string) string {
	label, local, ok := u.reg.Resolve(iri)
	if ok && IsValidLocalName(local) {
		ns, _ := u.reg.Lookup(label)
		return u.use(label, ns) + local
	}
	if ok {
		u.logger.Debug("prefix match rejected", "iri", iri, "prefix", label, "local", local)
	}
	if !u.minimal {
		if ns, local, ok := splitNamespace(iri); ok {
			return u.use(u.labelFor(ns), ns) + local
		}
	}
	return "<" + iri + ">"
}

// reserveBlankLabels records the blank node ids that can be written as
// they are, so minted labels never collide with them.
func (u *prefixUsage) reserveBlankLabels(groups []subjectGroup) {
	reserve := func(t Term) {
		if b, ok := t.(BlankNode); ok && IsValidLocalName(b.ID) {
			u.blankTaken[b.ID] = true
		}
	}
	for _, g := range groups {
		reserve(g.subject)
		for _, p := range g.predicates {
			for _, o := range p.objects {
				reserve(o)
			}
		}
	}
}

// blankLabel returns id when it is a valid BLANK_NODE_LABEL, otherwise a
// label minted for it. Equal ids always get the same label.
func (u *prefixUsage) blankLabel(id string) string {
	if IsValidLocalName(id) {
		return id
	}
	if label, ok := u.blankLabels[id]; ok {
		return label
	}
	var label string
	for {
		u.blankCount++
		label = "b" + strconv.Itoa(u.blankCount)
		if !u.blankTaken[label] {
			break
		}
	}
	u.blankTaken[label] = true
	u.blankLabels[id] = label
	u.logger.Debug("blank node relabeled", "id", id, "label", label)
	return label
}

// use marks label as used and returns "label:".
func (u *prefixUsage) use(label, ns string) string {
	if label != "" {
		if _, seen := u.used.Get(label); !seen {
			u.used.Set(label, ns)
		}
	}
	return label + ":"
}

// labelFor returns the label for an unregistered namespace, inventing one
// the first time the namespace is seen.
func (u *prefixUsage) labelFor(ns string) string {
	if label, ok := u.reg.LabelFor(ns); ok {
		return label
	}
	if label, ok := u.invented[ns]; ok {
		return label
	}
	label := u.makeUpPrefix(ns)
	u.invented[ns] = label
	u.reserved[label] = true
	u.logger.Debug("prefix invented", "prefix", label, "iri", ns)
	return label
}

// makeUpPrefix derives a short label from the last path segment of ns.
func (u *prefixUsage) makeUpPrefix(ns string) string {
	p := strings.TrimRight(ns, "#/")
	if slash := strings.LastIndexByte(p, '/'); slash >= 0 {
		p = p[slash+1:]
	}
	n := 0
	for n < len(p) && ((p[n] >= 'a' && p[n] <= 'z') || (p[n] >= 'A' && p[n] <= 'Z')) {
		n++
	}
	p = p[:n]

	if len(p) < 6 && u.canUse(p) {
		return p
	}
	for _, size := range []int{3, 2, 4, 1, 5} {
		if size <= len(p) && u.canUse(p[:size]) {
			return p[:size]
		}
	}
	if p == "" {
		p = "n"
	}
	stem := p[:min(3, len(p))]
	for j := 0; ; j++ {
		if candidate := stem + strconv.Itoa(j); u.canUse(candidate) {
			return candidate
		}
	}
}

func (u *prefixUsage) canUse(label string) bool {
	return label != "" && label != "ns" && !u.reserved[label] && isValidPrefixLabel(label)
}

// prefixes returns the used labels in order of first use.
func (u *prefixUsage) prefixes() []Namespace {
	out := make([]Namespace, 0, u.used.Len())
	for pair := u.used.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Namespace{Prefix: pair.Key, IRI: pair.Value})
	}
	return out
}

// splitNamespace splits iri after its last '#', or else its last '/', and
// reports whether the pieces can form a prefixed name. The namespace must
// extend past the authority's leading "//".
func splitNamespace(iri string) (ns, local string, ok bool) {
	cut := strings.LastIndexByte(iri, '#')
	if cut < 0 {
		cut = strings.LastIndexByte(iri, '/')
	}
	if cut < 0 {
		return "", "", false
	}
	// The namespace needs a path segment beyond the authority.
	if scheme := strings.Index(iri, "://"); scheme >= 0 {
		slash := strings.IndexByte(iri[scheme+3:], '/')
		if slash < 0 || cut <= scheme+3+slash+1 {
			return "", "", false
		}
	}
	ns, local = iri[:cut+1], iri[cut+1:]
	if !isAbsoluteIRI(ns) || !IsValidLocalName(local) {
		return "", "", false
	}
	return ns, local, true
}
