package rdf

import (
	"iter"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory statement store indexed by graph. It keeps
// insertion order within each graph and ignores duplicate statements.
// A Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	graphs   map[Term][]Statement
	order    []Term
	seen     map[Statement]struct{}
	prefixes *Registry
}

// NewStore returns an empty store whose prefix bindings start from
// DefaultRegistry.
func NewStore() *Store {
	return NewStoreWithRegistry(DefaultRegistry())
}

// NewStoreWithRegistry returns an empty store using reg for prefix bindings.
func NewStoreWithRegistry(reg *Registry) *Store {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Store{
		graphs:   map[Term][]Statement{},
		seen:     map[Statement]struct{}{},
		prefixes: reg,
	}
}

// Add stores stmt. Statements missing a subject, predicate or object are
// rejected with ErrMissingStatementField. A nil graph means DefaultGraph.
func (s *Store) Add(stmt Statement) error {
	if !stmt.Valid() {
		return ErrMissingStatementField
	}
	stmt.G = stmt.Graph()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seen[stmt]; dup {
		return nil
	}
	s.seen[stmt] = struct{}{}
	if _, ok := s.graphs[stmt.G]; !ok {
		s.order = append(s.order, stmt.G)
	}
	s.graphs[stmt.G] = append(s.graphs[stmt.G], stmt)
	return nil
}

// AddAll stores every statement, stopping at the first error.
func (s *Store) AddAll(stmts []Statement) error {
	for _, stmt := range stmts {
		if err := s.Add(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Statements yields a snapshot of the statements in graph, in insertion order.
func (s *Store) Statements(graph Term) iter.Seq[Statement] {
	if graph == nil {
		graph = DefaultGraph{}
	}
	s.mu.RLock()
	snapshot := s.graphs[graph]
	s.mu.RUnlock()
	return StatementSlice(snapshot).Statements(graph)
}

// Graphs returns the graphs holding statements, in first-use order.
func (s *Store) Graphs() []Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Term(nil), s.order...)
}

// Len returns the number of statements in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}

// Namespaces returns the store's prefix registry.
func (s *Store) Namespaces() *Registry {
	return s.prefixes
}

// SetPrefix binds label to namespace in the store's registry.
func (s *Store) SetPrefix(label, namespace string) error {
	return s.prefixes.Register(label, namespace)
}

// NewBlankNode returns a blank node with a store-unique identifier.
func (s *Store) NewBlankNode() BlankNode {
	return BlankNode{ID: "n" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}
