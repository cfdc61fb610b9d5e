package rdf

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterConflicts(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("ex", "http://a.example/"))
	require.NoError(t, reg.Register("ex", "http://a.example/"), "re-registering a pair is a no-op")

	err := reg.Register("ex", "http://b.example/")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "http://a.example/", conflict.BoundNamespace)
	assert.ErrorIs(t, err, ErrNamespaceConflict)
	assert.Equal(t, ErrCodeNamespaceConflict, Code(err))

	err = reg.Register("other", "http://a.example/")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ex", conflict.BoundLabel)
	assert.Contains(t, err.Error(), `already bound to prefix "ex"`)

	// Failed registrations leave the registry unchanged.
	ns, ok := reg.Lookup("ex")
	assert.True(t, ok)
	assert.Equal(t, "http://a.example/", ns)
	_, ok = reg.Lookup("other")
	assert.False(t, ok)
}

func TestRegistryInvalidLabels(t *testing.T) {
	reg := NewRegistry()
	for _, label := range []string{"1ex", "_ex", "ex.", "e x", "ex:"} {
		assert.ErrorIs(t, reg.Register(label, "http://e.example/"), ErrInvalidPrefix, label)
	}
	assert.ErrorIs(t, reg.Register("ex", ""), ErrInvalidPrefix)
	assert.NoError(t, reg.Register("e.x-1", "http://e.example/"))
}

func TestRegistryEmptyLabel(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, DocumentNamespace, reg.DefaultNamespace())

	// The relative default never matches.
	_, _, ok := reg.Resolve("#me")
	assert.False(t, ok)

	require.NoError(t, reg.Register("ex", "http://a.example/"))
	require.NoError(t, reg.Register("", "http://a.example/"))
	assert.Equal(t, "http://a.example/", reg.DefaultNamespace())

	label, local, ok := reg.Resolve("http://a.example/thing")
	require.True(t, ok)
	assert.Equal(t, "ex", label, "named label wins over an empty alias")
	assert.Equal(t, "thing", local)

	require.NoError(t, reg.Register("", "http://b.example/"))
	label, local, ok = reg.Resolve("http://b.example/x")
	require.True(t, ok)
	assert.Equal(t, "", label)
	assert.Equal(t, "x", local)
}

func TestRegistryResolveLongestPrefix(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", "http://e.example/"))
	require.NoError(t, reg.Register("b", "http://e.example/ns/"))

	label, local, ok := reg.Resolve("http://e.example/ns/x")
	require.True(t, ok)
	assert.Equal(t, "b", label)
	assert.Equal(t, "x", local)

	label, local, ok = reg.Resolve("http://e.example/y/z")
	require.True(t, ok)
	assert.Equal(t, "a", label)
	assert.Equal(t, "y/z", local)

	_, _, ok = reg.Resolve("http://e.example/")
	assert.False(t, ok, "namespace must be a strict prefix")

	_, _, ok = reg.Resolve("http://other.example/x")
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	for _, label := range []string{"rdf", "rdfs", "xsd", "owl", "schema", "foaf", "dct"} {
		_, ok := reg.Lookup(label)
		assert.True(t, ok, label)
	}
	label, ok := reg.LabelFor("http://schema.org/")
	require.True(t, ok)
	assert.Equal(t, "schema", label)

	namespaces := reg.Namespaces()
	require.NotEmpty(t, namespaces)
	assert.Equal(t, "", namespaces[0].Prefix)
	for i := 1; i < len(namespaces); i++ {
		assert.Less(t, namespaces[i-1].Prefix, namespaces[i].Prefix)
	}
}

func TestRegistryClone(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("ex", "http://a.example/"))
	clone := reg.Clone()
	require.NoError(t, clone.Register("more", "http://m.example/"))

	_, ok := reg.Lookup("more")
	assert.False(t, ok)
	_, ok = clone.Lookup("ex")
	assert.True(t, ok)
}

func TestRegistryConcurrentUse(t *testing.T) {
	reg := DefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Register(fmt.Sprintf("p%d", i), fmt.Sprintf("http://p%d.example/", i)))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = reg.Resolve("http://schema.org/name")
			_ = reg.Namespaces()
		}()
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		label, ok := reg.LabelFor(fmt.Sprintf("http://p%d.example/", i))
		assert.True(t, ok)
		assert.Equal(t, fmt.Sprintf("p%d", i), label)
	}
}

func TestIsValidLocalName(t *testing.T) {
	tests := map[string]bool{
		"subject": true,
		"a-b_c9":  true,
		"9a":      true,
		"café":    true,
		"":        false,
		"object/": false,
		"a/b":     false,
		"-a":      false,
		"a.b":     false,
		"a%20":    false,
		"a:b":     false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsValidLocalName(name), "%q", name)
	}
}

func TestSplitNamespace(t *testing.T) {
	tests := []struct {
		iri   string
		ns    string
		local string
		ok    bool
	}{
		{"http://e.example/terms#knows", "http://e.example/terms#", "knows", true},
		{"http://e.example/a/b", "http://e.example/a/", "b", true},
		{"http://e.example/a#b/c", "http://e.example/a#", "", false},
		{"https://subject.example", "", "", false},
		{"http://e.example/dir/", "", "", false},
		{"urn:isbn:123", "", "", false},
		{"http://e.example/p", "", "", false},
		{"http://e.example/#p", "", "", false},
		{"file:///data/a.ttl#me", "file:///data/a.ttl#", "me", true},
	}
	for _, tt := range tests {
		ns, local, ok := splitNamespace(tt.iri)
		assert.Equal(t, tt.ok, ok, tt.iri)
		if tt.ok {
			assert.Equal(t, tt.ns, ns, tt.iri)
			assert.Equal(t, tt.local, local, tt.iri)
		}
	}
}
