package rdf

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTurtleEncoderWriteError(t *testing.T) {
	src := StatementSlice{{S: testSubject, P: testPredicate, O: NewLiteral("x")}}
	err := NewTurtleEncoder(failingWriter{}).Encode(nil, src)
	assert.EqualError(t, err, "disk full")
}

func TestTurtleEncoderRegistryOption(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("ex", "https://subject.example/"))
	require.NoError(t, reg.Register("", "https://doc.example/ns#"))
	src := StatementSlice{{S: IRI{Value: "https://subject.example/s"}, P: IRI{Value: "https://doc.example/ns#p"}, O: NewLiteral("x")}}

	var buf bytes.Buffer
	require.NoError(t, NewTurtleEncoder(&buf, OptRegistry(reg), OptMinimalPrefixes()).Encode(nil, src))
	assert.Equal(t, "@prefix : <https://doc.example/ns#>.\n@prefix ex: <https://subject.example/>.\n\nex:s :p \"x\".\n\n", buf.String())
}

func TestTurtleEncoderLogsFallbacks(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	src := StatementSlice{{S: testSubject, P: IRI{Value: "http://schema.org/name"}, O: NewLiteral("x")}}

	var buf bytes.Buffer
	enc := NewTurtleEncoder(&buf, OptLogger(logger), OptNamespaceHints(map[string]string{"schema2": "http://schema.org/"}))
	require.NoError(t, enc.Encode(nil, src))
	assert.Contains(t, logs.String(), "namespace hint ignored")
	assert.Contains(t, logs.String(), "prefix=schema2")
	assert.Contains(t, logs.String(), "turtle document encoded")
}

func TestTurtleEncoderNilLoggerOption(t *testing.T) {
	var buf bytes.Buffer
	src := StatementSlice{{S: testSubject, P: testPredicate, O: DefaultGraph{}}}
	require.NoError(t, NewTurtleEncoder(&buf, OptLogger(nil)).Encode(nil, src))
	assert.Contains(t, buf.String(), "<https://predicate.example> [] .")
}

func TestParseFlags(t *testing.T) {
	assert.True(t, ParseFlags("m").MinimalPrefixes)
	assert.True(t, ParseFlags("xmz").MinimalPrefixes)
	assert.False(t, ParseFlags("").MinimalPrefixes)
	assert.False(t, ParseFlags("M").MinimalPrefixes)

	opts := buildSerializeOptions([]Option{OptMinimalPrefixes(), OptFlags("")})
	assert.True(t, opts.MinimalPrefixes, "flags never clear an earlier option")
}
