package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeNamespaceConflict indicates a rejected namespace registration.
	ErrCodeNamespaceConflict ErrorCode = "NAMESPACE_CONFLICT"
	// ErrCodeInvalidPrefix indicates a prefix label that is not a valid PN_PREFIX.
	ErrCodeInvalidPrefix ErrorCode = "INVALID_PREFIX"
	// ErrCodeMissingField indicates a statement without subject, predicate or object.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeInputTooLarge indicates the document exceeded MaxInputBytes.
	ErrCodeInputTooLarge ErrorCode = "INPUT_TOO_LARGE"
	// ErrCodeStatementLimitExceeded indicates the document exceeded MaxStatements.
	ErrCodeStatementLimitExceeded ErrorCode = "STATEMENT_LIMIT_EXCEEDED"
	// ErrCodeDepthExceeded indicates nesting beyond MaxDepth.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrNamespaceConflict indicates that a label or namespace is already bound.
	ErrNamespaceConflict = errors.New("rdf: namespace conflict")
	// ErrInvalidPrefix indicates a prefix label that cannot appear in Turtle.
	ErrInvalidPrefix = errors.New("rdf: invalid prefix label")
	// ErrMissingStatementField indicates a statement without subject, predicate or object.
	ErrMissingStatementField = errors.New("rdf: missing statement fields")
	// ErrInputTooLarge indicates the input exceeded the configured size limit.
	ErrInputTooLarge = errors.New("input too large")
	// ErrStatementLimitExceeded indicates the statement limit was exceeded.
	ErrStatementLimitExceeded = errors.New("statement limit exceeded")
	// ErrDepthExceeded indicates nesting beyond the configured depth.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrNamespaceConflict):
		return ErrCodeNamespaceConflict
	case errors.Is(err, ErrInvalidPrefix):
		return ErrCodeInvalidPrefix
	case errors.Is(err, ErrMissingStatementField):
		return ErrCodeMissingField
	case errors.Is(err, ErrInputTooLarge):
		return ErrCodeInputTooLarge
	case errors.Is(err, ErrStatementLimitExceeded):
		return ErrCodeStatementLimitExceeded
	case errors.Is(err, ErrDepthExceeded):
		return ErrCodeDepthExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}
	return ErrCodeParseError
}

// ConflictError reports a namespace registration that collides with an
// existing binding. The registry is left unchanged.
type ConflictError struct {
	Label     string // Label being registered
	Namespace string // Namespace being registered
	// Existing binding that caused the conflict.
	BoundLabel     string
	BoundNamespace string
}

func (e *ConflictError) Error() string {
	if e.BoundNamespace != e.Namespace {
		return fmt.Sprintf("rdf: prefix %q already bound to <%s>, cannot bind to <%s>", e.Label, e.BoundNamespace, e.Namespace)
	}
	return fmt.Sprintf("rdf: namespace <%s> already bound to prefix %q, cannot bind to %q", e.Namespace, e.BoundLabel, e.Label)
}

func (e *ConflictError) Unwrap() error { return ErrNamespaceConflict }

// UnsupportedFormatError reports a media type this package cannot serialize.
type UnsupportedFormatError struct {
	MediaType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat.Error(), e.MediaType)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "turtle")
	Statement string // Offending input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

// formatExcerpt returns the offending line with a caret under the error column.
func (e *ParseError) formatExcerpt() string {
	if e.Statement == "" {
		return ""
	}
	const contextLen = 40
	if e.Column <= 0 {
		if len(e.Statement) > 2*contextLen {
			return e.Statement[:2*contextLen] + "..."
		}
		return e.Statement
	}

	pos := min(e.Column-1, len(e.Statement))
	start := max(pos-contextLen, 0)
	end := min(pos+contextLen, len(e.Statement))
	excerpt := e.Statement[start:end]
	caret := pos - start
	if start > 0 {
		excerpt = "..." + excerpt
		caret += 3
	}
	if end < len(e.Statement) {
		excerpt += "..."
	}
	return excerpt + "\n  " + strings.Repeat(" ", caret) + "^"
}

func (e *ParseError) Unwrap() error { return e.Err }
