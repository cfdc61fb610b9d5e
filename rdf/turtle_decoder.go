package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	rdfFirst = rdfNS + "first"
	rdfRest  = rdfNS + "rest"
	rdfNil   = rdfNS + "nil"
)

// TurtleDocument is the result of parsing a Turtle document.
type TurtleDocument struct {
	// Statements in document order, all in the graph passed to ParseTurtle.
	Statements []Statement
	// Prefixes declared by the document, in declaration order.
	Prefixes []Namespace
	// Base is the base IRI in effect at the end of the document.
	Base string
}

// ParseTurtle reads a Turtle document from r. Relative IRIs are resolved
// against base (and any @base directive); every statement is placed in
// graph. The cursor checks ctx between statements.
//
// Supported: @prefix/PREFIX, @base/BASE, IRIs, prefixed names, 'a', blank
// node labels, [] and property lists, collections, short and long strings,
// language tags, datatypes and numeric/boolean shorthand. Limits default to
// DefaultParseOptions.
func ParseTurtle(ctx context.Context, r io.Reader, base string, graph Term, opts ...ParseOption) (*TurtleDocument, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := buildParseOptions(opts)
	if options.MaxInputBytes > 0 {
		r = io.LimitReader(r, options.MaxInputBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if options.MaxInputBytes > 0 && int64(len(data)) > options.MaxInputBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrInputTooLarge, options.MaxInputBytes)
	}
	if graph == nil {
		graph = DefaultGraph{}
	}
	c := &turtleCursor{
		input:    string(data),
		base:     base,
		graph:    graph,
		prefixes: map[string]string{},
		blanks:   newBlankNodeGenerator("genid"),
		opts:     options,
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.skipWS()
		if c.eof() {
			break
		}
		if err := c.parseStatement(); err != nil {
			return nil, err
		}
	}
	return &TurtleDocument{Statements: c.out, Prefixes: c.prefixOrder, Base: c.base}, nil
}

type turtleCursor struct {
	input       string
	pos         int
	base        string
	graph       Term
	prefixes    map[string]string
	prefixOrder []Namespace
	out         []Statement
	blanks      *blankNodeGenerator
	depth       int
	opts        ParseOptions
}

func (c *turtleCursor) eof() bool { return c.pos >= len(c.input) }

func (c *turtleCursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c *turtleCursor) peekAt(offset int) byte {
	if c.pos+offset >= len(c.input) {
		return 0
	}
	return c.input[c.pos+offset]
}

// skipWS skips whitespace and comments.
func (c *turtleCursor) skipWS() {
	for !c.eof() {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		case '#':
			for !c.eof() && c.input[c.pos] != '\n' {
				c.pos++
			}
		default:
			return
		}
	}
}

func (c *turtleCursor) expect(ch byte) error {
	c.skipWS()
	if c.peek() != ch {
		return c.errorf("expected %q", ch)
	}
	c.pos++
	return nil
}

// keyword reports whether the input continues with kw followed by a
// delimiter, matching case-insensitively when fold is set.
func (c *turtleCursor) keyword(kw string, fold bool) bool {
	end := c.pos + len(kw)
	if end > len(c.input) {
		return false
	}
	word := c.input[c.pos:end]
	if fold && !strings.EqualFold(word, kw) || !fold && word != kw {
		return false
	}
	return end == len(c.input) || isTermDelimiter(c.input[end])
}

func (c *turtleCursor) parseStatement() error {
	switch {
	case c.keyword("@prefix", false):
		c.pos += len("@prefix")
		return c.parsePrefixDirective(true)
	case c.keyword("PREFIX", true):
		c.pos += len("PREFIX")
		return c.parsePrefixDirective(false)
	case c.keyword("@base", false):
		c.pos += len("@base")
		return c.parseBaseDirective(true)
	case c.keyword("BASE", true):
		c.pos += len("BASE")
		return c.parseBaseDirective(false)
	}
	return c.parseTriples()
}

func (c *turtleCursor) parsePrefixDirective(dotted bool) error {
	c.skipWS()
	start := c.pos
	for !c.eof() && c.input[c.pos] != ':' && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	label := c.input[start:c.pos]
	if c.peek() != ':' || !isValidPrefixLabel(label) {
		return c.errorf("invalid prefix declaration")
	}
	c.pos++
	c.skipWS()
	ns, err := c.parseIRIRef()
	if err != nil {
		return err
	}
	if _, seen := c.prefixes[label]; !seen {
		c.prefixOrder = append(c.prefixOrder, Namespace{Prefix: label, IRI: ns.Value})
	} else {
		for i := range c.prefixOrder {
			if c.prefixOrder[i].Prefix == label {
				c.prefixOrder[i].IRI = ns.Value
			}
		}
	}
	c.prefixes[label] = ns.Value
	if dotted {
		return c.expect('.')
	}
	return nil
}

func (c *turtleCursor) parseBaseDirective(dotted bool) error {
	c.skipWS()
	iri, err := c.parseIRIRef()
	if err != nil {
		return err
	}
	c.base = iri.Value
	if dotted {
		return c.expect('.')
	}
	return nil
}

func (c *turtleCursor) parseTriples() error {
	c.skipWS()
	if c.peek() == '[' && !c.isEmptyBrackets() {
		subject, err := c.parseBlankNodePropertyList()
		if err != nil {
			return err
		}
		c.skipWS()
		if c.peek() == '.' {
			c.pos++
			return nil
		}
		if err := c.parsePredicateObjectList(subject); err != nil {
			return err
		}
		return c.expect('.')
	}
	subject, err := c.parseSubject()
	if err != nil {
		return err
	}
	if err := c.parsePredicateObjectList(subject); err != nil {
		return err
	}
	return c.expect('.')
}

func (c *turtleCursor) parsePredicateObjectList(subject Term) error {
	for {
		predicate, err := c.parseVerb()
		if err != nil {
			return err
		}
		if err := c.parseObjectList(subject, predicate); err != nil {
			return err
		}
		c.skipWS()
		if c.peek() != ';' {
			return nil
		}
		for c.peek() == ';' {
			c.pos++
			c.skipWS()
		}
		// A trailing ';' may be followed directly by the end of the list.
		if ch := c.peek(); ch == '.' || ch == ']' || ch == 0 {
			return nil
		}
	}
}

func (c *turtleCursor) parseObjectList(subject Term, predicate IRI) error {
	for {
		object, err := c.parseObject()
		if err != nil {
			return err
		}
		if err := c.emit(subject, predicate, object); err != nil {
			return err
		}
		c.skipWS()
		if c.peek() != ',' {
			return nil
		}
		c.pos++
	}
}

func (c *turtleCursor) emit(s Term, p IRI, o Term) error {
	if limit := c.opts.MaxStatements; limit > 0 && len(c.out) >= limit {
		return c.wrap(fmt.Errorf("%w: limit is %d", ErrStatementLimitExceeded, limit))
	}
	c.out = append(c.out, Statement{S: s, P: p, O: o, G: c.graph})
	return nil
}

// enter tracks nesting of [ ] and ( ) terms; the caller defers leave.
func (c *turtleCursor) enter() error {
	c.depth++
	if limit := c.opts.MaxDepth; limit > 0 && c.depth > limit {
		return c.wrap(fmt.Errorf("%w: limit is %d", ErrDepthExceeded, limit))
	}
	return nil
}

func (c *turtleCursor) leave() { c.depth-- }

func (c *turtleCursor) parseVerb() (IRI, error) {
	c.skipWS()
	if c.keyword("a", false) {
		c.pos++
		return IRI{Value: rdfType}, nil
	}
	if c.peek() == '<' {
		return c.parseIRIRef()
	}
	return c.parsePrefixedName()
}

func (c *turtleCursor) parseSubject() (Term, error) {
	c.skipWS()
	switch {
	case c.peek() == '<':
		return c.parseIRIRef()
	case c.peek() == '_' && c.peekAt(1) == ':':
		return c.parseBlankNodeLabel()
	case c.peek() == '[':
		return c.parseAnonymous()
	case c.peek() == '(':
		return c.parseCollection()
	default:
		return c.parsePrefixedName()
	}
}

func (c *turtleCursor) parseObject() (Term, error) {
	c.skipWS()
	ch := c.peek()
	switch {
	case ch == '<':
		return c.parseIRIRef()
	case ch == '_' && c.peekAt(1) == ':':
		return c.parseBlankNodeLabel()
	case ch == '[':
		if c.isEmptyBrackets() {
			return c.parseAnonymous()
		}
		return c.parseBlankNodePropertyList()
	case ch == '(':
		return c.parseCollection()
	case ch == '"' || ch == '\'':
		return c.parseLiteral()
	case ch == '+' || ch == '-' || ch == '.' || (ch >= '0' && ch <= '9'):
		return c.parseNumber()
	case c.keyword("true", false):
		c.pos += 4
		return NewBooleanLiteral(true), nil
	case c.keyword("false", false):
		c.pos += 5
		return NewBooleanLiteral(false), nil
	case ch == 0:
		return nil, c.errorf("unexpected end of input")
	default:
		return c.parsePrefixedName()
	}
}

func (c *turtleCursor) parseIRIRef() (IRI, error) {
	if c.peek() != '<' {
		return IRI{}, c.errorf("expected IRI")
	}
	c.pos++
	var b strings.Builder
	for {
		if c.eof() {
			return IRI{}, c.errorf("unterminated IRI")
		}
		ch := c.input[c.pos]
		switch {
		case ch == '>':
			c.pos++
			return IRI{Value: resolveIRI(c.base, b.String())}, nil
		case ch == '\\':
			if c.peekAt(1) != 'u' && c.peekAt(1) != 'U' {
				return IRI{}, c.errorf("invalid escape in IRI")
			}
			r, n, err := readUChar(c.input, c.pos)
			if err != nil {
				return IRI{}, c.wrap(err)
			}
			b.WriteRune(r)
			c.pos += n
		case ch <= ' ' || ch == '<' || ch == '"' || ch == '{' || ch == '}' || ch == '|' || ch == '^' || ch == '`':
			return IRI{}, c.errorf("invalid character %q in IRI", ch)
		default:
			b.WriteByte(ch)
			c.pos++
		}
	}
}

func (c *turtleCursor) parsePrefixedName() (IRI, error) {
	start := c.pos
	for !c.eof() && c.input[c.pos] != ':' {
		if isTermDelimiter(c.input[c.pos]) {
			return IRI{}, c.errorf("expected prefixed name")
		}
		c.pos++
	}
	if c.eof() {
		c.pos = start
		return IRI{}, c.errorf("expected prefixed name")
	}
	label := c.input[start:c.pos]
	ns, ok := c.prefixes[label]
	if !ok {
		c.pos = start
		return IRI{}, c.errorf("unknown prefix %q", label)
	}
	c.pos++

	var local strings.Builder
	for !c.eof() {
		ch := c.input[c.pos]
		if ch == '\\' {
			next := c.peekAt(1)
			if !isValidPNLocalEscape(next) {
				return IRI{}, c.errorf("invalid escape in local name")
			}
			local.WriteByte(next)
			c.pos += 2
			continue
		}
		// A dot ends the name unless more name characters follow it.
		if ch == '.' {
			next := c.peekAt(1)
			if next == 0 || isTermDelimiter(next) || next == '.' {
				break
			}
		} else if isTermDelimiter(ch) {
			break
		}
		local.WriteByte(ch)
		c.pos++
	}
	return IRI{Value: ns + local.String()}, nil
}

func (c *turtleCursor) parseBlankNodeLabel() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for !c.eof() {
		ch := c.input[c.pos]
		if ch == '.' {
			if next := c.peekAt(1); next == 0 || isTermDelimiter(next) {
				break
			}
		} else if isTermDelimiter(ch) {
			break
		}
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node label missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *turtleCursor) isEmptyBrackets() bool {
	i := c.pos + 1
	for i < len(c.input) && strings.IndexByte(" \t\r\n", c.input[i]) >= 0 {
		i++
	}
	return i < len(c.input) && c.input[i] == ']'
}

func (c *turtleCursor) parseAnonymous() (Term, error) {
	if !c.isEmptyBrackets() {
		return c.parseBlankNodePropertyList()
	}
	c.pos++
	if err := c.expect(']'); err != nil {
		return nil, err
	}
	return c.newBlankNode(), nil
}

func (c *turtleCursor) parseBlankNodePropertyList() (Term, error) {
	if err := c.expect('['); err != nil {
		return nil, err
	}
	defer c.leave()
	if err := c.enter(); err != nil {
		return nil, err
	}
	node := c.newBlankNode()
	if err := c.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	if err := c.expect(']'); err != nil {
		return nil, err
	}
	return node, nil
}

func (c *turtleCursor) parseCollection() (Term, error) {
	if err := c.expect('('); err != nil {
		return nil, err
	}
	defer c.leave()
	if err := c.enter(); err != nil {
		return nil, err
	}
	var items []Term
	for {
		c.skipWS()
		if c.peek() == ')' {
			c.pos++
			break
		}
		item, err := c.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return IRI{Value: rdfNil}, nil
	}
	head := c.newBlankNode()
	node := head
	for i, item := range items {
		if err := c.emit(node, IRI{Value: rdfFirst}, item); err != nil {
			return nil, err
		}
		if i == len(items)-1 {
			if err := c.emit(node, IRI{Value: rdfRest}, IRI{Value: rdfNil}); err != nil {
				return nil, err
			}
			break
		}
		next := c.newBlankNode()
		if err := c.emit(node, IRI{Value: rdfRest}, next); err != nil {
			return nil, err
		}
		node = next
	}
	return head, nil
}

func (c *turtleCursor) newBlankNode() BlankNode {
	return c.blanks.next()
}

func (c *turtleCursor) parseLiteral() (Term, error) {
	quote := c.peek()
	long := c.peekAt(1) == quote && c.peekAt(2) == quote
	var raw string
	if long {
		c.pos += 3
		end := c.findLongEnd(quote)
		if end < 0 {
			return nil, c.errorf("unterminated long string")
		}
		raw = c.input[c.pos:end]
		c.pos = end + 3
	} else {
		c.pos++
		start := c.pos
		for {
			if c.eof() || c.input[c.pos] == '\n' || c.input[c.pos] == '\r' {
				return nil, c.errorf("unterminated string")
			}
			ch := c.input[c.pos]
			if ch == '\\' {
				c.pos += 2
				continue
			}
			if ch == quote {
				break
			}
			c.pos++
		}
		raw = c.input[start:c.pos]
		c.pos++
	}
	lexical, err := UnescapeString(raw)
	if err != nil {
		return nil, c.wrap(err)
	}

	switch {
	case c.peek() == '@':
		c.pos++
		start := c.pos
		for !c.eof() && (isNameStartRune(rune(c.input[c.pos])) || isASCIIDigit(rune(c.input[c.pos])) || c.input[c.pos] == '-') {
			c.pos++
		}
		lang := c.input[start:c.pos]
		if !isValidLangTag(lang) {
			return nil, c.errorf("invalid language tag %q", lang)
		}
		return NewLangLiteral(lexical, lang), nil
	case c.peek() == '^' && c.peekAt(1) == '^':
		c.pos += 2
		var dt IRI
		if c.peek() == '<' {
			dt, err = c.parseIRIRef()
		} else {
			dt, err = c.parsePrefixedName()
		}
		if err != nil {
			return nil, err
		}
		return NewTypedLiteral(lexical, dt), nil
	}
	return NewLiteral(lexical), nil
}

// findLongEnd returns the offset of the closing triple quote, honouring
// backslash escapes.
func (c *turtleCursor) findLongEnd(quote byte) int {
	for i := c.pos; i+2 < len(c.input); i++ {
		switch c.input[i] {
		case '\\':
			i++
		case quote:
			if c.input[i+1] == quote && c.input[i+2] == quote {
				// Quotes directly before the closing delimiter belong to the string.
				for i+3 < len(c.input) && c.input[i+3] == quote {
					i++
				}
				return i
			}
		}
	}
	return -1
}

// parseNumber reads an INTEGER, DECIMAL or DOUBLE token.
func (c *turtleCursor) parseNumber() (Term, error) {
	start := c.pos
	if ch := c.peek(); ch == '+' || ch == '-' {
		c.pos++
	}
	intDigits := c.digits()
	datatype := XSDInteger
	if c.peek() == '.' {
		next := c.peekAt(1)
		switch {
		case next >= '0' && next <= '9':
			c.pos++
			c.digits()
			datatype = XSDDecimal
		case (next == 'e' || next == 'E') && intDigits > 0:
			c.pos++
			datatype = XSDDecimal
		}
	}
	if ch := c.peek(); ch == 'e' || ch == 'E' {
		c.pos++
		if ch := c.peek(); ch == '+' || ch == '-' {
			c.pos++
		}
		if c.digits() == 0 {
			return nil, c.errorf("invalid exponent")
		}
		datatype = XSDDouble
	}
	lexical := c.input[start:c.pos]
	if !isIntegerLexical(lexical) && !isDecimalLexical(lexical) && !isDoubleLexical(lexical) {
		c.pos = start
		return nil, c.errorf("invalid number")
	}
	return NewTypedLiteral(lexical, IRI{Value: datatype}), nil
}

func (c *turtleCursor) digits() int {
	n := countDigits(c.input[c.pos:])
	c.pos += n
	return n
}

// isTermDelimiter reports whether ch ends a name or keyword token.
func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '<', '>', '"', '\'', '(', ')', '[', ']', '{', '}', ',', ';', '#', '^':
		return true
	default:
		return false
	}
}

func (c *turtleCursor) errorf(format string, args ...any) error {
	return c.wrap(fmt.Errorf(format, args...))
}

// wrap attaches the current line and column to err.
func (c *turtleCursor) wrap(err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	pos := min(c.pos, len(c.input))
	lineStart := strings.LastIndexByte(c.input[:pos], '\n') + 1
	lineEnd := strings.IndexByte(c.input[pos:], '\n')
	if lineEnd < 0 {
		lineEnd = len(c.input)
	} else {
		lineEnd += pos
	}
	return &ParseError{
		Format:    string(FormatTurtle),
		Statement: c.input[lineStart:lineEnd],
		Line:      strings.Count(c.input[:lineStart], "\n") + 1,
		Column:    pos - lineStart + 1,
		Err:       err,
	}
}
