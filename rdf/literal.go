package rdf

import "strings"

// FormatLiteral renders lit as a Turtle token. Integer, decimal, double and
// boolean literals with a well-formed lexical form are written bare; every
// other literal is written as a quoted string followed by its language tag
// or datatype. A malformed language tag is dropped. formatIRI renders the
// datatype IRI and may abbreviate it.
func FormatLiteral(lit Literal, formatIRI func(IRI) string) string {
	if token, ok := bareLiteral(lit); ok {
		return token
	}
	quoted := quoteString(lit.Lexical)
	if lit.Lang != "" {
		if !isValidLangTag(lit.Lang) {
			return quoted
		}
		return quoted + "@" + lit.Lang
	}
	if dt := lit.Datatype.Value; dt != "" && dt != XSDString {
		if formatIRI == nil {
			return quoted + "^^<" + dt + ">"
		}
		return quoted + "^^" + formatIRI(lit.Datatype)
	}
	return quoted
}

// bareLiteral returns the shorthand token for lit, if it has one.
func bareLiteral(lit Literal) (string, bool) {
	if lit.Lang != "" {
		return "", false
	}
	lexical := lit.Lexical
	switch lit.Datatype.Value {
	case XSDInteger:
		if isIntegerLexical(lexical) {
			return lexical, true
		}
	case XSDDecimal:
		if isDecimalLexical(lexical) {
			return lexical, true
		}
	case XSDBoolean:
		if lexical == "true" || lexical == "false" {
			return lexical, true
		}
	case XSDDouble:
		if isDoubleLexical(lexical) || isIntegerLexical(lexical) || isDecimalLexical(lexical) || isTrailingPointLexical(lexical) {
			return DoubleLexical(lexical), true
		}
	}
	return "", false
}

// DoubleLexical applies the double shorthand rule to lexical: a form that
// already has an exponent is returned unchanged, a form with a decimal point
// gets "e0" appended, and an integer form gets ".0e0" appended.
func DoubleLexical(lexical string) string {
	if strings.ContainsAny(lexical, "eE") {
		return lexical
	}
	if strings.Contains(lexical, ".") {
		return lexical + "e0"
	}
	return lexical + ".0e0"
}

// isIntegerLexical matches [+-]?[0-9]+.
func isIntegerLexical(s string) bool {
	s = trimSign(s)
	return s != "" && countDigits(s) == len(s)
}

// isDecimalLexical matches [+-]?[0-9]*\.[0-9]+.
func isDecimalLexical(s string) bool {
	s = trimSign(s)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return false
	}
	frac := s[dot+1:]
	return countDigits(s[:dot]) == dot && frac != "" && countDigits(frac) == len(frac)
}

// isTrailingPointLexical matches [+-]?[0-9]+\. which is a valid double
// mantissa but not a valid decimal token.
func isTrailingPointLexical(s string) bool {
	s = trimSign(s)
	return len(s) > 1 && s[len(s)-1] == '.' && countDigits(s[:len(s)-1]) == len(s)-1
}

// isDoubleLexical matches the Turtle DOUBLE production:
// [+-]? ([0-9]+ '.' [0-9]* EXPONENT | '.' [0-9]+ EXPONENT | [0-9]+ EXPONENT).
func isDoubleLexical(s string) bool {
	s = trimSign(s)
	e := strings.IndexAny(s, "eE")
	if e < 0 {
		return false
	}
	mantissa, exponent := s[:e], trimSign(s[e+1:])
	if exponent == "" || countDigits(exponent) != len(exponent) {
		return false
	}
	dot := strings.IndexByte(mantissa, '.')
	if dot < 0 {
		return mantissa != "" && countDigits(mantissa) == len(mantissa)
	}
	intPart, frac := mantissa[:dot], mantissa[dot+1:]
	if countDigits(intPart) != len(intPart) || countDigits(frac) != len(frac) {
		return false
	}
	return intPart != "" || frac != ""
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

// countDigits returns the length of the leading run of ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// quoteString writes s as a STRING_LITERAL_QUOTE.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
