package rdf

import (
	"unicode"
	"unicode/utf8"
)

// IsValidLocalName reports whether s can follow "prefix:" in a prefixed name
// without escaping. The accepted set is deliberately narrower than Turtle's
// PN_LOCAL: letters, digits, '_' and '-' only, so '/', '.', '%' and the other
// escapable characters always force the bracketed form. Empty names are
// rejected.
func IsValidLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '-' {
			if i == 0 {
				return false
			}
			continue
		}
		if !isNameStartRune(r) && !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

// isValidPrefixLabel reports whether label is a valid PN_PREFIX, or empty.
func isValidPrefixLabel(label string) bool {
	if label == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(label)
	if first == '_' || !isNameStartRune(first) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(label)
	if last == '.' {
		return false
	}
	for _, r := range label {
		if r == '.' || r == '-' || isNameStartRune(r) || isASCIIDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isNameStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_'
	}
	return unicode.IsLetter(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
