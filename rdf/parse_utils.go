package rdf

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var errInvalidEscape = errors.New("invalid escape sequence")

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isValidPNLocalEscape(ch byte) bool {
	switch ch {
	case '_', '~', '.', '-', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '/', '?', '#', '@', '%':
		return true
	default:
		return false
	}
}

// isValidLangTag matches [a-zA-Z]+ ('-' [a-zA-Z0-9]+)*.
func isValidLangTag(tag string) bool {
	for i, part := range strings.Split(tag, "-") {
		if part == "" {
			return false
		}
		for j := 0; j < len(part); j++ {
			ch := part[j]
			letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
			if !letter && (i == 0 || ch < '0' || ch > '9') {
				return false
			}
		}
	}
	return true
}

// decodeUChar decodes 4 or 8 hex digits. It returns -1 for malformed input.
func decodeUChar(hex string) rune {
	if len(hex) != 4 && len(hex) != 8 {
		return -1
	}
	var cp rune
	for i := 0; i < len(hex); i++ {
		ch := hex[i]
		var digit rune
		switch {
		case ch >= '0' && ch <= '9':
			digit = rune(ch - '0')
		case ch >= 'a' && ch <= 'f':
			digit = rune(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			digit = rune(ch-'A') + 10
		default:
			return -1
		}
		cp = cp*16 + digit
	}
	return cp
}

// readUChar decodes the \u or \U escape at s[pos:] and returns the rune and
// the number of bytes consumed. Surrogate pairs written as two \u escapes
// are combined.
func readUChar(s string, pos int) (rune, int, error) {
	size := 6
	if s[pos+1] == 'U' {
		size = 10
	}
	if pos+size > len(s) {
		return 0, 0, errInvalidEscape
	}
	cp := decodeUChar(s[pos+2 : pos+size])
	switch {
	case cp < 0:
		return 0, 0, errInvalidEscape
	case size == 6 && cp >= 0xD800 && cp <= 0xDBFF:
		if pos+12 > len(s) || s[pos+6] != '\\' || s[pos+7] != 'u' {
			return 0, 0, errInvalidEscape
		}
		low := decodeUChar(s[pos+8 : pos+12])
		if low < 0xDC00 || low > 0xDFFF {
			return 0, 0, errInvalidEscape
		}
		return 0x10000 + (cp-0xD800)<<10 + (low - 0xDC00), 12, nil
	case cp >= 0xD800 && cp <= 0xDFFF, cp > utf8.MaxRune:
		return 0, 0, errInvalidEscape
	}
	return cp, size, nil
}

// UnescapeString decodes the escape sequences allowed in Turtle string
// literals: \t \b \n \r \f \" \' \\ and \uXXXX / \UXXXXXXXX.
func UnescapeString(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for pos := 0; pos < len(s); {
		ch := s[pos]
		if ch != '\\' {
			b.WriteByte(ch)
			pos++
			continue
		}
		if pos+1 >= len(s) {
			return "", errInvalidEscape
		}
		switch s[pos+1] {
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case '"', '\'', '\\':
			b.WriteByte(s[pos+1])
		case 'u', 'U':
			r, n, err := readUChar(s, pos)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			pos += n
			continue
		default:
			return "", errInvalidEscape
		}
		pos += 2
	}
	return b.String(), nil
}
