package rdf

import "testing"

func TestUnescapeString(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plain`, "plain"},
		{`a\tb\nc\rd\be\ff`, "a\tb\nc\rd\be\ff"},
		{`\"\'\\`, "\"'\\"},
		{`café`, "café"},
		{`\U0001F600`, "\U0001F600"},
		{`\uD83D\uDE00`, "\U0001F600"},
		{`mixed A\U00000042`, "mixed AB"},
	}
	for _, c := range cases {
		got, err := UnescapeString(c.in)
		if err != nil {
			t.Fatalf("UnescapeString(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("UnescapeString(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	for _, in := range []string{`\q`, `\`, `\u12`, `\uZZZZ`, `\uD83D`, `\uDE00`, `\U00110000`} {
		if _, err := UnescapeString(in); err == nil {
			t.Fatalf("UnescapeString(%q): expected error", in)
		}
	}
}

func TestIsValidLangTag(t *testing.T) {
	for _, tag := range []string{"en", "en-US", "zh-Hant-TW", "x-private1"} {
		if !isValidLangTag(tag) {
			t.Errorf("expected %q to be valid", tag)
		}
	}
	for _, tag := range []string{"", "1en", "en-", "en--us", "en_US"} {
		if isValidLangTag(tag) {
			t.Errorf("expected %q to be invalid", tag)
		}
	}
}
