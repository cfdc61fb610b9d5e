package rdf

import "testing"

func TestValidateNamespace(t *testing.T) {
	valid := []string{
		"#",
		"http://example.org/",
		"https://example.org/ns#",
		"urn:isbn:",
		"http://例え.jp/",
	}
	for _, ns := range valid {
		if err := ValidateNamespace(ns); err != nil {
			t.Errorf("ValidateNamespace(%q) = %v, want nil", ns, err)
		}
	}

	invalid := []string{
		"",
		"example.org/",
		"//example.org/",
		"http://example.org/a b",
		"http://example.org/<x>",
		"http://example.org/{x}",
	}
	for _, ns := range invalid {
		if err := ValidateNamespace(ns); err == nil {
			t.Errorf("ValidateNamespace(%q) = nil, want error", ns)
		}
	}
}
