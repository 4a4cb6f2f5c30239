package common

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alice@example.com", "alice@example.com"},
		{"  alice@example.com  ", "alice@example.com"},
		{"alice@example.com\n", "alice@example.com"},
		{"alice@example.com\r\n", "alice@example.com"},
		{"Alice@Example.com", "Alice@Example.com"}, // Case preserved
		{"", ""},
		{" \t\n", ""},
	}

	for _, test := range tests {
		result := NormalizeEmail(test.input)
		if result != test.expected {
			t.Errorf("NormalizeEmail(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
