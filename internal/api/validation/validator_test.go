package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jo@x.com", true},
		{"alice@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@x.c", true}, // permissive on purpose
		{"user@", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
