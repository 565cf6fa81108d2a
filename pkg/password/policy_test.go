package password

import (
	"strings"
	"testing"
)

func TestValidateAcceptsStrongPasswords(t *testing.T) {
	policy := NewPolicy(8)

	tests := []string{
		"Tr4ck-Ship-2026",
		"correct horse 9",
		"s3cure!pass",
		"LettersAnd123",
	}

	for _, candidate := range tests {
		if reasons := policy.Validate(candidate); len(reasons) > 0 {
			t.Errorf("Validate(%q) = %v, want no reasons", candidate, reasons)
		}
	}
}

func TestValidateRejectsWeakPasswords(t *testing.T) {
	policy := NewPolicy(8)

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"too short", "Ab1!", "at least 8 characters"},
		{"entirely numeric", "84629175302", "entirely numeric"},
		{"letters only", "justsomeletters", "letters and numbers"},
		{"digits and symbols only", "12345!@#", "letters and numbers"},
		{"common password", "Password123", "too common"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := policy.Validate(tt.candidate)
			if len(reasons) == 0 {
				t.Fatalf("Validate(%q) accepted a weak password", tt.candidate)
			}
			found := false
			for _, reason := range reasons {
				if strings.Contains(reason, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Validate(%q) = %v, want a reason containing %q", tt.candidate, reasons, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	policy := NewPolicy(8)

	// Short and entirely numeric and missing letters: three rules at once
	reasons := policy.Validate("1234")
	if len(reasons) != 3 {
		t.Errorf("expected 3 reasons, got %d: %v", len(reasons), reasons)
	}
}

func TestValidateRejectsSimilarToAttributes(t *testing.T) {
	policy := NewPolicy(8)

	tests := []struct {
		name       string
		candidate  string
		attributes []string
		wantReject bool
	}{
		{"contains username", "jsmith2026!", []string{"jsmith", "jsmith@example.com"}, true},
		{"contains email local part", "my-jsmith-pw1", []string{"other", "jsmith@example.com"}, true},
		{"case insensitive", "JSMITH2026!", []string{"jsmith"}, true},
		{"unrelated", "Tr4ck-Ship-2026", []string{"jsmith", "jsmith@example.com"}, false},
		{"short attribute ignored", "abcdef123", []string{"ab"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := policy.Validate(tt.candidate, tt.attributes...)
			rejected := false
			for _, reason := range reasons {
				if strings.Contains(reason, "too similar") {
					rejected = true
				}
			}
			if rejected != tt.wantReject {
				t.Errorf("Validate(%q, %v): similarity rejected=%v, want %v (reasons: %v)",
					tt.candidate, tt.attributes, rejected, tt.wantReject, reasons)
			}
		})
	}
}

func TestNewPolicyDefaultsMinLength(t *testing.T) {
	if p := NewPolicy(0); p.MinLength != 8 {
		t.Errorf("NewPolicy(0).MinLength = %d, want 8", p.MinLength)
	}
	if p := NewPolicy(12); p.MinLength != 12 {
		t.Errorf("NewPolicy(12).MinLength = %d, want 12", p.MinLength)
	}
}
