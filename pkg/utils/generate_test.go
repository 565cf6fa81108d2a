package utils

import (
	"strconv"
	"testing"
)

func TestGenerateResetCodeShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateResetCode()

		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside [100000, 999999]", n)
		}
	}
}

func TestGenerateResetCodeVaries(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[GenerateResetCode()] = struct{}{}
	}

	// 50 draws from 900000 values colliding down to a single code would
	// mean the RNG is not advancing.
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct over 50 draws", len(seen))
	}
}

func TestParseUUIDRoundTrip(t *testing.T) {
	id := GenerateUUID()

	parsed, err := ParseUUID(id.String())
	if err != nil {
		t.Fatalf("ParseUUID(%q) failed: %v", id.String(), err)
	}
	if parsed != id {
		t.Errorf("ParseUUID round trip mismatch: %s != %s", parsed, id)
	}

	if _, err := ParseUUID("not-a-uuid"); err == nil {
		t.Error("ParseUUID should reject malformed input")
	}
}
