package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NewNotFound("no account"), KindNotFound},
		{"sequence", NewSequence("flow not started"), KindSequence},
		{"invalid code", NewInvalidCode("invalid OTP"), KindInvalidCode},
		{"expired", NewExpired("OTP expired"), KindExpired},
		{"mismatch", NewMismatch("passwords do not match"), KindMismatch},
		{"validation", NewValidation("weak password", []string{"too short"}), KindValidation},
		{"internal", NewInternal("boom", errors.New("cause")), KindInternal},
		{"plain error", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewExpired("OTP expired"))

	if !IsKind(err, KindExpired) {
		t.Error("Kind should be detectable through fmt.Errorf wrapping")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("failed to process request", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestErrorMessageIncludesReasons(t *testing.T) {
	err := NewValidation("password does not meet requirements", []string{"too short", "too common"})

	msg := err.Error()
	want := "password does not meet requirements: too short; too common"
	if msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}

func TestReasonsOf(t *testing.T) {
	err := NewValidation("weak", []string{"too short"})

	reasons := ReasonsOf(fmt.Errorf("wrapped: %w", err))
	if len(reasons) != 1 || reasons[0] != "too short" {
		t.Errorf("ReasonsOf() = %v, want [too short]", reasons)
	}

	if reasons := ReasonsOf(errors.New("plain")); reasons != nil {
		t.Errorf("ReasonsOf(plain) = %v, want nil", reasons)
	}
}
