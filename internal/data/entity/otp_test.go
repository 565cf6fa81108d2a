package entity

import (
	"testing"
	"time"
)

func TestPasswordResetOTPIsExpired(t *testing.T) {
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	otp := &PasswordResetOTP{
		BaseSimple: BaseSimple{CreatedAt: created},
	}
	window := 10 * time.Minute

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just issued", created, false},
		{"inside window", created.Add(9 * time.Minute), false},
		{"exactly at window", created.Add(10 * time.Minute), false},
		{"just past window", created.Add(10*time.Minute + time.Second), true},
		{"long past window", created.Add(24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := otp.IsExpired(tt.now, window); got != tt.want {
				t.Errorf("IsExpired(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
