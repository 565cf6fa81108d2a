package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== RESET CODE ====================

const (
	resetCodeMin = 100000
	resetCodeMax = 999999
)

// GenerateResetCode returns a 6-digit code uniform over [100000, 999999].
// Codes never carry a leading zero.
func GenerateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeMax-resetCodeMin+1))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken
		panic(fmt.Sprintf("generate reset code: %v", err))
	}

	return fmt.Sprintf("%06d", resetCodeMin+n.Int64())
}
