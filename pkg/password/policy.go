package password

import (
	"fmt"
	"strings"
	"unicode"
)

// symbols accepted by the complexity rule.
const symbolSet = `!@#$%^&*(),.?":{}|<>`

// commonPasswords is a small deny-list of passwords seen in breach dumps.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"qwertyuiop":  {},
	"letmein123":  {},
	"iloveyou1":   {},
	"admin12345":  {},
	"welcome123":  {},
}

// Policy validates candidate passwords against organizational rules.
type Policy struct {
	MinLength int
}

func NewPolicy(minLength int) *Policy {
	if minLength <= 0 {
		minLength = 8
	}
	return &Policy{MinLength: minLength}
}

// Validate returns every violated rule as a human-readable reason.
// An empty slice means the password is acceptable. Attributes are
// user identifiers (username, email) the password must not resemble.
func (p *Policy) Validate(candidate string, attributes ...string) []string {
	var reasons []string

	if len(candidate) < p.MinLength {
		reasons = append(reasons, fmt.Sprintf("Password must be at least %d characters long.", p.MinLength))
	}

	hasLetter := false
	hasDigit := false
	hasSymbol := false
	allDigits := len(candidate) > 0

	for _, r := range candidate {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
			allDigits = false
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(symbolSet, r):
			hasSymbol = true
			allDigits = false
		default:
			allDigits = false
		}
	}

	if !(hasLetter && (hasDigit || hasSymbol)) {
		reasons = append(reasons, "Password must contain letters and numbers or letters and symbols.")
	}

	if allDigits {
		reasons = append(reasons, "Password cannot be entirely numeric.")
	}

	lowered := strings.ToLower(candidate)

	if _, found := commonPasswords[lowered]; found {
		reasons = append(reasons, "Password is too common.")
	}

	for _, attr := range attributes {
		if tooSimilar(lowered, strings.ToLower(attr)) {
			reasons = append(reasons, "Password is too similar to your account details.")
			break
		}
	}

	return reasons
}

// tooSimilar reports whether the password contains (or is contained by)
// a significant chunk of the attribute, e.g. username "jsmith" inside
// password "jsmith2024".
func tooSimilar(password, attribute string) bool {
	if attribute == "" || len(password) < 4 {
		return false
	}

	// For emails only the local part matters
	if at := strings.IndexByte(attribute, '@'); at > 0 {
		attribute = attribute[:at]
	}
	if len(attribute) < 4 {
		return false
	}

	return strings.Contains(password, attribute) || strings.Contains(attribute, password)
}
