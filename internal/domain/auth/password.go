package auth

import (
	"strings"
	"unicode"

	"payroll/internal/transport/http/shared"
)

const passwordSpecials = "@#$%^&+="

// PasswordStrength reports which character classes a password contains.
type PasswordStrength struct {
	HasNumber  bool
	HasUpper   bool
	HasLower   bool
	HasSpecial bool
}

func (p PasswordStrength) OK() bool {
	return p.HasNumber && p.HasUpper && p.HasLower && p.HasSpecial
}

func CheckPasswordStrength(password string) PasswordStrength {
	var out PasswordStrength
	for _, r := range password {
		switch {
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			out.HasNumber = true
		case r >= 'A' && r <= 'Z':
			out.HasUpper = true
		case r >= 'a' && r <= 'z':
			out.HasLower = true
		case strings.ContainsRune(passwordSpecials, r):
			out.HasSpecial = true
		}
	}
	return out
}

func validatePasswordPair(v *shared.Validator, field, password, confirmField, confirm string) {
	if password != confirm {
		v.Add(confirmField, "must match "+field)
	}
}
