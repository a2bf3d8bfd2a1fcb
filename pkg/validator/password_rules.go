package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	// Anything outside ASCII letters and digits counts as a special character,
	// including accented letters and spaces.
	specialCharRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordStrength is an advisory classification of a password.
type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "weak"
	PasswordMedium PasswordStrength = "medium"
	PasswordStrong PasswordStrength = "strong"
)

// MaxPasswordScore is the highest value PasswordScore can return.
const MaxPasswordScore = 6

// PasswordScore awards one point each for: length of at least 8, length of at
// least 12, a lowercase letter, an uppercase letter, a digit, and a character
// that is neither an ASCII letter nor a digit.
func PasswordScore(password string) int {
	score := 0

	length := utf8.RuneCountInString(password)
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}

	if lowercaseRegex.MatchString(password) {
		score++
	}
	if uppercaseRegex.MatchString(password) {
		score++
	}
	if digitRegex.MatchString(password) {
		score++
	}
	if specialCharRegex.MatchString(password) {
		score++
	}

	return score
}

// StrengthOf maps PasswordScore onto weak (0-2), medium (3-4) and strong (5-6).
func StrengthOf(password string) PasswordStrength {
	switch score := PasswordScore(password); {
	case score <= 2:
		return PasswordWeak
	case score <= 4:
		return PasswordMedium
	default:
		return PasswordStrong
	}
}
