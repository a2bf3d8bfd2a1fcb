package sanitizer

import "strings"

// ExtractEmailDomain returns the lowercased part after the first '@', or an
// empty string when there is no '@'.
func ExtractEmailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return strings.ToLower(domain)
}

// KeepPhoneChars strips every character except ASCII digits and a single '+'
// that precedes the first digit, e.g. "+91 (987) 654-3210" → "+919876543210".
func KeepPhoneChars(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))

	seenDigit := false
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			b.WriteRune(r)
		case r == '+' && !seenDigit && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
