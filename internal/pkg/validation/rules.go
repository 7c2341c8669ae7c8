package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Student identifier pattern - exactly 8 digits
	SIDPattern = `^\d{8}$`

	// Phone and guardian contact pattern - exactly 10 digits
	PhonePattern = `^\d{10}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	SID   *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	SID:   regexp.MustCompile(SIDPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidSID reports whether the value is an 8 digit student identifier.
func IsValidSID(sid string) bool {
	return CompiledPatterns.SID.MatchString(sid)
}

// IsValidPhone reports whether the value is a 10 digit phone number.
// Guardian contacts share this rule.
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
