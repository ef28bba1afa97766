// Package validate holds the contact form checks. All functions are pure.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Field keys used in Result.Errors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Error messages shown next to the offending field.
const (
	MsgName    = "Name must be at least 2 characters long"
	MsgEmail   = "Please enter a valid email address"
	MsgMessage = "Message must be at least 10 characters long"
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

// ws is the ECMAScript \s class. Go's \s only covers ASCII spacing, which
// would accept addresses a browser rejects.
const ws = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// emailRe is intentionally permissive: local@domain.tld with no whitespace or
// extra '@' in any part, no length limits and no label checks.
var emailRe = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Fields is the contact form input.
type Fields struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Message string `yaml:"message"`
}

// Result is the outcome of Form. Errors maps field key to message and is
// empty, never nil, when Valid is true.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// Form checks every field and collects one message per invalid field.
func Form(f Fields) Result {
	errs := make(map[string]string)

	if trimmedLen(f.Name) < minNameLen {
		errs[FieldName] = MsgName
	}
	if !Email(f.Email) {
		errs[FieldEmail] = MsgEmail
	}
	if trimmedLen(f.Message) < minMessageLen {
		errs[FieldMessage] = MsgMessage
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// isSpace matches the ECMAScript whitespace and line terminator set used by
// String.prototype.trim. Unlike unicode.IsSpace it includes U+FEFF and
// excludes U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// trimmedLen counts UTF-16 code units after trimming, the way a browser
// measures a trimmed input value.
func trimmedLen(s string) int {
	return len(utf16.Encode([]rune(strings.TrimFunc(s, isSpace))))
}
