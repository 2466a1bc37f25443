// Package passwords implements the structural password policy that every
// credential write must pass.
package passwords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate reports whether password satisfies the policy:
//
//   - the first character is an uppercase letter,
//   - the string contains at least one '@',
//   - the string contains at least one decimal digit.
//
// An empty password is always rejected. The function is pure and imposes no
// length limit or character-set restriction beyond the rules above.
func Validate(password string) bool {
	if password == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(password)
	if !unicode.IsUpper(first) {
		return false
	}

	if !strings.ContainsRune(password, '@') {
		return false
	}

	return strings.ContainsFunc(password, unicode.IsDigit)
}
