package auth

import (
	"strings"
	"unicode"
)

const maxNameLength = 100

// SanitizeName trims a display name, strips control characters, and caps
// its length.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name
}
