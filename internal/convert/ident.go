package convert

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Ident turns a test case or file name into a C# identifier: characters
// outside letters, digits and '_' become '_', and a leading digit gets a
// '_' prefix. An empty name becomes "Unnamed".
func Ident(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	s := b.String()
	if s == "" {
		return "Unnamed"
	}
	if unicode.IsDigit([]rune(s)[0]) {
		s = "_" + s
	}
	return s
}

// BaseName strips directory and extension from a file path.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
