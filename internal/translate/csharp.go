package translate

import "strings"

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote renders s as a C# regular string literal.
func quote(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

var commentEscaper = strings.NewReplacer(
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// commentSafe keeps s on a single line so it can sit inside a // comment.
func commentSafe(s string) string {
	return commentEscaper.Replace(s)
}
