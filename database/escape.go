package database

import (
	"regexp"
	"strings"
)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeLiteral escapes s for use inside a double quoted SPARQL string literal.
func EscapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// EscapeRegex escapes s so it matches literally inside a SPARQL regex() pattern.
func EscapeRegex(s string) string {
	return EscapeLiteral(regexp.QuoteMeta(s))
}
