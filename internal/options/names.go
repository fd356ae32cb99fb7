package options

import "strings"

var (
	snakeReplacer  = strings.NewReplacer(" ", "_", "-", "_")
	hyphenReplacer = strings.NewReplacer(" ", "-", "_", "-")
)

// SnakeCase lowercases s and replaces spaces and hyphens with underscores.
func SnakeCase(s string) string {
	return snakeReplacer.Replace(strings.ToLower(s))
}

// Hyphenated lowercases s and replaces spaces and underscores with hyphens.
func Hyphenated(s string) string {
	return hyphenReplacer.Replace(strings.ToLower(s))
}
