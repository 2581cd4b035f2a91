package core

import "strings"

// Tokenize splits one command line into its argument vector. Fields are
// separated by runs of whitespace and empty fields are dropped; a blank
// line yields an empty vector. No quoting or escaping is honored.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
