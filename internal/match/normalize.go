package match

import (
	"strings"

	"modelgen/internal/naming"
)

// NormalizeIdent normalizes an identifier for fuzzy matching:
// it is split into words on delimiters and case humps, then the words
// are lowercased and concatenated.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := naming.Tokens(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
