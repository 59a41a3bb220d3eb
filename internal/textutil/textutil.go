// Package textutil contains small string helpers used when naming and
// printing components.
package textutil

import (
	"fmt"
	"strings"
)

// DefaultString returns s unless it is empty, in which case it returns def.
func DefaultString(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// UniquifyString returns s if it is not in set. Otherwise it appends "_1",
// "_2", ... up to len(set) and returns the first candidate missing from set.
func UniquifyString(s string, set map[string]struct{}) (string, error) {
	if _, taken := set[s]; !taken {
		return s, nil
	}
	for i := 1; i <= len(set); i++ {
		candidate := fmt.Sprintf("%s_%d", s, i)
		if _, taken := set[candidate]; !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to uniquify string: %s", s)
}

// StripToken removes every whitespace-delimited occurrence of token from s and
// collapses the remaining tokens with single spaces.
func StripToken(s, token string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f != token {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Join concatenates tokens with sep, skipping empty tokens.
func Join(tokens []string, sep string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(tok)
	}
	return b.String()
}
