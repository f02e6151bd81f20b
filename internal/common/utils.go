package common

import "strings"

// AnyBlank reports whether any entry is empty or whitespace only.
func AnyBlank(ss []string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}

// LooksLikeFlag reports whether a token carries a flag prefix.
func LooksLikeFlag(s string) bool {
	return strings.HasPrefix(s, "-")
}
