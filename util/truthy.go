package util

import "strings"

// Truthy reports whether s is one of the usual env var spellings of
// true: true, 1, yes or on, in any case and surrounded by whitespace.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}

	return false
}
