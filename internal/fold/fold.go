// Package fold compares user-typed names without regard to case.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s.
func String(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b match ignoring case.
func Equal(a, b string) bool {
	return String(a) == String(b)
}

// HasPrefix reports whether s starts with prefix ignoring case.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(String(s), String(prefix))
}
