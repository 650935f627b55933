// Package textmatch provides name comparison helpers for matching
// free-text names from external feeds against stored records.
package textmatch

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Normalize lowercases a name and collapses runs of whitespace so that
// "  FC   Barcelona " and "fc barcelona" compare equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Equal reports whether two names are the same after normalization.
func Equal(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}

// Contains reports whether either normalized name contains the other.
func Contains(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// Ratio returns the normalized Levenshtein similarity of two names in
// [0, 1], where 1 means identical after normalization.
func Ratio(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" && nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}

	distance := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(distance)/float64(longest)
}
