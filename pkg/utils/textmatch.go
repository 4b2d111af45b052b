package utils

import "strings"

// NormalizeText case-folds and collapses whitespace so "  Da  Lat " and
// "da lat" compare equal.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Tokens splits a free-text place or theme name into normalized word tokens.
func Tokens(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// FuzzyMatch reports whether a and b refer to the same thing, by normalized
// substring containment in either direction ("Paris" vs "Paris, France") or
// full token overlap one way ("ha long bay" vs "Bay of Ha Long").
func FuzzyMatch(a, b string) bool {
	na, nb := NormalizeText(a), NormalizeText(b)
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	return tokenSubset(Tokens(a), Tokens(b)) || tokenSubset(Tokens(b), Tokens(a))
}

// MatchesAny reports whether needle fuzzy-matches at least one haystack entry.
func MatchesAny(needle string, haystack []string) bool {
	for _, h := range haystack {
		if FuzzyMatch(needle, h) {
			return true
		}
	}
	return false
}

func tokenSubset(sub, super []string) bool {
	if len(sub) == 0 {
		return false
	}
	set := make(map[string]bool, len(super))
	for _, t := range super {
		set[t] = true
	}
	for _, t := range sub {
		if !set[t] {
			return false
		}
	}
	return true
}
