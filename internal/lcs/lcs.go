// Package lcs finds longest common prefixes and suffixes of strings. It backs
// "did you mean" hints for misspelled keywords.
package lcs

import (
	"slices"
)

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	// The common prefix of the lexicographically smallest and largest strings
	// is shared by everything in between.
	lo := slices.Min(ss)
	hi := slices.Max(ss)

	for i := range []byte(lo) {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}

// CommonSuffix returns the longest common suffix of the strings in ss.
func CommonSuffix(ss []string) string {
	reversed := make([]string, len(ss))
	for i, s := range ss {
		reversed[i] = reverse(s)
	}
	return reverse(CommonPrefix(reversed))
}

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

// Suggest returns the candidate which looks most like s, judged by the length
// of the common prefix and suffix they share. It reports false when no
// candidate shares at least two bytes and half of s. Earlier candidates win
// ties.
func Suggest(s string, candidates []string) (string, bool) {
	best, bestScore := "", 0
	for _, c := range candidates {
		pair := []string{s, c}
		score := len(CommonPrefix(pair)) + len(CommonSuffix(pair))
		score = min(score, len(s), len(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < 2 || bestScore*2 < len(s) {
		return "", false
	}
	return best, true
}
