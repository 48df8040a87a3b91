// Package similarity implements the character-overlap text similarity used by
// the matching engine to compare statement-line descriptions and references
// against internal transaction text.
//
// The metric finds the longest common substring of the two inputs, then
// recursively repeats on the unmatched prefixes and suffixes. The score is the
// total number of matched characters, normalized to [0,1] against the combined
// input length.
package similarity

import "strings"

// Ratio returns the similarity between a and b in [0,1]. The comparison is
// case-insensitive. Two empty strings are considered identical.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	matched := commonChars(a, b)
	return float64(2*matched) / float64(len(a)+len(b))
}

func commonChars(a, b string) int {
	posA, posB, max := longestCommonSubstring(a, b)
	if max == 0 {
		return 0
	}

	sum := max
	if posA > 0 && posB > 0 {
		sum += commonChars(a[:posA], b[:posB])
	}
	if posA+max < len(a) && posB+max < len(b) {
		sum += commonChars(a[posA+max:], b[posB+max:])
	}

	return sum
}

func longestCommonSubstring(a, b string) (posA, posB, max int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			length := 0
			for i+length < len(a) && j+length < len(b) && a[i+length] == b[j+length] {
				length++
			}
			if length > max {
				posA, posB, max = i, j, length
			}
		}
	}
	return posA, posB, max
}
