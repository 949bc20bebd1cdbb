package dispatchers

import "strings"

const maxSuggestionDistance = 3

// SuggestSwitch returns the long-form switch name closest to input, or the
// empty string when nothing is plausibly close. Used to build did-you-mean
// hints on unrecognized switches.
func SuggestSwitch(input string, table []Switch) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, sw := range table {
		d := levenshtein(input, sw.Name)
		if d < bestDistance {
			best = sw.Name
			bestDistance = d
		}
	}
	return best
}

// levenshtein calculates the edit distance between two strings.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
