package dfs

import (
	"strings"
)

// JoinSig joins a cycle into its comma-separated signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically smallest rotation of s as a
// new slice (Booth's algorithm, O(n)). s is not modified.
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return []string{}
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	// fail[i] is the failure link of the match of length i+1 starting at k.
	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] == doubled[k+i+1] {
			fail[j-k] = i + 1
			continue
		}
		if doubled[j] < doubled[k] {
			k = j
		}
		fail[j-k] = -1
	}

	return append([]string(nil), doubled[k:k+n]...)
}
