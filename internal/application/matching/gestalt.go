// Package matching reconciles AI-suggested ingredient and recipe names with a
// household's existing catalog using gestalt pattern matching.
package matching

// Similarity returns the Ratcliff/Obershelp similarity of two strings in
// [0, 1]. It finds the longest common substring, recurses on the pieces to
// either side, and returns 2*matches/(len(a)+len(b)). Inputs are compared
// as-is; callers normalize case beforehand.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	m := commonChars([]rune(a), []rune(b))
	return 2.0 * float64(m) / float64(len([]rune(a))+len([]rune(b)))
}

// commonChars counts the characters matched by recursively splitting around
// the longest common substring.
func commonChars(a, b []rune) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += commonChars(a[:ai], b[:bi])
	total += commonChars(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonSubstring returns the start offsets and length of the longest
// run of runes common to a and b. Earlier positions win ties.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] holds the run length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
