package merger

// ratio is a difflib-style sequence similarity: twice the total length
// of matching blocks divided by the combined length. Symmetric, in
// [0, 1], and 1.0 for equal inputs.
func ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2 * float64(matchingBlocks(a, b)) / float64(total)
}

// matchingBlocks sums the lengths of matching blocks found by
// recursively taking the longest common substring and matching the
// pieces on either side of it.
func matchingBlocks(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingBlocks(a[:ai], b[:bi]) +
		matchingBlocks(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning
// its start offsets and length. Earliest match in a wins ties.
func longestMatch(a, b string) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0

	// prev[j] holds the match length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestSize {
					bestSize = curr[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return bestA, bestB, bestSize
}
