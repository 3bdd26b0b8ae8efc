package game

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (unmatched) secret letters.
//
// Pass 2:
//   - For each non-correct guess letter: if the tally for that letter is
//     positive, mark Misplaced and decrement; otherwise mark Absent.
//
// For any letter, Correct+Misplaced never exceeds its count in the secret.
// Both words must have the same number of runes.
func Score(secret, guess string) []Mark {
	s := []rune(secret)
	g := []rune(guess)
	res := make([]Mark, len(g))

	remaining := make(map[rune]int, len(s))
	for i := range g {
		if g[i] == s[i] {
			res[i] = MarkCorrect
		} else {
			remaining[s[i]]++
		}
	}

	for i := range g {
		if res[i] == MarkCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = MarkMisplaced
			remaining[g[i]]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// AllCorrect reports whether every mark is MarkCorrect.
func AllCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}
