package solver

import "bukvoed/internal/words"

// Filter returns the candidates that are consistent with observing fb
// after playing guess. The guess itself is always dropped: it has
// been tried already, and the game loop recognizes a solve from the
// all-correct pattern before filtering ever runs. The input slice is
// not modified and its ordering is preserved.
func Filter(candidates []words.Word, guess words.Word, fb Pattern) []words.Word {
	// How many copies of each guess letter the secret must contain,
	// derived from the marks alone. An absent mark caps the
	// candidate's count of that letter at this number rather than at
	// zero, which keeps repeated guess letters honest when the same
	// letter is absent in one slot and correct or present in another.
	required := make(map[rune]int)
	for i, m := range fb {
		if m != Absent {
			required[guess[i]]++
		}
	}

	var out []words.Word
next:
	for _, cand := range candidates {
		if cand == guess {
			continue
		}
		for i, m := range fb {
			switch m {
			case Correct:
				if cand[i] != guess[i] {
					continue next
				}
			case Present:
				if cand[i] == guess[i] || !cand.Contains(guess[i]) {
					continue next
				}
			}
		}
		for i, m := range fb {
			if m == Absent && cand.Count(guess[i]) > required[guess[i]] {
				continue next
			}
		}
		out = append(out, cand)
	}
	return out
}
