package solver

import "bukvoed/internal/words"

// DefaultScanLimit bounds how many candidates are scored per round.
// Scoring a candidate costs a full pass over the pool, so only a
// prefix of the dictionary-ordered candidates is considered.
const DefaultScanLimit = 50

// Select picks the next guess from candidates, which must be sorted
// in dictionary order. With two or fewer candidates the first one is
// returned outright: either guess resolves the game within one extra
// round, so scoring buys nothing. Otherwise the first scanLimit
// candidates are scored against the whole pool and the one with the
// smallest worst-case partition wins, earliest candidate on ties.
// A scanLimit of zero or less means DefaultScanLimit.
func Select(candidates []words.Word, scanLimit int) words.Word {
	if len(candidates) == 0 {
		return words.Word{}
	}
	if len(candidates) <= 2 {
		return candidates[0]
	}
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}

	scan := candidates[:min(scanLimit, len(candidates))]
	best := scan[0]
	bestScore := len(candidates) + 1
	for _, w := range scan {
		if score := worstCase(w, candidates); score < bestScore {
			best, bestScore = w, score
		}
	}
	return best
}

// worstCase scores w by the size of the largest group of pool words
// that would produce the same feedback for w. That group is the
// adversarial remainder: the candidates still alive after guessing w
// if the secret falls in the biggest bucket.
func worstCase(w words.Word, pool []words.Word) int {
	buckets := make(map[Pattern]int)
	worst := 0
	for _, secret := range pool {
		p := Simulate(w, secret)
		buckets[p]++
		if buckets[p] > worst {
			worst = buckets[p]
		}
	}
	return worst
}
