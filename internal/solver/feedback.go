// Package solver implements the constraint-satisfaction core of the
// game: feedback simulation, candidate filtering and minimax guess
// selection.
package solver

import (
	"errors"
	"fmt"

	"bukvoed/internal/words"
)

// Mark classifies one guess letter against the secret word.
type Mark uint8

const (
	Absent  Mark = iota // letter does not occur beyond its accounted copies
	Present             // letter occurs at a different position
	Correct             // letter is at exactly this position
)

// Pattern is the per-position feedback for one guess. It is
// comparable, so it can key partition tally maps directly.
type Pattern [words.WordLen]Mark

// SolvedPattern marks every position correct.
var SolvedPattern = Pattern{Correct, Correct, Correct, Correct, Correct}

// Solved reports whether the guess hit the secret exactly.
func (p Pattern) Solved() bool {
	return p == SolvedPattern
}

// String renders the pattern in the oracle's input form, e.g. "01020".
func (p Pattern) String() string {
	b := make([]byte, len(p))
	for i, m := range p {
		b[i] = '0' + byte(m)
	}
	return string(b)
}

// ErrBadPattern reports feedback input that is not five characters
// out of {0,1,2}.
var ErrBadPattern = errors.New("feedback must be five characters of 0, 1 or 2")

// ParsePattern parses oracle input: 0 is absent, 1 present elsewhere,
// 2 correct position.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != words.WordLen {
		return Pattern{}, fmt.Errorf("%w: %q", ErrBadPattern, s)
	}
	var p Pattern
	for i := 0; i < words.WordLen; i++ {
		if s[i] < '0' || s[i] > '2' {
			return Pattern{}, fmt.Errorf("%w: %q", ErrBadPattern, s)
		}
		p[i] = Mark(s[i] - '0')
	}
	return p, nil
}

// Simulate computes the feedback the oracle would give for guess if
// the secret were secret. Exact matches are marked and consumed
// first; each remaining guess letter then claims the first unconsumed
// matching secret letter, in position order, or is marked absent. A
// repeated guess letter is therefore marked present only as many
// times as copies remain in the secret after exact matches.
func Simulate(guess, secret words.Word) Pattern {
	var p Pattern
	var taken [words.WordLen]bool // secret letters already consumed
	var exact [words.WordLen]bool // guess positions settled in pass one

	for i := 0; i < words.WordLen; i++ {
		if guess[i] == secret[i] {
			p[i] = Correct
			taken[i] = true
			exact[i] = true
		}
	}
	for i := 0; i < words.WordLen; i++ {
		if exact[i] {
			continue
		}
		for j := 0; j < words.WordLen; j++ {
			if !taken[j] && secret[j] == guess[i] {
				p[i] = Present
				taken[j] = true
				break
			}
		}
	}
	return p
}
