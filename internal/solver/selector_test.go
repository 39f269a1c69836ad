package solver

import (
	"testing"

	"bukvoed/internal/words"
)

func TestSelectFewCandidates(t *testing.T) {
	two := wordList(t, "опера", "осень")
	if got := Select(two, 0); got != two[0] {
		t.Errorf("Select = %s, want first candidate %s", got, two[0])
	}

	one := wordList(t, "осень")
	if got := Select(one, 0); got != one[0] {
		t.Errorf("Select = %s, want %s", got, one[0])
	}
}

// ворон cannot tell друид from грифы (both answer "00100"), while
// друид splits the pool into singleton buckets. The minimax score
// must prefer друид even though ворон comes first.
func TestSelectPrefersSmallestWorstCase(t *testing.T) {
	pool := wordList(t, "ворон", "друид", "грифы")

	if got, want := Select(pool, 0), pool[1]; got != want {
		t.Errorf("Select = %s, want %s", got, want)
	}
}

func TestSelectScanLimitBoundsScoring(t *testing.T) {
	pool := wordList(t, "ворон", "друид", "грифы")

	// Only the first candidate is scored, so it wins by default.
	if got, want := Select(pool, 1), pool[0]; got != want {
		t.Errorf("Select with limit 1 = %s, want %s", got, want)
	}
	// Widening the scan lets друид win on score.
	if got, want := Select(pool, 2), pool[1]; got != want {
		t.Errorf("Select with limit 2 = %s, want %s", got, want)
	}
}

// When every scanned candidate scores the same, the earliest one in
// dictionary order must win.
func TestSelectTieBreaksByOrder(t *testing.T) {
	pool := wordList(t, "балка", "белка", "булка")

	if got, want := Select(pool, 0), pool[0]; got != want {
		t.Errorf("Select = %s, want %s", got, want)
	}
}

func TestWorstCase(t *testing.T) {
	pool := wordList(t, "ворон", "друид", "грифы")

	tests := []struct {
		word string
		want int
	}{
		{word: "ворон", want: 2},
		{word: "друид", want: 1},
		{word: "грифы", want: 1},
	}
	for _, tt := range tests {
		w, err := words.Normalize(tt.word)
		if err != nil {
			t.Fatal(err)
		}
		if got := worstCase(w, pool); got != tt.want {
			t.Errorf("worstCase(%s) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
