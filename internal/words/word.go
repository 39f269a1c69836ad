// Package words defines the five-letter word domain model and the
// on-disk dictionary store.
package words

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the fixed word length of the game.
const WordLen = 5

// Alphabet is the normalized Russian alphabet. ё is folded to е
// during normalization, so it is not listed.
const Alphabet = "абвгдежзийклмнопрстуфхцчшщъыьэюя"

// ErrNotAWord reports input that does not normalize to five Russian letters.
var ErrNotAWord = errors.New("not a five-letter Russian word")

var inAlphabet = func() map[rune]bool {
	m := make(map[rune]bool, len(Alphabet))
	for _, r := range Alphabet {
		m[r] = true
	}
	return m
}()

// Word is a normalized five-letter word. The zero value is not a
// valid word; construct one through Normalize.
type Word [WordLen]rune

func (w Word) String() string {
	return string(w[:])
}

// Compare orders words lexicographically by letter.
func (w Word) Compare(other Word) int {
	for i := range w {
		if w[i] != other[i] {
			if w[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Contains reports whether the word has the letter r at any position.
func (w Word) Contains(r rune) bool {
	for _, c := range w {
		if c == r {
			return true
		}
	}
	return false
}

// Count returns how many times the letter r occurs in the word.
func (w Word) Count(r rune) int {
	n := 0
	for _, c := range w {
		if c == r {
			n++
		}
	}
	return n
}

var foldReplacer = strings.NewReplacer("ё", "е", "-", "", " ", "")

// Normalize canonicalizes raw input into a Word: surrounding
// whitespace is trimmed, internal hyphens and spaces are removed,
// letters are lowercased and ё is folded to е. Returns ErrNotAWord
// unless exactly five letters of the alphabet remain.
func Normalize(raw string) (Word, error) {
	s := foldReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	runes := []rune(s)
	if len(runes) != WordLen {
		return Word{}, fmt.Errorf("%w: %q", ErrNotAWord, raw)
	}
	var w Word
	for i, r := range runes {
		if !inAlphabet[r] {
			return Word{}, fmt.Errorf("%w: %q", ErrNotAWord, raw)
		}
		w[i] = r
	}
	return w, nil
}
