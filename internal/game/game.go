// Package game drives one interactive solving session of up to six
// rounds against an external feedback oracle.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"bukvoed/internal/solver"
	"bukvoed/internal/words"
)

// ErrEmptyDictionary is returned when no valid words are available to
// start a game.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// Oracle supplies per-letter feedback for a guess. The interactive
// implementation blocks on the player; tests script it.
type Oracle interface {
	Feedback(guess words.Word) (solver.Pattern, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(words.Word) (solver.Pattern, error)

func (f OracleFunc) Feedback(guess words.Word) (solver.Pattern, error) {
	return f(guess)
}

// Config carries the per-game knobs. Zero fields take defaults in New.
type Config struct {
	// OpeningWord is the preferred first guess. It is used only when
	// it is itself a dictionary member.
	OpeningWord string
	// ScanLimit bounds guess scoring, see solver.Select.
	ScanLimit int
	// MaxRounds is the number of guesses before giving up.
	MaxRounds int
}

// DefaultMaxRounds is the round limit of the original game.
const DefaultMaxRounds = 6

// Outcome is the terminal state of a game.
type Outcome int

const (
	Solved    Outcome = iota
	Exhausted         // no dictionary word is consistent with the feedback seen
	GivenUp           // rounds ran out with candidates still standing
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case GivenUp:
		return "given up"
	default:
		return "unknown"
	}
}

// Result reports how a game ended.
type Result struct {
	Outcome Outcome
	// Word is the solved word, or the best fallback guess when the
	// game was given up.
	Word   words.Word
	Rounds int
	// Remaining lists the surviving candidates when the game was
	// given up.
	Remaining []words.Word
}

// Game owns the candidate set for a single run. The set only ever
// shrinks: after each round it holds exactly the words consistent
// with all feedback received so far. Discard the Game once Play
// returns.
type Game struct {
	dict       []words.Word
	candidates []words.Word
	cfg        Config
	logger     *log.Logger
}

// New derives a fresh candidate set from the sorted dictionary dict.
func New(dict []words.Word, cfg Config, logger *log.Logger) (*Game, error) {
	if len(dict) == 0 {
		return nil, ErrEmptyDictionary
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	return &Game{
		dict:       dict,
		candidates: slices.Clone(dict),
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Play runs rounds until a terminal state is reached. The solved
// check runs on the raw feedback before any filtering, so a secret
// equal to an earlier guess is still recognized even though Filter
// drops played guesses.
func (g *Game) Play(oracle Oracle) (*Result, error) {
	for round := 1; round <= g.cfg.MaxRounds; round++ {
		switch len(g.candidates) {
		case 0:
			g.logger.Warn("No dictionary word fits the feedback seen so far")
			return &Result{Outcome: Exhausted, Rounds: round - 1}, nil
		case 1:
			g.logger.Info("Single candidate left", "word", g.candidates[0])
			return &Result{Outcome: Solved, Word: g.candidates[0], Rounds: round - 1}, nil
		}

		guess := g.chooseGuess(round)
		g.logger.Info("Guessing", "round", round, "max", g.cfg.MaxRounds,
			"guess", guess, "candidates", len(g.candidates))

		fb, err := oracle.Feedback(guess)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain feedback: %w", err)
		}
		if fb.Solved() {
			return &Result{Outcome: Solved, Word: guess, Rounds: round}, nil
		}

		g.candidates = solver.Filter(g.candidates, guess, fb)
		g.logger.Info("Candidates remaining", "count", len(g.candidates))
	}

	if len(g.candidates) == 0 {
		return &Result{Outcome: Exhausted, Rounds: g.cfg.MaxRounds}, nil
	}
	return &Result{
		Outcome:   GivenUp,
		Word:      solver.Select(g.candidates, g.cfg.ScanLimit),
		Rounds:    g.cfg.MaxRounds,
		Remaining: slices.Clone(g.candidates),
	}, nil
}

// chooseGuess picks the configured opening word on round one when it
// is a dictionary member, otherwise the first candidate; later rounds
// use minimax selection.
func (g *Game) chooseGuess(round int) words.Word {
	if round == 1 {
		if g.cfg.OpeningWord != "" {
			w, err := words.Normalize(g.cfg.OpeningWord)
			if err == nil && slices.Contains(g.dict, w) {
				return w
			}
			g.logger.Debug("Opening word not in dictionary, falling back",
				"word", g.cfg.OpeningWord)
		}
		return g.candidates[0]
	}
	return solver.Select(g.candidates, g.cfg.ScanLimit)
}
