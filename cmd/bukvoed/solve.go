package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"bukvoed/internal/config"
	"bukvoed/internal/game"
	"bukvoed/internal/prompt"
	"bukvoed/internal/words"
)

func (c *CLI) solve(store *words.Store, cfg *config.Config, logger *log.Logger) error {
	g, err := game.New(store.Load(), game.Config{
		OpeningWord: cfg.Solver.OpeningWord,
		ScanLimit:   cfg.Solver.ScanLimit,
		MaxRounds:   cfg.Solver.MaxRounds,
	}, logger)
	if err != nil {
		return fmt.Errorf("cannot start a game with %s: %w", store.Path(), err)
	}

	res, err := g.Play(prompt.NewConsole(os.Stdin, os.Stdout))
	if err != nil {
		return err
	}

	switch res.Outcome {
	case game.Solved:
		fmt.Printf("\nSolved in %d rounds! The word is %s\n",
			res.Rounds, strings.ToUpper(res.Word.String()))
	case game.Exhausted:
		fmt.Println("\nNo dictionary word matches the feedback. " +
			"Check the answers, or add the word with --add-word.")
	case game.GivenUp:
		fmt.Printf("\nOut of rounds. Best remaining guess: %s\n",
			strings.ToUpper(res.Word.String()))
		fmt.Printf("Remaining candidates: %s\n", joinUpper(res.Remaining))
	}
	return nil
}

func joinUpper(list []words.Word) string {
	parts := make([]string, len(list))
	for i, w := range list {
		parts[i] = strings.ToUpper(w.String())
	}
	return strings.Join(parts, ", ")
}
