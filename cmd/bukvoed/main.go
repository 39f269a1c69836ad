package main

import (
	"github.com/alecthomas/kong"

	"bukvoed/cmd/bukvoed/shared"
	"bukvoed/internal/config"
	"bukvoed/internal/words"
)

// version is set by ldflags during build
var version = "dev"

// CLI mirrors the original tool's flag surface: a dictionary
// maintenance flag runs a single operation and exits, otherwise an
// interactive game is played.
type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Words      string           `short:"w" help:"Path to the dictionary file"`
	First      string           `short:"f" help:"Word to open the game with"`
	AddWord    string           `short:"a" help:"Add a word to the dictionary and exit"`
	RemoveWord string           `short:"r" help:"Remove a word from the dictionary and exit"`
	ListWords  bool             `short:"l" help:"Print the dictionary words and exit"`
	Limit      int              `short:"n" default:"-1" help:"With --list-words, print only the first N words"`
	Config     string           `short:"c" help:"Path to an HCL config file"`
	Debug      bool             `help:"Enable debug logging"`
}

// Run dispatches on the maintenance flags, defaulting to a game.
func (c *CLI) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Words != "" {
		cfg.Dictionary.Path = c.Words
	}
	if c.First != "" {
		cfg.Solver.OpeningWord = c.First
	}

	logger := shared.SetupLogger(cfg.Log.Level, c.Debug)
	store := words.NewStore(cfg.Dictionary.Path, logger)

	switch {
	case c.AddWord != "":
		return c.addWord(store)
	case c.RemoveWord != "":
		return c.removeWord(store)
	case c.ListWords:
		return c.listWords(store)
	}
	return c.solve(store, cfg, logger)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bukvoed"),
		kong.Description(`Interactive solver for the Russian "5 букв" word game`),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(cli.Run())
}
