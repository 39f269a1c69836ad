// Package config loads the tool configuration from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"bukvoed/internal/game"
	"bukvoed/internal/solver"
)

// Config is the complete tool configuration. Command-line flags
// override anything set here; defaults fill anything left out.
type Config struct {
	Dictionary *DictionarySettings `hcl:"dictionary,block"`
	Solver     *SolverSettings     `hcl:"solver,block"`
	Log        *LogSettings        `hcl:"log,block"`
}

// DictionarySettings locates the word list.
type DictionarySettings struct {
	Path string `hcl:"path,optional"`
}

// SolverSettings tunes guess selection.
type SolverSettings struct {
	OpeningWord string `hcl:"opening_word,optional"`
	ScanLimit   int    `hcl:"scan_limit,optional"`
	MaxRounds   int    `hcl:"max_rounds,optional"`
}

// LogSettings controls logging output.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: &DictionarySettings{Path: defaultDictPath()},
		Solver: &SolverSettings{
			OpeningWord: "опера",
			ScanLimit:   solver.DefaultScanLimit,
			MaxRounds:   game.DefaultMaxRounds,
		},
		Log: &LogSettings{Level: "info"},
	}
}

func defaultDictPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "words.txt"
	}
	return filepath.Join(home, ".local", "share", "bukvoed", "words.txt")
}

// Load reads filename and backfills missing blocks and values with
// defaults. A missing file is not an error: the defaults are returned
// as-is.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Dictionary == nil {
		cfg.Dictionary = defaults.Dictionary
	} else if cfg.Dictionary.Path == "" {
		cfg.Dictionary.Path = defaults.Dictionary.Path
	}
	if cfg.Solver == nil {
		cfg.Solver = defaults.Solver
	} else {
		if cfg.Solver.OpeningWord == "" {
			cfg.Solver.OpeningWord = defaults.Solver.OpeningWord
		}
		if cfg.Solver.ScanLimit == 0 {
			cfg.Solver.ScanLimit = defaults.Solver.ScanLimit
		}
		if cfg.Solver.MaxRounds == 0 {
			cfg.Solver.MaxRounds = defaults.Solver.MaxRounds
		}
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	return &cfg, nil
}
