package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/underwriting"
	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatMarkdown = "markdown" // rendered for the terminal
	FormatRaw      = "raw"      // markdown source
	FormatJSON     = "json"
	FormatHTML     = "html"
)

// Config holds the settings read from UW_* environment variables.
type Config struct {
	Currency      string               `env:"CURRENCY" envDefault:"USD"`
	IndexRatePct  underwriting.Percent `env:"INDEX_RATE_PCT"` // floating loans index when a deal has none
	Format        string               `env:"FORMAT" envDefault:"markdown"`
	Style         string               `env:"STYLE" envDefault:"auto"` // glamour style of the markdown output
	WordWrap      int                  `env:"WORD_WRAP" envDefault:"100"`
	ScenarioLimit int                  `env:"SCENARIO_LIMIT" envDefault:"4"`
}

// LoadConfig loads envFile when it exists, then reads the UW_* variables.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			if *Verbose {
				log.Printf("Warning: %s file not found, using the environment only", envFile)
			}
		}
	}
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "UW_"})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the output settings.
func (c Config) Validate() error {
	formats := []string{FormatMarkdown, FormatRaw, FormatJSON, FormatHTML}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q, want one of %v", c.Format, formats)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("word wrap must not be negative, got %d", c.WordWrap)
	}
	return nil
}
