// Package cmd implements the CLI application to underwrite real estate deals.
package cmd

import (
	"cmp"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/etnz/underwriting"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", cmp.Or(os.Getenv(EnvEnvFile), ".env"), "Path to an optional .env file setting UW_* variables")
var currency = flag.String("currency", "", "ISO 4217 currency of the amounts in reports (default $UW_CURRENCY or USD)")
var format = flag.String("format", "", "Output format: markdown, raw, json or html (default $UW_FORMAT or markdown)")
var Verbose = flag.Bool("v", false, "Log the configuration to stderr")

// group is a set of subcommands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

func groups() []group {
	return []group{
		{"deal", []subcommands.Command{&analyzeCmd{}, &proformaCmd{}, &scenariosCmd{}, &sensitivityCmd{}, &queryCmd{}}},
		{"components", []subcommands.Command{&rentrollCmd{}, &budgetCmd{}, &sizeCmd{}, &debtCmd{}, &waterfallCmd{}, &newCmd{}}},
		{"tax", []subcommands.Command{&depreciationCmd{}, &costsegCmd{}, &exchangeCmd{}}},
		{"help", []subcommands.Command{&topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// IsCommand reports whether name is a subcommand of the application.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, g := range groups() {
		for _, cmd := range g.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// config returns the configuration of the run: the environment, then the
// global flags.
var config = sync.OnceValues(func() (Config, error) {
	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return cfg, err
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if *Verbose {
		log.Printf("configuration: %+v", cfg)
	}
	return cfg, nil
})

// decodeFile reads a JSON or YAML document, from stdin when name is "-".
func decodeFile[T any](name string) (T, error) {
	if name == "-" {
		return underwriting.Decode[T](os.Stdin, underwriting.JSON)
	}
	var zero T
	f, err := os.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := underwriting.Decode[T](f, underwriting.FormatOf(name))
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func ref[T any](v T) *T { return &v }
