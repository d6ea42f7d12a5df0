package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/underwriting/renderer"
	"github.com/google/subcommands"
)

// stdout receives the results of the commands.
var stdout io.Writer = os.Stdout

// emit writes a result to stdout in the configured format.
func emit(title string, v any, report func(renderer.Options) string) subcommands.ExitStatus {
	cfg, err := config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := write(stdout, cfg, title, v, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", title, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// write encodes v as JSON, or renders its markdown report as is, for the
// terminal or as an HTML page.
func write(w io.Writer, cfg Config, title string, v any, report func(renderer.Options) string) error {
	opts := renderer.Options{Currency: cfg.Currency}
	switch cfg.Format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatHTML:
		page, err := renderer.HTMLPage(title, report(opts))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case FormatRaw:
		_, err := io.WriteString(w, report(opts))
		return err
	default:
		return printMarkdown(w, cfg, report(opts))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(w io.Writer, cfg Config, md string) error {
	style := glamour.WithAutoStyle()
	if cfg.Style != "" && cfg.Style != "auto" {
		style = glamour.WithStandardStyle(cfg.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(cfg.WordWrap))
	if err != nil {
		return fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
