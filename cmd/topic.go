package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/underwriting/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation of uw" }
func (*topicCmd) Usage() string {
	return `uw topic [-l] [<topic>...]

  Prints documentation topics. Without a topic, prints the list of topics.
  '*' prints every topic.

Usage Examples:
$ uw topic deal
$ uw topic debt waterfall
$ uw -format raw topic '*' > manual.md

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "Print the topic names only")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, n := range names {
			fmt.Fprintln(stdout, n)
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{""}
	}
	md, err := docs.Topics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	switch cfg.Format {
	case FormatRaw, FormatJSON:
		_, err = io.WriteString(stdout, md)
	default:
		err = printMarkdown(stdout, cfg, md)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing topic: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
