// Package docs embeds the user documentation of uw, one markdown file per
// topic.
package docs

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// readme is the topic listing every other topic.
const readme = "readme"

// Topic returns the markdown of a topic. The empty name returns the readme.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(cmp.Or(name, readme) + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'uw topic' for the list: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the markdown of several topics, one after the other.
// "*" stands for every topic.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := List()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// List returns the sorted names of the topics, the readme excluded.
func List() ([]string, error) {
	paths, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var res []string
	for _, p := range paths {
		if name := strings.TrimSuffix(p, ".md"); name != readme {
			res = append(res, name)
		}
	}
	slices.Sort(res)
	return res, nil
}
