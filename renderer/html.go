package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts reports with GitHub flavored tables.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown report to an HTML fragment.
func HTML(report string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(report), &b); err != nil {
		return "", fmt.Errorf("cannot convert report to html: %w", err)
	}
	return b.String(), nil
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 72rem; margin: 2rem auto; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.5rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTMLPage converts a markdown report to a standalone HTML document.
func HTMLPage(title, report string) (string, error) {
	body, err := HTML(report)
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	err = page.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body)})
	if err != nil {
		return "", fmt.Errorf("cannot write html page: %w", err)
	}
	return b.String(), nil
}
