package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/report"
)

// MarkdownOptions holds configuration for the Markdown summary.
type MarkdownOptions struct {
	Title    string // Document heading; "Financial Dashboard" when empty.
	Currency string // ISO 4217 code used for display; DefaultCurrency when empty.
}

// Markdown renders the summary of one selection (report.OverallKey or a unit) as Markdown.
func Markdown(d *report.Dashboard, key string, opts MarkdownOptions) (string, error) {
	defaults := HTMLOptions{Title: opts.Title, Currency: opts.Currency}.withDefaults()

	funcs := template.FuncMap{
		"money":   func(v float64) string { return FormatMoney(v, defaults.Currency) },
		"percent": FormatPercent,
		"cell":    markdownCell,
	}
	tmpl, err := template.New("summary.md.tmpl").Funcs(funcs).ParseFS(templatesFS, "templates/summary.md.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse summary template: %w", err)
	}

	data := struct {
		Title string
		View  report.View
	}{
		Title: defaults.Title,
		View:  report.DeriveView(d, key),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return buf.String(), nil
}

// markdownCell makes s safe inside a Markdown table cell.
func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// MarkdownToHTML converts Markdown to an HTML fragment (GitHub flavoured, so tables render).
func MarkdownToHTML(md string) (string, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// TerminalOptions holds configuration for terminal rendering.
type TerminalOptions struct {
	Width int    // Word wrap width; 100 when zero.
	Style string // glamour standard style ("dark", "light", "notty", ...); auto-detected when empty.
}

// Terminal styles Markdown for display in a terminal.
func Terminal(md string, opts TerminalOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 100
	}

	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render for terminal: %w", err)
	}
	return out, nil
}
