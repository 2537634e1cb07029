// Package render turns the aggregated dashboard into its output documents.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/pathutil"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/report"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// PayloadElementID is the id of the script element carrying the JSON payload.
const PayloadElementID = "dashboard-data"

// DefaultChartJSURL is the Chart.js bundle loaded by the dashboard.
const DefaultChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js"

// HTMLOptions holds configuration for rendering the dashboard document.
type HTMLOptions struct {
	Title      string // Page heading; "Financial Dashboard" when empty.
	Currency   string // ISO 4217 code used for display; DefaultCurrency when empty.
	ChartJSURL string // Chart.js script URL; the chart is skipped when empty.
}

func (o HTMLOptions) withDefaults() HTMLOptions {
	if o.Title == "" {
		o.Title = "Financial Dashboard"
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	return o
}

// htmlPage is the data passed to the dashboard template.
type htmlPage struct {
	Title      string
	Currency   string
	ChartJSURL string
	PayloadID  string
	OverallKey string
	Units      []string
	Initial    report.View
	Payload    template.JS
}

var dashboardTemplate = template.Must(
	template.New("dashboard.html.tmpl").Funcs(template.FuncMap{
		"money":   FormatMoney,
		"percent": FormatPercent,
	}).ParseFS(templatesFS, "templates/dashboard.html.tmpl"),
)

// HTML writes the self-contained dashboard document for d to w.
func HTML(w io.Writer, d *report.Dashboard, opts HTMLOptions) error {
	opts = opts.withDefaults()

	payload, err := MarshalPayload(d)
	if err != nil {
		return err
	}

	page := htmlPage{
		Title:      opts.Title,
		Currency:   opts.Currency,
		ChartJSURL: opts.ChartJSURL,
		PayloadID:  PayloadElementID,
		OverallKey: report.OverallKey,
		Units:      d.Units,
		Initial:    report.DeriveView(d, report.OverallKey),
		Payload:    template.JS(payload),
	}
	if err := dashboardTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}

// MarshalPayload serializes d as embedded in the dashboard.
// encoding/json escapes <, > and &, so the result is safe inside a script element.
func MarshalPayload(d *report.Dashboard) ([]byte, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dashboard payload: %w", err)
	}
	return payload, nil
}

// WriteHTMLFile renders the dashboard and writes it to path.
// The document is fully rendered in memory first and then moved into place,
// so a failed run never leaves a truncated artifact. Write failures are
// returned as *OutputError.
func WriteHTMLFile(path string, d *report.Dashboard, opts HTMLOptions) error {
	var buf bytes.Buffer
	if err := HTML(&buf, d, opts); err != nil {
		return err
	}

	resolver := pathutil.New(pathutil.Config{OutputPath: path})
	if err := resolver.CheckOutputDir(); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	if err := pathutil.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return &OutputError{Path: path, Err: err}
	}

	slog.Debug("Wrote dashboard", "path", path, "bytes", buf.Len())
	return nil
}
