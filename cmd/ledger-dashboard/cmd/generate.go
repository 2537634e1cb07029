package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/pathutil"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/render"
)

var (
	generateInput      inputFlags
	generateTitle      string
	generateCurrency   string
	generateChartJSURL string
	generateNoChart    bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <input> [output]",
	Short: "Generate the interactive HTML dashboard",
	Long: `Read a ledger file and write a self-contained HTML dashboard.

The dashboard contains:
- Revenue, COGS, expenses and profit cards with the profit margin
- A unit selector switching between the organization and each unit
- An expense breakdown chart and table for the selection
- A unit comparison table

When output is omitted, the dashboard is written next to the input with
an .html extension. The output directory must already exist.

Example:
  ledger-dashboard generate ledger.csv
  ledger-dashboard generate ledger.tsv report.html --delimiter tab --currency EUR`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runGenerate,
}

func init() {
	generateInput.register(generateCmd)
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "dashboard title")
	generateCmd.Flags().StringVar(&generateCurrency, "currency", "", "ISO 4217 currency code used for display")
	generateCmd.Flags().StringVar(&generateChartJSURL, "chart-js-url", "", "Chart.js script URL")
	generateCmd.Flags().BoolVar(&generateNoChart, "no-chart", false, "omit the expense chart and the Chart.js script")
}

func runGenerate(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	cfg, err := loadConfig(cmd, &generateInput)
	exitOnError(err, "failed to load configuration")

	if cmd.Flags().Changed("title") {
		cfg.Dashboard.Title = generateTitle
	}
	if cmd.Flags().Changed("currency") {
		cfg.Dashboard.Currency = generateCurrency
	}
	if cmd.Flags().Changed("chart-js-url") {
		cfg.Dashboard.ChartJSURL = generateChartJSURL
	}
	if generateNoChart {
		cfg.Dashboard.ChartJSURL = ""
	}
	exitOnError(cfg.Validate(), "invalid configuration")

	output := ""
	if len(args) > 1 {
		output = args[1]
	}

	path, err := generate(cfg, args[0], output)
	exitOnError(err, "failed to generate dashboard")

	fmt.Printf("Dashboard written to %s\n", path)
	slog.Info("Dashboard generated successfully", "path", path)
}

// generate builds the dashboard for input and writes it to output,
// or to the path derived from input when output is empty.
// It returns the path written.
func generate(cfg *config.Config, input, output string) (string, error) {
	paths := pathutil.New(pathutil.Config{
		InputPath:   input,
		OutputPath:  output,
		MappingPath: cfg.Input.MappingFile,
	})

	d, err := buildDashboard(cfg, paths.GetInputPath())
	if err != nil {
		return "", err
	}

	opts := render.HTMLOptions{
		Title:      cfg.Dashboard.Title,
		Currency:   cfg.Dashboard.Currency,
		ChartJSURL: cfg.Dashboard.ChartJSURL,
	}
	if err := render.WriteHTMLFile(paths.GetOutputPath(), d, opts); err != nil {
		return "", err
	}
	return paths.GetOutputPath(), nil
}
