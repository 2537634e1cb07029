package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/render"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/report"
)

const (
	formatTerminal = "terminal"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var (
	summaryInput  inputFlags
	summaryUnit   string
	summaryFormat string
	summaryWidth  int
	summaryStyle  string
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary <input>",
	Short: "Print the summary of one unit or the whole organization",
	Long: `Print revenue, COGS, expenses, profit, margin and the expense breakdown
for one selection. Without --unit the organization-wide figures are shown
together with the unit comparison.

Formats:
- terminal: styled Markdown (default)
- markdown: plain Markdown
- html:     an HTML fragment

Example:
  ledger-dashboard summary ledger.csv
  ledger-dashboard summary ledger.csv --unit North --format markdown`,
	Args: cobra.ExactArgs(1),
	Run:  runSummary,
}

func init() {
	summaryInput.register(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryUnit, "unit", "u", report.OverallKey, "unit to summarize")
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", formatTerminal, "output format: terminal, markdown or html")
	summaryCmd.Flags().IntVar(&summaryWidth, "width", 100, "word wrap width for terminal output")
	summaryCmd.Flags().StringVar(&summaryStyle, "style", "", "terminal style (dark, light, notty); auto-detected when empty")
}

func runSummary(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd, &summaryInput)
	exitOnError(err, "failed to load configuration")

	out, err := summarize(cfg, args[0], summaryUnit, summaryFormat)
	exitOnError(err, "failed to summarize ledger")

	fmt.Fprint(os.Stdout, out)
}

// summarize renders the selection key of the ledger at input in the given format.
func summarize(cfg *config.Config, input, key, format string) (string, error) {
	format = strings.ToLower(format)
	switch format {
	case formatTerminal, formatMarkdown, formatHTML:
	default:
		return "", fmt.Errorf("unsupported format %q (want terminal, markdown or html)", format)
	}

	d, err := buildDashboard(cfg, input)
	if err != nil {
		return "", err
	}
	if key != report.OverallKey {
		if _, ok := d.ByUnit[key]; !ok {
			slog.Warn("Unknown unit, showing overall figures", "unit", key)
		}
	}

	md, err := render.Markdown(d, key, render.MarkdownOptions{
		Title:    cfg.Dashboard.Title,
		Currency: cfg.Dashboard.Currency,
	})
	if err != nil {
		return "", err
	}

	switch format {
	case formatMarkdown:
		return md, nil
	case formatHTML:
		return render.MarkdownToHTML(md)
	default:
		return render.Terminal(md, render.TerminalOptions{Width: summaryWidth, Style: summaryStyle})
	}
}
