package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/render"
)

var (
	queryInput inputFlags
	queryFirst bool
)

// queryCmd represents the query command.
var queryCmd = &cobra.Command{
	Use:   "query <input> <jsonpath>",
	Short: "Query the aggregated dashboard data with JSONPath",
	Long: `Aggregate a ledger file and evaluate a JSONPath expression against the
same JSON document that is embedded in the HTML dashboard:

  {"units": [...], "overall": {...}, "by_unit": {"<unit>": {...}}}

Each summary has revenue, cogs, expenses, profit, margin and expense_breakdown.

Example:
  ledger-dashboard query ledger.csv '$.overall.profit'
  ledger-dashboard query ledger.csv '$.by_unit.*.margin'
  ledger-dashboard query ledger.csv '$.by_unit["North"].expense_breakdown'`,
	Args: cobra.ExactArgs(2),
	Run:  runQuery,
}

func init() {
	queryInput.register(queryCmd)
	queryCmd.Flags().BoolVar(&queryFirst, "first", false, "print only the first match when the expression yields a list")
}

func runQuery(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd, &queryInput)
	exitOnError(err, "failed to load configuration")

	out, err := query(cfg, args[0], args[1], queryFirst)
	exitOnError(err, "failed to query dashboard")

	fmt.Println(out)
}

// query evaluates path against the dashboard payload of input and returns
// the result as indented JSON.
func query(cfg *config.Config, input, path string, first bool) (string, error) {
	d, err := buildDashboard(cfg, input)
	if err != nil {
		return "", err
	}

	payload, err := render.MarshalPayload(d)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return "", fmt.Errorf("failed to decode dashboard payload: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate %q: %w", path, err)
	}
	if first {
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode query result: %w", err)
	}
	return string(out), nil
}
