// Package main is the entry point for the ledger-dashboard CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/ledger-dashboard/cmd/ledger-dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
