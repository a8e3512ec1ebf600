// Package summary prints per-category spending totals
package summary

import (
	"fmt"

	"rsharma/phonepe-csv/cmd/root"
	"rsharma/phonepe-csv/internal/common"
	"rsharma/phonepe-csv/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals for a categorized CSV",
	Long: `Summary reads a categorized CSV and prints the total amount per
category, largest first.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.DebitsOnly, "debits-only", "d", false, "Sum only debit transactions")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	transactions, err := common.ReadTransactionsFromCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading CSV: %v", err)
	}

	if root.DebitsOnly {
		transactions = report.FilterDebits(transactions)
	}

	totals := report.Summarize(transactions)
	for _, entry := range totals {
		fmt.Printf("%-24s INR %12s\n", entry.Category, entry.Total.StringFixed(2))
	}
	root.Log.Infof("Summarized %d transactions into %d categories", len(transactions), len(totals))
}
