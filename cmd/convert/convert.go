// Package convert handles statement text to categorized CSV conversion
package convert

import (
	"rsharma/phonepe-csv/cmd/root"
	"rsharma/phonepe-csv/internal/common"
	"rsharma/phonepe-csv/internal/report"
	"rsharma/phonepe-csv/internal/statement"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PhonePe statement text export to categorized CSV",
	Long: `Convert reads the text export of a PhonePe statement, extracts the
transaction lines, assigns a category to each transaction and writes the
result as CSV.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.DebitsOnly, "debits-only", "d", false, "Keep only debit transactions")
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	transactions, err := statement.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing statement: %v", err)
	}
	if len(transactions) == 0 {
		root.Log.Warn("No transaction lines recognized in input")
	}

	if root.DebitsOnly {
		transactions = report.FilterDebits(transactions)
	}

	root.Engine().CategorizeAll(transactions)

	if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Infof("Converted %d transactions successfully!", len(transactions))
}
