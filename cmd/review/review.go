// Package review applies user category corrections to a categorized batch
package review

import (
	"rsharma/phonepe-csv/cmd/root"
	"rsharma/phonepe-csv/internal/categorizer"
	"rsharma/phonepe-csv/internal/common"

	"github.com/spf13/cobra"
)

// Cmd represents the review command
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Learn from an edited CSV and recategorize the batch",
	Long: `Review compares a previously exported CSV against a user-edited copy,
row by row. Every row whose category was changed to a non-empty value is
learned: the name maps to the new category and the name's tokens become
keywords of it. The learned mappings are persisted and the whole batch is
recategorized, so corrections can reclassify other rows too.`,
	Run: reviewFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.EditedFile, "edited", "e", "", "User-edited CSV file (required)")
	if err := Cmd.MarkFlagRequired("edited"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}
}

func reviewFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Review command called")
	root.Log.Infof("Original file: %s", root.SharedFlags.Input)
	root.Log.Infof("Edited file: %s", root.EditedFile)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	original, err := common.ReadTransactionsFromCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading original CSV: %v", err)
	}
	edited, err := common.ReadTransactionsFromCSV(root.EditedFile)
	if err != nil {
		root.Log.Fatalf("Error reading edited CSV: %v", err)
	}

	corrections := categorizer.BuildCorrections(original, edited)
	root.Log.Infof("Found %d corrections", len(corrections))

	engine := root.Engine()
	changed, err := engine.ApplyCorrections(original, corrections)
	if err != nil {
		root.Log.Fatalf("Error applying corrections: %v", err)
	}
	if !changed {
		root.Log.Info("No categories changed, output matches input")
	}

	if err := common.WriteTransactionsToCSV(original, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Info("Review completed successfully!")
}
