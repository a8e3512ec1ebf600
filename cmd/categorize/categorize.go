// Package categorize handles one-off categorization of counterparty names
package categorize

import (
	"rsharma/phonepe-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Look up or teach the category for a counterparty name",
	Long: `Categorize resolves the category for a single counterparty name using
the learned name map and the keyword ruleset. With --set it instead
records the given category as a correction and persists it.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.PartyName, "party", "p", "", "Counterparty name (required)")
	Cmd.Flags().StringVarP(&root.NewCategory, "set", "s", "", "Category to learn for this name")
	if err := Cmd.MarkFlagRequired("party"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	engine := root.Engine()

	if root.NewCategory != "" {
		engine.Learn(root.PartyName, root.NewCategory)
		if err := engine.SaveMappings(); err != nil {
			root.Log.Fatalf("Error persisting mapping: %v", err)
		}
		root.Log.Infof("Learned: %q -> %s", root.PartyName, root.NewCategory)
		return
	}

	category := engine.Categorize(root.PartyName)
	root.Log.Infof("Category: %s", category)
}
