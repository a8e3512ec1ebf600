// Package report aggregates categorized transactions into per-category
// spending totals.
package report

import (
	"sort"

	"rsharma/phonepe-csv/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summarize groups a batch by category and sums the amounts. Results are
// sorted by descending total; equal totals fall back to category name so
// the output is deterministic.
func Summarize(transactions []models.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	summary := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		summary = append(summary, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(summary, func(i, j int) bool {
		if !summary[i].Total.Equal(summary[j].Total) {
			return summary[i].Total.GreaterThan(summary[j].Total)
		}
		return summary[i].Category < summary[j].Category
	})
	return summary
}

// FilterDebits returns only the debit transactions of a batch, in their
// original order.
func FilterDebits(transactions []models.Transaction) []models.Transaction {
	var debits []models.Transaction
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
		}
	}
	return debits
}
