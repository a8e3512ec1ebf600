// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction direction markers as they appear in the statement text.
const (
	DirectionDebit  = "Debit"
	DirectionCredit = "Credit"
)

// NameUnknown is the placeholder counterparty name used when the
// extractor cannot find a "Paid to" or "Received from" marker.
const NameUnknown = "Unknown"

// Transaction represents one payment event extracted from a statement line.
// Category is assigned by the categorization engine and may be overwritten
// by a user correction; all other fields are immutable after extraction.
type Transaction struct {
	Date      time.Time       // calendar date, no time-of-day retained
	Name      string          // counterparty name, NameUnknown if extraction failed
	Direction string          // DirectionDebit or DirectionCredit
	Amount    decimal.Decimal // non-negative, two fractional digits
	Category  string
}

// IsDebit returns true if the transaction is a debit (outgoing money)
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is a credit (incoming money)
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// NormalizedName returns the counterparty name lowercased and trimmed of
// surrounding whitespace. This is the key used by the name-category map.
func (t *Transaction) NormalizedName() string {
	return NormalizeName(t.Name)
}

// NormalizeName lowercases and trims a counterparty name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ISODate returns the transaction date in ISO-8601 calendar-date form.
func (t *Transaction) ISODate() string {
	return t.Date.Format("2006-01-02")
}
