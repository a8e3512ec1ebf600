package statement

import (
	"strings"
	"testing"
	"time"

	"rsharma/phonepe-csv/internal/models"
	"rsharma/phonepe-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransactionLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			name: "debit line",
			line: "Jul 04, 2023 Paid to Zomato Online Debit INR 450.00",
			want: true,
		},
		{
			name: "credit line",
			line: "Jan 15, 2024 Received from John Doe Credit INR 1,200.50",
			want: true,
		},
		{
			name: "page header",
			line: "Transaction Statement for 98XXXXXX21",
			want: false,
		},
		{
			name: "missing amount suffix",
			line: "Jul 04, 2023 Paid to Zomato Online Debit",
			want: false,
		},
		{
			name: "missing direction token",
			line: "Jul 04, 2023 Paid to Zomato Online INR 450.00",
			want: false,
		},
		{
			name: "date not at line start",
			line: "Page 1 Jul 04, 2023 Paid to Zomato Debit INR 450.00",
			want: false,
		},
		{
			name: "empty line",
			line: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransactionLine(tt.line))
		})
	}
}

func TestExtractTransaction_Debit(t *testing.T) {
	line := "Jul 04, 2023 Paid to Zomato Online Debit INR 450.00"
	require.True(t, IsTransactionLine(line))

	tx, err := ExtractTransaction(line)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "Zomato Online", tx.Name)
	assert.Equal(t, models.DirectionDebit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("450.00")))
}

func TestExtractTransaction_CreditWithThousandsSeparator(t *testing.T) {
	line := "Jan 15, 2024 Received from John Doe Credit INR 1,200.50"
	require.True(t, IsTransactionLine(line))

	tx, err := ExtractTransaction(line)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "John Doe", tx.Name)
	assert.Equal(t, models.DirectionCredit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1200.50")))
}

func TestExtractTransaction_UnknownName(t *testing.T) {
	// No "Paid to" or "Received from" marker: name degrades to the
	// placeholder, the line itself is kept.
	line := "Mar 01, 2024 UPI transfer Debit INR 99.00"

	tx, err := ExtractTransaction(line)
	require.NoError(t, err)
	assert.Equal(t, models.NameUnknown, tx.Name)
	assert.Equal(t, models.DirectionDebit, tx.Direction)
}

func TestExtractTransaction_PaidToWinsOverReceivedFrom(t *testing.T) {
	line := "Mar 01, 2024 Paid to Shop Received from Other Debit INR 10.00"

	tx, err := ExtractTransaction(line)
	require.NoError(t, err)
	assert.Equal(t, "Shop Received from Other", tx.Name)
}

func TestExtractTransaction_InvalidDateDropsLine(t *testing.T) {
	// "Feb 30" passes the shape check but is not a valid calendar date.
	line := "Feb 30, 2024 Paid to Zomato Debit INR 450.00"

	_, err := ExtractTransaction(line)
	require.Error(t, err)

	var rejected *parsererror.LineRejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, "date", rejected.Field)
}

func TestExtractTransaction_AmountDefaultsToZero(t *testing.T) {
	// Classifier requires INR followed by a digit, but the two-decimal
	// group can still be absent. The line is kept with a 0.00 sentinel.
	line := "Jul 04, 2023 Paid to Zomato Debit INR 450"
	require.True(t, IsTransactionLine(line))

	tx, err := ExtractTransaction(line)
	require.NoError(t, err)
	assert.True(t, tx.Amount.IsZero())
}

func TestClassifierAndExtractorStayInLockstep(t *testing.T) {
	// A line missing the INR suffix never reaches the extractor, so the
	// classifier rejection and the amount default never both fire.
	line := "Jul 04, 2023 Paid to Zomato Online Debit"
	assert.False(t, IsTransactionLine(line))

	// Every line the classifier accepts has a parseable date prefix.
	accepted := "Jul 04, 2023 Paid to Zomato Online Debit INR 450.00"
	require.True(t, IsTransactionLine(accepted))
	_, err := ExtractTransaction(accepted)
	assert.NoError(t, err)
}

func TestParse_FiltersAndExtracts(t *testing.T) {
	page := strings.Join([]string{
		"Transaction Statement",
		"Jul 04, 2023 Paid to Zomato Online Debit INR 450.00",
		"some footer noise",
		"Jan 15, 2024 Received from John Doe Credit INR 1,200.50",
		"Feb 30, 2024 Paid to Nobody Debit INR 1.00", // invalid date, dropped
		"",
	}, "\n")

	transactions, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Zomato Online", transactions[0].Name)
	assert.Equal(t, "John Doe", transactions[1].Name)
}

func TestParse_EmptyInputIsNotAnError(t *testing.T) {
	transactions, err := Parse(strings.NewReader("no transactions here\n"))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParse_Deterministic(t *testing.T) {
	page := "Jul 04, 2023 Paid to Zomato Online Debit INR 450.00\n"

	first, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	second, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
