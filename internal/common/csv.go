// Package common provides the CSV read/write layer shared by the
// commands. The export contract is fixed: columns Date, Name,
// Debit/Credit, Amount, Category in that order, ISO-8601 dates, amounts
// with exactly two fractional digits.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// Delimiter is the CSV delimiter used for both reading and writing.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logging.NewLogrusAdapterFromLogger(logger)
}

// transactionRow is the CSV shape of one categorized transaction.
type transactionRow struct {
	Date      string `csv:"Date"`
	Name      string `csv:"Name"`
	Direction string `csv:"Debit/Credit"`
	Amount    string `csv:"Amount"`
	Category  string `csv:"Category"`
}

// WriteTransactionsToCSV writes a categorized batch to a CSV file.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(Delimiter)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = transactionRow{
			Date:      tx.ISODate(),
			Name:      tx.Name,
			Direction: tx.Direction,
			Amount:    tx.Amount.StringFixed(2),
			Category:  tx.Category,
		}
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadTransactionsFromCSV reads a previously exported batch back in.
// Rows with an unparseable date are dropped with a diagnostic, matching
// the statement parser's recovery policy; an unreadable amount degrades
// to 0.00.
func ReadTransactionsFromCSV(csvFile string) ([]models.Transaction, error) {
	log.Info("Reading CSV file",
		logging.Field{Key: logging.FieldInputFile, Value: csvFile})

	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvReader := csv.NewReader(file)
	csvReader.Comma = Delimiter

	var rows []transactionRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			log.WithError(err).Warn("Dropping CSV row with unparseable date",
				logging.Field{Key: logging.FieldRow, Value: i})
			continue
		}

		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			amount = decimal.Zero
		}

		transactions = append(transactions, models.Transaction{
			Date:      date,
			Name:      row.Name,
			Direction: row.Direction,
			Amount:    amount,
			Category:  row.Category,
		})
	}

	log.Info("Successfully read CSV data",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}
