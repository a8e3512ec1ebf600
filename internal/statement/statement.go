// Package statement extracts transaction records from the text export of a
// PhonePe statement. The upstream text-extraction step supplies one
// newline-delimited stream per page; this package filters the candidate
// transaction lines and parses them into typed records.
package statement

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/models"
	"rsharma/phonepe-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logging.NewLogrusAdapterFromLogger(logger)
}

// statementDateLayout is the date format used at the start of every
// transaction line, e.g. "Jul 04, 2023". The layout carries a fixed
// English month-abbreviation table.
const statementDateLayout = "Jan 02, 2006"

var (
	// A transaction line starts with a date, mentions Debit or Credit,
	// and carries an INR amount. The classifier and the extractor below
	// must stay in lockstep: every line accepted here has a date prefix
	// and an INR digit group for the extractor to find.
	transactionLinePattern = regexp.MustCompile(`^[A-Za-z]{3} \d{2}, \d{4} .* (Debit|Credit) INR \d`)

	datePattern   = regexp.MustCompile(`^([A-Za-z]{3} \d{2}, \d{4})`)
	amountPattern = regexp.MustCompile(`INR ([\d,]+\.\d{2})`)
)

// IsTransactionLine reports whether a raw text line looks like a
// transaction record. Pure predicate, no side effects. Real transaction
// lines that fail the pattern are silently dropped in aggregate; there is
// no recovery pass for partially matching lines.
func IsTransactionLine(line string) bool {
	return transactionLinePattern.MatchString(line)
}

// ExtractTransaction parses one line already accepted by
// IsTransactionLine into a Transaction. The field rules are applied
// independently: only a date parse failure rejects the line, every other
// missing field degrades to a placeholder or default.
func ExtractTransaction(line string) (models.Transaction, error) {
	dateMatch := datePattern.FindStringSubmatch(line)
	if dateMatch == nil {
		return models.Transaction{}, &parsererror.LineRejectedError{
			Line:   line,
			Field:  "date",
			Reason: "no date prefix",
		}
	}
	date, err := time.Parse(statementDateLayout, dateMatch[1])
	if err != nil {
		return models.Transaction{}, &parsererror.LineRejectedError{
			Line:   line,
			Field:  "date",
			Reason: err.Error(),
		}
	}

	// Direction is an unanchored substring check. A counterparty name
	// containing the word "Debit" would misclassify the direction; the
	// limitation is inherited from the statement's loose line structure
	// and kept as is.
	direction := models.DirectionCredit
	if strings.Contains(line, models.DirectionDebit) {
		direction = models.DirectionDebit
	}

	return models.Transaction{
		Date:      date,
		Name:      extractName(line),
		Direction: direction,
		Amount:    extractAmount(line),
	}, nil
}

// extractName pulls the counterparty name out of a transaction line.
// "Paid to" is checked before "Received from", so a line carrying both
// markers resolves via "Paid to".
func extractName(line string) string {
	if name, ok := textBetween(line, "Paid to", models.DirectionDebit); ok {
		return name
	}
	if name, ok := textBetween(line, "Received from", models.DirectionCredit); ok {
		return name
	}
	return models.NameUnknown
}

// textBetween returns the trimmed text between the marker and the next
// occurrence of end, or the trimmed remainder when end is absent.
func textBetween(line, marker, end string) (string, bool) {
	start := strings.Index(line, marker)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(marker):]
	if stop := strings.Index(rest, end); stop >= 0 {
		rest = rest[:stop]
	}
	return strings.TrimSpace(rest), true
}

// extractAmount finds the first "INR <amount>" group, strips thousands
// separators and parses the remainder. No match yields 0.00 rather than a
// rejection: the line was already structurally matched, so it is kept
// with a sentinel amount.
func extractAmount(line string) decimal.Decimal {
	match := amountPattern.FindStringSubmatch(line)
	if match == nil {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Parse reads one page of statement text and returns the transactions
// extracted from it. Unparseable lines are dropped with a diagnostic and
// never abort the batch; an input with zero accepted lines yields an
// empty slice and no error.
func Parse(r io.Reader) ([]models.Transaction, error) {
	var transactions []models.Transaction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !IsTransactionLine(line) {
			continue
		}

		tx, err := ExtractTransaction(line)
		if err != nil {
			log.WithError(err).Warn("Dropping unparseable statement line",
				logging.Field{Key: logging.FieldLine, Value: lineNo})
			continue
		}
		transactions = append(transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, &parsererror.ParseError{
			Parser: "statement",
			Field:  "stream",
			Value:  "page text",
			Err:    err,
		}
	}

	log.Info("Extracted transactions from statement text",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// ParseFile parses a statement text file from disk.
func ParseFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "statement",
			Field:  "file",
			Value:  path,
			Err:    err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close statement file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	return Parse(f)
}
