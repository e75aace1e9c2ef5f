package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file handles the CSV interchange format shared with the desktop GUI.
//
// The format is headerless, one transaction per row:
//
//	time,symbol,platform,amount,qty
//
// IDs are not part of the format; importing assigns fresh ones.

// ExportCSV writes the transactions to w in the interchange format, in the
// order given.
func ExportCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	for _, tx := range txs {
		record := []string{
			tx.Timestamp.Format("2006-01-02T15:04:05"),
			tx.Symbol,
			tx.Platform.String(),
			tx.Amount.value.String(),
			tx.Quantity.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads transactions from r in the interchange format. Each row is
// validated; the returned transactions carry their recorded timestamp but no
// ID, ready to be added to a store.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	var txs []Transaction
	line := 0
	for {
		record, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse csv line %d: %w", line, err)
		}

		ts, err := parseTimestamp(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid time %q: %w", line, record[0], err)
		}
		platform, err := ParsePlatform(strings.ToLower(record[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, record[3], err)
		}
		qty, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid qty %q: %w", line, record[4], err)
		}

		tx := NewTransaction(record[1], platform, M(amount), Q(qty))
		tx.Timestamp = ts
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
