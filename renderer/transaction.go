package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/yangwl356/portfolio-tracker-cli"
)

const timeLayout = "2006-01-02 15:04"

// TransactionsMarkdown renders the transaction list, in the order given.
func TransactionsMarkdown(txs []portfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions found. Add some transactions first!")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Date", "Symbol", "Platform", "Amount", "Qty", "Asset Class"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.ID,
			tx.Timestamp.Format(timeLayout),
			tx.Symbol,
			tx.Platform.String(),
			tx.Amount.String(),
			tx.Quantity.String(),
			tx.AssetClass().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// TransactionMarkdown renders a single transaction as a field/value table,
// used after add, edit and before delete.
func TransactionMarkdown(title string, tx portfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", tx.ID},
			{"Symbol", tx.Symbol},
			{"Platform", tx.Platform.String()},
			{"Amount", tx.Amount.String()},
			{"Quantity", tx.Quantity.String()},
			{"Asset Class", tx.AssetClass().String()},
			{"Timestamp", tx.Timestamp.Format(timeLayout)},
		},
	}
	if !tx.LastModified.IsZero() {
		table.Rows = append(table.Rows, []string{"Last Modified", tx.LastModified.Format(timeLayout)})
	}
	doc.Table(table)

	return doc.String()
}
