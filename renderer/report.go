// Package renderer formats the tracker's data structures into markdown,
// which the cmd layer prints through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/yangwl356/portfolio-tracker-cli"
)

// ReportMarkdown renders the three-level portfolio report.
func ReportMarkdown(r *portfolio.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Report")

	if len(r.Positions) == 0 {
		doc.PlainText("No transactions found. Add some transactions first!")
		return doc.String()
	}

	doc.H2("Detailed Breakdown")
	detail := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Platform", "Symbol", "Qty", "Avg Cost", "Live Price", "Cost", "Market Value", "PnL $", "PnL %"},
	}
	for _, p := range r.Positions {
		row := []string{
			p.Platform.String(),
			p.Symbol,
			p.Quantity.String(),
			p.AvgCost.String(),
			p.Price.String(),
			p.Cost.String(),
		}
		if p.Valued {
			row = append(row, p.MarketValue.String(), p.PnL.SignedString(), p.PnLPercent.SignedString())
		} else {
			row = append(row, "N/A", "N/A", "N/A")
		}
		detail.Rows = append(detail.Rows, row)
	}
	doc.Table(detail)

	doc.H2("Symbol Summary (Cross-Platform)")
	symbols := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Qty", "Cost", "Avg Cost", "Market Value", "PnL $", "PnL %"},
	}
	partial := false
	for _, s := range r.Symbols {
		row := []string{s.Symbol, s.Quantity.String(), s.Cost.String(), s.AvgCost.String()}
		row = append(row, summaryValueCells(s.Valued, s.Partial, s.MarketValue, s.PnL, s.PnLPercent)...)
		partial = partial || s.Partial
		symbols.Rows = append(symbols.Rows, row)
	}
	doc.Table(symbols)

	doc.H2("Asset Class Summary")
	classes := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset Class", "Cost", "Market Value", "PnL $", "PnL %"},
	}
	for _, c := range r.Classes {
		row := []string{c.Class.String(), c.Cost.String()}
		row = append(row, summaryValueCells(c.Valued, c.Partial, c.MarketValue, c.PnL, c.PnLPercent)...)
		partial = partial || c.Partial
		classes.Rows = append(classes.Rows, row)
	}
	doc.Table(classes)

	if partial {
		doc.PlainText(fmt.Sprintf("%s: some prices were unavailable; the marked market values and P&L cover only the priced part of the summary.", partialMarker))
	}

	return doc.String()
}

const partialMarker = "(partial)"

// summaryValueCells renders the market value and P&L cells of a summary row.
// Rows with no priced position at all show N/A; rows where only part of the
// positions could be priced are marked partial instead of silently treating
// the missing prices as zero.
func summaryValueCells(valued, partial bool, marketValue, pnl portfolio.Money, pct portfolio.Percent) []string {
	if !valued {
		return []string{"N/A", "N/A", "N/A"}
	}
	mv := marketValue.String()
	if partial {
		mv += " " + partialMarker
	}
	return []string{mv, pnl.SignedString(), pct.SignedString()}
}
