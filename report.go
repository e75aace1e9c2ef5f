package portfolio

import "time"

// QuoteFunc returns the current price for a symbol on a platform. A failed
// lookup is reported as an unavailable Price, never as an error: a report
// must render its remaining rows no matter how many quotes are missing.
type QuoteFunc func(symbol string, platform Platform) Price

// Position is the rollup of all transactions sharing a (platform, symbol)
// pair.
type Position struct {
	Platform Platform
	Symbol   string
	Quantity Quantity
	Cost     Money // total USD spent on the position
	AvgCost  Price // Cost/Quantity; unavailable when the quantity is zero
	Price    Price // live quote

	// Valued reports whether MarketValue, PnL and PnLPercent are
	// meaningful. It is false when the quote is unavailable.
	Valued      bool
	MarketValue Money
	PnL         Money
	PnLPercent  Percent
}

// SymbolSummary is the cross-platform rollup of all positions sharing a
// symbol.
type SymbolSummary struct {
	Symbol   string
	Quantity Quantity
	Cost     Money
	AvgCost  Price

	// Partial reports that at least one contributing position had no
	// quote: Cost covers the whole summary but MarketValue and P&L only
	// the valued part.
	Partial     bool
	Valued      bool
	ValuedCost  Money
	MarketValue Money
	PnL         Money
	PnLPercent  Percent
}

// ClassSummary is the rollup of all positions sharing an asset class.
type ClassSummary struct {
	Class AssetClass
	Cost  Money

	Partial     bool
	Valued      bool
	ValuedCost  Money
	MarketValue Money
	PnL         Money
	PnLPercent  Percent
}

// Report holds the three row sets of a portfolio report. Rows appear in
// first-appearance order of the input transactions, which makes the output
// deterministic run-to-run.
type Report struct {
	Time      time.Time
	Positions []Position
	Symbols   []SymbolSummary
	Classes   []ClassSummary
}

// groupKey identifies a position.
type groupKey struct {
	platform Platform
	symbol   string
}

// Aggregate groups the transactions by (platform, symbol), quotes each group
// exactly once, and derives the symbol and asset-class summaries. The quote
// function is called synchronously; aggregation is complete when Aggregate
// returns.
func Aggregate(txs []Transaction, quote QuoteFunc) *Report {
	r := &Report{Time: time.Now()}

	// 1. group by (platform, symbol), preserving first appearance order.
	index := make(map[groupKey]int)
	for _, tx := range txs {
		key := groupKey{tx.Platform, tx.Symbol}
		i, ok := index[key]
		if !ok {
			i = len(r.Positions)
			index[key] = i
			r.Positions = append(r.Positions, Position{Platform: tx.Platform, Symbol: tx.Symbol})
		}
		p := &r.Positions[i]
		p.Quantity = p.Quantity.Add(tx.Quantity)
		p.Cost = p.Cost.Add(tx.Amount)
	}

	// 2. one quote per group, then derive value and P&L.
	for i := range r.Positions {
		p := &r.Positions[i]
		// A zero quantity cannot happen under the positive-qty invariant,
		// but a malformed data file must not divide by zero.
		if !p.Quantity.IsZero() {
			p.AvgCost = PriceOf(p.Cost.Div(p.Quantity))
		}
		p.Price = quote(p.Symbol, p.Platform)
		if !p.Price.Available() {
			continue
		}
		p.Valued = true
		p.MarketValue = p.Price.Value().Mul(p.Quantity)
		p.PnL = p.MarketValue.Sub(p.Cost)
		if !p.Cost.IsZero() {
			p.PnLPercent = p.PnL.PercentOf(p.Cost)
		}
	}

	// 3. cross-platform symbol summaries.
	symbolIndex := make(map[string]int)
	for _, p := range r.Positions {
		i, ok := symbolIndex[p.Symbol]
		if !ok {
			i = len(r.Symbols)
			symbolIndex[p.Symbol] = i
			r.Symbols = append(r.Symbols, SymbolSummary{Symbol: p.Symbol})
		}
		s := &r.Symbols[i]
		s.Quantity = s.Quantity.Add(p.Quantity)
		s.Cost = s.Cost.Add(p.Cost)
		if p.Valued {
			s.Valued = true
			s.ValuedCost = s.ValuedCost.Add(p.Cost)
			s.MarketValue = s.MarketValue.Add(p.MarketValue)
		} else {
			s.Partial = true
		}
	}
	for i := range r.Symbols {
		s := &r.Symbols[i]
		if !s.Quantity.IsZero() {
			s.AvgCost = PriceOf(s.Cost.Div(s.Quantity))
		}
		if s.Valued {
			s.PnL = s.MarketValue.Sub(s.ValuedCost)
			if !s.ValuedCost.IsZero() {
				s.PnLPercent = s.PnL.PercentOf(s.ValuedCost)
			}
		}
	}

	// 4. asset-class summaries.
	classIndex := make(map[AssetClass]int)
	for _, p := range r.Positions {
		class := p.Platform.AssetClass()
		i, ok := classIndex[class]
		if !ok {
			i = len(r.Classes)
			classIndex[class] = i
			r.Classes = append(r.Classes, ClassSummary{Class: class})
		}
		c := &r.Classes[i]
		c.Cost = c.Cost.Add(p.Cost)
		if p.Valued {
			c.Valued = true
			c.ValuedCost = c.ValuedCost.Add(p.Cost)
			c.MarketValue = c.MarketValue.Add(p.MarketValue)
		} else {
			c.Partial = true
		}
	}
	for i := range r.Classes {
		c := &r.Classes[i]
		if c.Valued {
			c.PnL = c.MarketValue.Sub(c.ValuedCost)
			if !c.ValuedCost.IsZero() {
				c.PnLPercent = c.PnL.PercentOf(c.ValuedCost)
			}
		}
	}

	return r
}
