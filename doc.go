// Package portfolio provides the types and functions for tracking personal
// investments: recording buy transactions, persisting them to a local file,
// and aggregating them into cost-basis and profit-and-loss reports.
//
// The core functionalities include:
//   - Transaction Store: a durable mapping from transaction ID to transaction
//     record, loaded from and rewritten to a single JSON file on every
//     mutation.
//   - Platform Dispatch: a closed set of trading platforms (Binance, OKX,
//     Coinbase, stock/ETF brokerage), each determining one price-fetch route
//     and one asset class.
//   - Aggregation: a stateless engine that rolls transactions up into
//     per-position, per-symbol and per-asset-class views, with exact decimal
//     arithmetic and explicit handling of unavailable prices.
//
// This package serves as the foundational logic for the `ptrack` command-line
// tool.
package portfolio
