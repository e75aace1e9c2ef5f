package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yangwl356/portfolio-tracker-cli"
	"github.com/yangwl356/portfolio-tracker-cli/renderer"
)

type editCmd struct {
	id       string
	symbol   string
	platform string
	amount   float64
	qty      float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `ptrack edit -id <id> [-symbol <symbol>] [-platform <platform>] [-amount <usd>] [-qty <quantity>]

  Edits a transaction in place. Only the fields passed as flags change; the
  ID and the original creation timestamp are preserved, and the edit time is
  recorded.

Usage Examples:
$ ptrack edit -id ab12cd34 -amount 2000
$ ptrack edit -id ab12cd34 -symbol ETHUSD -platform coinbase

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction ID")
	f.StringVar(&c.symbol, "symbol", "", "New symbol")
	f.StringVar(&c.platform, "platform", "", "New platform (binance, okx, coinbase, stock_etf)")
	f.Float64Var(&c.amount, "amount", 0, "New amount in USD")
	f.Float64Var(&c.qty, "qty", 0, "New quantity")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	// Only flags explicitly set on the command line become part of the
	// update; a zero default never overwrites a stored field.
	var update portfolio.Update
	var badPlatform error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "symbol":
			update.Symbol = &c.symbol
		case "platform":
			platform, err := portfolio.ParsePlatform(c.platform)
			if err != nil {
				badPlatform = err
				return
			}
			update.Platform = &platform
		case "amount":
			amount := portfolio.M(c.amount)
			update.Amount = &amount
		case "qty":
			qty := portfolio.Q(c.qty)
			update.Quantity = &qty
		}
	})
	if badPlatform != nil {
		fmt.Fprintln(os.Stderr, "Error:", badPlatform)
		return subcommands.ExitUsageError
	}
	if update.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, pass at least one of -symbol, -platform, -amount, -qty.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	edited, err := store.Edit(c.id, update)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, portfolio.ErrNotFound) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.TransactionMarkdown("Transaction updated", edited))
	return subcommands.ExitSuccess
}
