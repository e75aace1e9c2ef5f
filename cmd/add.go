package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yangwl356/portfolio-tracker-cli"
	"github.com/yangwl356/portfolio-tracker-cli/renderer"
)

type addCmd struct {
	symbol   string
	platform string
	amount   float64
	qty      float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase" }
func (*addCmd) Usage() string {
	return `ptrack add -symbol <symbol> -platform <platform> -amount <usd> -qty <quantity>

  Records a buy transaction: the USD amount spent on a quantity of the given
  symbol, on one of the supported platforms (binance, okx, coinbase,
  stock_etf). Prints the created record with its ID.

Usage Examples:
$ ptrack add -symbol BTCUSD -platform binance -amount 4000 -qty 0.05
$ ptrack add -symbol AAPL -platform stock_etf -amount 1500 -qty 10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Instrument symbol, e.g. BTCUSD or AAPL")
	f.StringVar(&c.platform, "platform", "", "Trading platform (binance, okx, coinbase, stock_etf)")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent in USD")
	f.Float64Var(&c.qty, "qty", 0, "Quantity purchased")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.platform == "" || c.amount <= 0 || c.qty <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	platform, err := portfolio.ParsePlatform(c.platform)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx := portfolio.NewTransaction(c.symbol, platform, portfolio.M(c.amount), portfolio.Q(c.qty))
	created, err := store.Add(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error adding transaction:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionMarkdown("Transaction added", created))
	return subcommands.ExitSuccess
}
