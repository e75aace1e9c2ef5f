package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yangwl356/portfolio-tracker-cli"
	"github.com/yangwl356/portfolio-tracker-cli/pricing"
	"github.com/yangwl356/portfolio-tracker-cli/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "fetch live prices and report cost basis and P&L" }
func (*reportCmd) Usage() string {
	return `ptrack report

  Fetches a live price for every distinct (platform, symbol) position and
  prints three tables: the per-platform detail, the cross-platform symbol
  summary, and the asset class summary. Positions whose price cannot be
  fetched still show their cost columns.
`
}

func (*reportCmd) SetFlags(*flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	quoter := pricing.NewQuoter()
	report := portfolio.Aggregate(store.Transactions(), quoter.Quote)

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
