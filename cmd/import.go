package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/yangwl356/portfolio-tracker-cli"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a GUI CSV file" }
func (*importCmd) Usage() string {
	return `ptrack import -i <file>

  Reads transactions from a headerless CSV interchange file
  (time,symbol,platform,amount,qty) and appends them to the portfolio.
  Rows keep their recorded time but receive fresh IDs.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := portfolio.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for _, tx := range txs {
		if _, err := store.Add(tx); err != nil {
			fmt.Fprintln(os.Stderr, "Error adding imported transaction:", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transactions from %s\n", len(txs), c.input)
	return subcommands.ExitSuccess
}
