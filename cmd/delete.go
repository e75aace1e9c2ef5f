package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/yangwl356/portfolio-tracker-cli/renderer"
)

type deleteCmd struct {
	id    string
	force bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction" }
func (*deleteCmd) Usage() string {
	return `ptrack delete -id <id> [-force]

  Shows the transaction and asks for confirmation before removing it.
  Pass -force to skip the prompt.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction ID")
	f.BoolVar(&c.force, "force", false, "Delete without asking for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, ok := store.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %q not found\n", c.id)
		return subcommands.ExitFailure
	}

	if !c.force {
		printMarkdown(renderer.TransactionMarkdown("About to delete", tx))
		if !confirm(fmt.Sprintf("Are you sure you want to delete transaction %s? (y/N): ", c.id)) {
			fmt.Println("Deletion cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if _, err := store.Delete(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction %s deleted.\n", c.id)
	return subcommands.ExitSuccess
}

// confirm prompts on stdout and reads a yes/no answer from stdin. Anything
// but yes is no.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
