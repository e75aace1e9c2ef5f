// Package cmd implements the CLI application to manage the portfolio.
// A main package calls Register() to install the subcommands, and Execute()
// on the user-selected one.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/yangwl356/portfolio-tracker-cli"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&reportCmd{}, "reports")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFileFlag = flag.String("data-file", "", "Path to the portfolio data file (defaults to $PTRACK_DATA_FILE or portfolio_data.json)")
var verboseFlag = flag.Bool("v", false, "Log price fetches and other diagnostics to stderr")

const defaultDataFile = "portfolio_data.json"

// DataFile resolves the portfolio data file path: flag, then environment,
// then the default in the current directory.
func DataFile() string {
	if *dataFileFlag != "" {
		return *dataFileFlag
	}
	if env := os.Getenv("PTRACK_DATA_FILE"); env != "" {
		return env
	}
	return defaultDataFile
}

// SetupLogging configures the process-wide logger from the -v flag.
func SetupLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if *verboseFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// openStore loads the portfolio from the app data file.
func openStore() (*portfolio.Store, error) {
	return portfolio.Open(DataFile())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. output is not a terminal style glamour
// knows about).
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
