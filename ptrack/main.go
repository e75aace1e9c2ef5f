package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/yangwl356/portfolio-tracker-cli/cmd"
)

func main() {
	// A .env in the working directory may set PTRACK_DATA_FILE and the
	// endpoint overrides; a missing file is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. It returns immediately unless the
// shell is asking for completions, in which case it answers and exits.
func completion() {
	platforms := predict.Set{"binance", "okx", "coinbase", "stock_etf"}
	id := predict.Something

	ptrack := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.json"),
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"symbol":   predict.Something,
				"platform": platforms,
				"amount":   predict.Something,
				"qty":      predict.Something,
			}},
			"list": {},
			"edit": {Flags: map[string]complete.Predictor{
				"id":       id,
				"symbol":   predict.Something,
				"platform": platforms,
				"amount":   predict.Something,
				"qty":      predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"id":    id,
				"force": predict.Nothing,
			}},
			"report": {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"import": {Flags: map[string]complete.Predictor{"i": predict.Files("*.csv")}},
			"topic":  {Args: predict.Set{"getting-started", "platforms", "data-file", "interchange", "all"}},
		},
	}
	ptrack.Complete("ptrack")
}
