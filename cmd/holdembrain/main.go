package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Serve    ServeCmd         `cmd:"" help:"Run the player HTTP service"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a hand from the command line"`
	Classify ClassifyCmd      `cmd:"" help:"Classify hole cards against a board"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdembrain"),
		kong.Description("Hold'em bot decision core: evaluation, ranking and strength classification"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
