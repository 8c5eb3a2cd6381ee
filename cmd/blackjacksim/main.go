package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to YAML config file" type:"path"`
	Verbose bool             `help:"Debug logging"`

	Run        RunCmd        `cmd:"" default:"withargs" help:"Run a blackjack simulation"`
	Serve      ServeCmd      `cmd:"" help:"Serve the simulation HTTP API"`
	Strategies StrategiesCmd `cmd:"" help:"List the available strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjacksim"),
		kong.Description("Blackjack strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
