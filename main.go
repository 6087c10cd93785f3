package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/lexonic/dx7dump/subcmd"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "dx7dump"
	app.Version = version
	app.Usage = "Formats Yamaha DX7 voice dump sysex files as human readable text"
	app.Authors = []cli.Author{
		{
			Name: "lexonic",
		},
	}
	app.HelpName = "dx7dump"

	app.Commands = []cli.Command{
		subcmd.Dump,
		subcmd.Fix,
		subcmd.Dupes,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
