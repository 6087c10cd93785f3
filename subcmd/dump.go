package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lexonic/dx7dump/listing"
	"github.com/lexonic/dx7dump/log"
	"github.com/lexonic/dx7dump/sysex"
)

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps DX7 voice dump files (.syx) as human readable text",
	ArgsUsage: "<filename>...",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "long, l",
			Usage: `Long listing (show parameter values)`,
		},
		cli.BoolFlag{
			Name:  "compact, c",
			Usage: `Compact listing (can also be combined with --long)`,
		},
		cli.IntFlag{
			Name:  "patch, p",
			Usage: `Display patch number NUM only (implies --long)`,
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: `Show voice names also in hex and print single voice data in hex`,
		},
		cli.BoolFlag{
			Name:  "errors, e",
			Usage: `Report only files with errors`,
		},
		cli.BoolFlag{
			Name:  "ascii, a",
			Usage: `Use ASCII instead of Unicode for voice names and algorithm diagrams`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
	}, logFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		patch := ctx.Int("patch")
		if patch < 0 || sysex.NumVoices < patch {
			return cli.NewExitError(fmt.Errorf("patch number must be 1..%d", sysex.NumVoices), 1)
		}
		opts := listing.Options{
			Long:    ctx.Bool("long") || patch != 0,
			Compact: ctx.Bool("compact"),
			Hex:     ctx.Bool("hex"),
			Unicode: !ctx.Bool("ascii"),
			Patch:   patch,
		}
		failed := false
		for _, path := range ctx.Args() {
			if err := dumpFile(path, opts, ctx.Bool("errors"), ctx.Bool("json")); err != nil {
				listing.Filename(os.Stdout, path)
				log.Warnf("%v", err)
				fmt.Println()
				failed = true
			}
		}
		if failed {
			return cli.NewExitError(fmt.Errorf("some files could not be dumped"), 1)
		}
		return nil
	},
}

func dumpFile(path string, opts listing.Options, errorsOnly, asJSON bool) error {
	f, err := sysex.ReadFile(path)
	if err != nil {
		return err
	}
	if err := f.Verify(); err != nil {
		return err
	}
	if f.SoftError {
		listing.Filename(os.Stdout, path)
		for _, diag := range f.Diagnostics {
			log.Warnf("%s", diag)
		}
	}
	opts.SoftError = f.SoftError

	if f.Single != nil {
		voice, err := f.Single.Voice()
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(voice)
		}
		listing.Filename(os.Stdout, path)
		fmt.Printf("File is a Single Voice Dump: %q\n\n", voice.NameString(opts.Unicode))
		return nil
	}

	if asJSON {
		voices, err := f.Bank.Voices()
		if err != nil {
			return err
		}
		return printJSON(voices)
	}
	if errorsOnly {
		if f.SoftError {
			fmt.Println()
		}
		return nil
	}
	return listing.Fprint(os.Stdout, f.Bank, path, opts)
}

func printJSON(data interface{}) error {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(j))
	return nil
}
