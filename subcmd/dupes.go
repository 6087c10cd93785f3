package subcmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lexonic/dx7dump/listing"
	"github.com/lexonic/dx7dump/log"
	"github.com/lexonic/dx7dump/sysex"
)

var Dupes = cli.Command{
	Name:      "dupes",
	Aliases:   []string{"u"},
	Usage:     "Finds duplicate patches within DX7 bank dump files",
	ArgsUsage: "<filename>...",
	Flags:     logFlags,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dupes")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		failed := false
		for _, path := range ctx.Args() {
			if err := findDupes(path); err != nil {
				listing.Filename(os.Stdout, path)
				log.Warnf("%v", err)
				failed = true
			}
		}
		if failed {
			return cli.NewExitError(fmt.Errorf("some files could not be scanned"), 1)
		}
		return nil
	},
}

func findDupes(path string) error {
	f, err := sysex.ReadFile(path)
	if err != nil {
		return err
	}
	if err := f.Verify(); err != nil {
		return err
	}
	if f.Single != nil {
		return fmt.Errorf("single voice dumps hold only one patch")
	}
	listing.Filename(os.Stdout, path)
	dupes := f.Bank.FindDuplicates()
	for _, d := range dupes {
		fmt.Printf("Found duplicate: %d = %d\n", d.I+1, d.J+1)
	}
	if len(dupes) != 0 {
		fmt.Println()
	}
	return nil
}
