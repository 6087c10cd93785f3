package subcmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lexonic/dx7dump/listing"
	"github.com/lexonic/dx7dump/log"
	"github.com/lexonic/dx7dump/sysex"
)

var Fix = cli.Command{
	Name:      "fix",
	Aliases:   []string{"f"},
	Usage:     "Repairs corrupt DX7 bank dump files",
	ArgsUsage: "<filename>...",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name: "no-backup",
			Usage: `Don't create backups (` + sysex.BackupSuffix + `) when fixing files.
	WARNING: this option might result in data-loss!
	Make sure you already have a backup of the sysex file`,
		},
		cli.BoolFlag{
			Name:  "yes, y",
			Usage: `No questions asked, answer everything with yes`,
		},
	}, logFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "fix")
			os.Exit(1)
		}
		applyLogLevel(ctx)
		decide := func() bool { return confirm("Fix this file?") }
		if ctx.Bool("yes") {
			decide = func() bool { return true }
		}
		opts := sysex.RepairOptions{Backup: !ctx.Bool("no-backup")}

		failed := false
		for _, path := range ctx.Args() {
			if err := fixFile(path, opts, decide); err != nil {
				listing.Filename(os.Stdout, path)
				log.Warnf("%v", err)
				failed = true
			}
		}
		if failed {
			return cli.NewExitError(fmt.Errorf("some files could not be fixed"), 1)
		}
		return nil
	},
}

func fixFile(path string, opts sysex.RepairOptions, decide func() bool) error {
	f, err := sysex.ReadFile(path)
	if err != nil {
		return err
	}
	if err := f.Verify(); err != nil {
		return err
	}
	if f.Single != nil {
		log.Infof("%s: single voice dumps are never repaired", path)
		return nil
	}
	if !f.NeedsRepair {
		log.Debugf("%s: nothing to fix", path)
		return nil
	}

	listing.Filename(os.Stdout, path)
	for _, diag := range f.Diagnostics {
		log.Warnf("%s", diag)
	}
	if !decide() {
		return nil
	}
	if err := f.Bank.Repair(path, opts); err != nil {
		return err
	}
	log.Infof("%s: fixed", path)
	return nil
}
