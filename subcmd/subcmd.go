// Package subcmd holds the cli commands of dx7dump.
package subcmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/lexonic/dx7dump/log"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func applyLogLevel(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}

// confirm asks a yes/no question on the terminal; empty input means yes.
func confirm(prompt string) bool {
	fmt.Printf("%s [Y/n] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.TrimSpace(line)
	return answer == "" || !strings.EqualFold(answer[:1], "n")
}
