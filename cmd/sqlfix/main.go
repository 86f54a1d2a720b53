package main

import (
	"context"
	"fmt"
	"os"

	"github.com/palladin/sqlfix/pkg/cmd"
	"github.com/urfave/cli/v3"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version)
		fmt.Fprintln(cmd.Writer, "Commit:", commit)
		fmt.Fprintln(cmd.Writer, "Date:", date)
	}

	app := cmd.Root(version)
	if err := app.Run(context.Background(), os.Args); err != nil {
		if err != cmd.ErrUsage {
			fmt.Println("Error:", err)
		}
		os.Exit(1)
	}
}
