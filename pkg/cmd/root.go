package cmd

import (
	"context"
	"fmt"

	"github.com/palladin/sqlfix/pkg/config"
	"github.com/palladin/sqlfix/pkg/consts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// ErrUsage is returned when the command line is malformed. The usage hint has
// already been printed by the time callers see it, so it carries no message of
// its own.
var ErrUsage = errors.New("usage")

// Root creates the sqlfix CLI application. The returned command takes exactly
// one filename argument and rewrites the file in place.
//
// Global Flags:
//   - --config, -c: the sqlfix config file (defaults to sqlfix.yaml; a missing
//     file is fine and leaves the default settings in effect)
//
// Example usage:
//
//	app := cmd.Root("v1.0.0")
//	err := app.Run(ctx, []string{"sqlfix", "Queries.cs"})
func Root(version string) *cli.Command {
	return &cli.Command{
		Name:  "sqlfix",
		Usage: "Rewrite SQL string literals into a canonical multi-line style",
		Description: `sqlfix rewrites SELECT ... FROM ... blocks found inside triple-quoted
string literals so that each projected column sits on its own indented line
and the table reference is indented beneath FROM. Files with no matching
literals are left unchanged.`,
		Version:   version,
		ArgsUsage: "<filename>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfix config file",
				Sources: cli.EnvVars("SQLFIX_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				fmt.Fprintln(cmd.Writer, "Usage: sqlfix <filename>")
				return ErrUsage
			}

			cfg, err := config.LoadConfigFile(cmd.String("config"))
			if err != nil {
				return err
			}

			return fixFile(cmd.Args().First(), cfg.FormatterOptions(), cmd.Writer)
		},
	}
}
