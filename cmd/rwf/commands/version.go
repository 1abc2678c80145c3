package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/chaisql/rwf"
	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "rwf version".
func NewVersionCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the rwf CLI version and the supported wire format version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cliVersion := "(unknown)"
			if info, ok := debug.ReadBuildInfo(); ok {
				cliVersion = info.Main.Version
			}

			fmt.Fprintf(e.out, "rwf CLI %v\nRWF %d.%d\n", cliVersion, rwf.MajorVersion, rwf.MinorVersion)
			return nil
		},
	}
}
