package commands

import (
	"context"
	"io"

	"github.com/chaisql/rwf/internal/config"
	"github.com/chaisql/rwf/internal/logging"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// env is shared by every command. It is filled before any action runs.
type env struct {
	out    io.Writer
	cfg    config.Config
	logger zerolog.Logger
}

// NewApp creates the rwf CLI app. Command output is written to out.
func NewApp(out io.Writer) *cli.Command {
	e := env{out: out, cfg: config.Default(), logger: zerolog.Nop()}

	app := cli.Command{
		Name:                  "rwf",
		Usage:                 "Encode, decode and inspect RWF primitive values",
		EnableShellCompletion: true,
		Writer:                out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path of a TOML configuration file.",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level, overrides the configuration file.",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "directory of the sample store, overrides the configuration file.",
			},
		},
		Commands: []*cli.Command{
			NewEncodeCommand(&e),
			NewDecodeCommand(&e),
			NewHexDumpCommand(&e),
			NewJSONCommand(&e),
			NewStoreCommand(&e),
			NewVersionCommand(&e),
		},
	}

	app.Before = func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		return ctx, e.load(cmd)
	}

	return &app
}

// load reads the configuration file, if any, then applies the flags.
func (e *env) load(cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		e.cfg = cfg
	}

	if cmd.IsSet("log-level") {
		e.cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("store") {
		e.cfg.StorePath = cmd.String("store")
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	lvl, err := logging.ParseLevel(e.cfg.LogLevel)
	if err != nil {
		return err
	}
	e.logger = logging.NewStderr("rwf", lvl)
	return nil
}
