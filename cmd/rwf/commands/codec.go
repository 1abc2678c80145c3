package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/rwfjson"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "primitive type: int, uint, float, double, real, real4rb, real8rb, date, time, datetime, qos, state, enum, buffer, ascii, utf8 or rmtes.",
		Required: true,
	}
}

func parseType(cmd *cli.Command) (rwf.DataType, error) {
	t, err := rwf.ParseDataType(cmd.String("type"))
	if err != nil {
		return rwf.DataTypeUnknown, err
	}
	return t, nil
}

func args(cmd *cli.Command) ([]string, error) {
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return nil, errors.New(cmd.UsageText)
	}
	return values, nil
}

func encodeText(t rwf.DataType, s string) ([]byte, error) {
	p, err := rwf.ParsePrimitive(t, s)
	if err != nil {
		return nil, err
	}
	return rwf.MarshalPrimitive(p)
}

// decodeHex reads hexadecimal bytes, ignoring spaces.
func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.Wrapf(rwf.ErrInvalidArgument, "invalid hex %q", s)
	}
	return b, nil
}

// NewEncodeCommand returns a cli.Command for "rwf encode".
func NewEncodeCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode values and print their bytes in hexadecimal",
		UsageText: `rwf encode -t type value...`,
		Description: `The encode command parses each value as the given type
and prints its encoding, one value per line:

$ rwf encode -t real 12.5
0d7d`,
		Flags: []cli.Flag{typeFlag()},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		t, err := parseType(cmd)
		if err != nil {
			return err
		}
		values, err := args(cmd)
		if err != nil {
			return err
		}

		for _, v := range values {
			b, err := encodeText(t, v)
			if err != nil {
				return errors.Wrapf(err, "encode %q", v)
			}
			fmt.Fprintln(e.out, hex.EncodeToString(b))
		}
		return nil
	}

	return &cmd
}

// NewDecodeCommand returns a cli.Command for "rwf decode".
func NewDecodeCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode hexadecimal bytes and print the values",
		UsageText: `rwf decode [options] -t type hex...`,
		Description: `The decode command decodes each argument as a value of
the given type. Arguments are decoded concurrently and printed in order:

$ rwf decode -t real 0d7d
12.5

Blank values are printed as an empty line.`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "print the values as JSON.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		t, err := parseType(cmd)
		if err != nil {
			return err
		}
		inputs, err := args(cmd)
		if err != nil {
			return err
		}

		asJSON := cmd.Bool("json")
		lines := make([]string, len(inputs))

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(e.cfg.Workers)
		for i := range inputs {
			i := i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				line, err := decodeLine(t, inputs[i], asJSON)
				if err != nil {
					return errors.Wrapf(err, "decode %q", inputs[i])
				}
				lines[i] = line
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		e.logger.Debug().Int("values", len(lines)).Stringer("type", t).Msg("decoded")
		for _, l := range lines {
			fmt.Fprintln(e.out, l)
		}
		return nil
	}

	return &cmd
}

func decodeLine(t rwf.DataType, input string, asJSON bool) (string, error) {
	b, err := decodeHex(input)
	if err != nil {
		return "", err
	}

	p, err := rwf.UnmarshalPrimitive(t, b)
	if err != nil && !rwf.IsBlank(err) {
		return "", err
	}

	if asJSON {
		j, err := rwfjson.Marshal(p)
		return string(j), err
	}
	return p.String(), nil
}

// NewHexDumpCommand returns a cli.Command for "rwf hexdump".
func NewHexDumpCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "hexdump",
		Usage:     "Encode a value and print a hex dump of its bytes",
		UsageText: `rwf hexdump -t type value`,
		Flags:     []cli.Flag{typeFlag()},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		t, err := parseType(cmd)
		if err != nil {
			return err
		}
		values, err := args(cmd)
		if err != nil {
			return err
		}

		for _, v := range values {
			b, err := encodeText(t, v)
			if err != nil {
				return errors.Wrapf(err, "encode %q", v)
			}
			fmt.Fprintln(e.out, rwf.NewBuffer(b).HexDump())
		}
		return nil
	}

	return &cmd
}

// NewJSONCommand returns a cli.Command for "rwf json".
func NewJSONCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "json",
		Usage:     "Convert values between text and JSON",
		UsageText: `rwf json [options] -t type value...`,
		Description: `The json command prints the JSON representation of each value:

$ rwf json -t qos "Delayed(5)/TickByTick"
{"Timeliness":"Delayed","Rate":"TickByTick","TimeInfo":5}

With --reverse, the arguments are read as JSON and printed as text.`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "read JSON and print text.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		t, err := parseType(cmd)
		if err != nil {
			return err
		}
		values, err := args(cmd)
		if err != nil {
			return err
		}

		for _, v := range values {
			if cmd.Bool("reverse") {
				p, err := rwfjson.Unmarshal(t, []byte(v))
				if err != nil {
					return errors.Wrapf(err, "read json %s", v)
				}
				fmt.Fprintln(e.out, p.String())
				continue
			}

			p, err := rwf.ParsePrimitive(t, v)
			if err != nil {
				return err
			}
			j, err := rwfjson.Marshal(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, string(j))
		}
		return nil
	}

	return &cmd
}
