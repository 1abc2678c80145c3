package commands

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/store"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

func (e *env) openStore() (*store.Store, error) {
	return store.Open(e.cfg.StorePath, store.Options{Logger: e.logger})
}

// withStore opens the store, runs fn and closes the store.
func (e *env) withStore(fn func(st *store.Store) error) (err error) {
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(st)
}

// NewStoreCommand returns a cli.Command for "rwf store".
func NewStoreCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "store",
		Usage: "Manage the store of encoded samples",
		Description: `Samples are named encoded values kept in a Pebble database.
They are used as golden vectors: "rwf store verify" checks that each of
them decodes and encodes back to the same value.`,
		Commands: []*cli.Command{
			newStorePutCommand(e),
			newStoreGetCommand(e),
			newStoreListCommand(e),
			newStoreDeleteCommand(e),
			newStoreVerifyCommand(e),
		},
	}
}

func newStorePutCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "put",
		Usage:     "Encode a value and store it under a name",
		UsageText: `rwf store put [options] -t type name value`,
		Flags: []cli.Flag{
			typeFlag(),
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "the value is already encoded, in hexadecimal.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		t, err := parseType(cmd)
		if err != nil {
			return err
		}
		if cmd.Args().Len() != 2 {
			return errors.New(cmd.UsageText)
		}
		name, value := cmd.Args().Get(0), cmd.Args().Get(1)

		return e.withStore(func(st *store.Store) error {
			if cmd.Bool("hex") {
				b, err := decodeHex(value)
				if err != nil {
					return err
				}
				return st.Put(store.Sample{Name: name, Type: t, Encoded: b})
			}

			p, err := rwf.ParsePrimitive(t, value)
			if err != nil {
				return err
			}
			return st.PutPrimitive(name, p)
		})
	}

	return &cmd
}

func newStoreGetCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "get",
		Usage:     "Print a sample",
		UsageText: `rwf store get name`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return errors.New(cmd.UsageText)
		}

		return e.withStore(func(st *store.Store) error {
			sample, err := st.Get(name)
			if err != nil {
				return err
			}
			return e.printSample(sample)
		})
	}

	return &cmd
}

func newStoreListCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "list",
		Usage:     "Print the samples whose name starts with a prefix",
		UsageText: `rwf store list [prefix]`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		return e.withStore(func(st *store.Store) error {
			samples, err := st.List(cmd.Args().First())
			if err != nil {
				return err
			}

			for _, s := range samples {
				if err := e.printSample(s); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return &cmd
}

func newStoreDeleteCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "delete",
		Usage:     "Remove a sample",
		UsageText: `rwf store delete name`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return errors.New(cmd.UsageText)
		}

		return e.withStore(func(st *store.Store) error {
			return st.Delete(name)
		})
	}

	return &cmd
}

func newStoreVerifyCommand(e *env) *cli.Command {
	cmd := cli.Command{
		Name:      "verify",
		Usage:     "Check that samples survive a decode and encode round trip",
		UsageText: `rwf store verify [prefix]`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		return e.withStore(func(st *store.Store) error {
			results, err := st.Verify(ctx, cmd.Args().First(), e.cfg.Workers)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(e.out, "FAIL %s: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(e.out, "ok   %s\n", r.Name)
			}
			if failed > 0 {
				return errors.Newf("%d of %d samples failed", failed, len(results))
			}
			return nil
		})
	}

	return &cmd
}

func (e *env) printSample(s store.Sample) error {
	p, err := s.Decode()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(e.out, "%s\t%s\t%s\t%s\n", s.Name, s.Type, hex.EncodeToString(s.Encoded), p)
	return err
}
