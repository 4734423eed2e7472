// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/principal"
)

// encodeParams holds the parameters for the encode command.
type encodeParams struct {
	Raw bool `flag:"raw" desc:"treat input as raw principal bytes"`
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode principal bytes to canonical text",
		Usage:   "tessera principal encode [hex] [flags]",
		Description: `Convert principal bytes to the canonical dash-grouped text form.

By default the input is a hex string, given as an argument or on
stdin; whitespace between digit pairs is ignored. With --raw the
input is raw binary, read from a trailing file argument or stdin.`,
		Examples: []cli.Example{
			{
				Description: "Encode hex bytes",
				Command:     "tessera principal encode abcd01",
			},
			{
				Description: "Encode raw bytes from a file",
				Command:     "tessera principal encode --raw principal.bin",
			},
			{
				Description: "Encode hex from a pipeline",
				Command:     "echo 'ab cd 01' | tessera principal encode",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			subject, err := encodeSubject(args, params.Raw)
			if err != nil {
				return err
			}
			fmt.Println(subject.Text())
			return nil
		},
	}
}

// encodeSubject reads the bytes to encode: a hex string by default,
// raw binary with raw.
func encodeSubject(args []string, raw bool) (principal.Principal, error) {
	if raw {
		data, remaining, err := readInput(args)
		if err != nil {
			return principal.Principal{}, err
		}
		if len(remaining) > 0 {
			return principal.Principal{}, fmt.Errorf("unexpected argument: %s", remaining[0])
		}
		return principal.FromBytes(data), nil
	}

	value, err := argOrStdin(args)
	if err != nil {
		return principal.Principal{}, err
	}
	return principal.FromHex(stripSpaces(value))
}
