// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/codec"
	"github.com/tessera-foundation/tessera/lib/principal"
)

// decodeParams holds the parameters for the decode command.
type decodeParams struct {
	Raw  bool `flag:"raw"  desc:"write raw principal bytes instead of hex"`
	CBOR bool `flag:"cbor" desc:"write the principal as a CBOR byte string"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode canonical text to principal bytes",
		Usage:   "tessera principal decode [text] [flags]",
		Description: `Parse canonical principal text and write the underlying bytes.

The default output is uppercase hex. With --raw the bytes are written
verbatim, for piping into tools that consume binary. With --cbor the
principal is written as a deterministically encoded CBOR byte string,
the form it takes on the Tessera wire.`,
		Examples: []cli.Example{
			{
				Description: "Decode to hex",
				Command:     "tessera principal decode em77e-bvlzu-aq",
			},
			{
				Description: "Decode to raw bytes",
				Command:     "tessera principal decode --raw em77e-bvlzu-aq > principal.bin",
			},
			{
				Description: "Decode to the CBOR wire form",
				Command:     "tessera principal decode --cbor em77e-bvlzu-aq | tessera principal inspect --cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			value, err := argOrStdin(args)
			if err != nil {
				return err
			}
			subject, err := principal.FromText(value)
			if err != nil {
				return err
			}
			return writeDecoded(os.Stdout, subject, params.Raw, params.CBOR)
		},
	}
}

// writeDecoded renders a parsed principal: hex by default, the bytes
// verbatim with raw, a CBOR byte string with wire.
func writeDecoded(w io.Writer, p principal.Principal, raw, wire bool) error {
	switch {
	case raw && wire:
		return fmt.Errorf("--raw and --cbor are mutually exclusive")
	case wire:
		data, err := codec.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode CBOR principal: %w", err)
		}
		_, err = w.Write(data)
		return err
	case raw:
		_, err := w.Write(p.Raw())
		return err
	default:
		_, err := fmt.Fprintln(w, p.Hex())
		return err
	}
}
