// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"context"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"log/slog"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/principal"
)

// deriveParams holds the parameters for the derive command.
type deriveParams struct {
	Hex bool `flag:"hex,x" desc:"treat input as hex-encoded DER"`
}

func deriveCommand() *cli.Command {
	var params deriveParams

	return &cli.Command{
		Name:    "derive",
		Summary: "Derive a self-authenticating principal from a public key",
		Usage:   "tessera principal derive [file] [flags]",
		Description: `Compute the self-authenticating principal of a public key: the
SHA-224 digest of its DER-encoded SubjectPublicKeyInfo, with the
self-authenticating tag byte appended.

Input is a PEM "PUBLIC KEY" block or bare DER, read from a trailing
file argument or stdin. With --hex the DER is a hex string given as
an argument or on stdin instead.

The key bytes are digested exactly as provided; the command does not
parse the key, so key types the Go x509 parser rejects (secp256k1
among them) derive the same principal they do on the network.`,
		Examples: []cli.Example{
			{
				Description: "Derive from a PEM public key file",
				Command:     "tessera principal derive service.pem",
			},
			{
				Description: "Derive from DER on stdin",
				Command:     "openssl pkey -in service.pem -pubout -outform DER | tessera principal derive",
			},
			{
				Description: "Derive from hex-encoded DER",
				Command:     "tessera principal derive --hex 302a300506032b6570032100...",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var der []byte
			if params.Hex {
				value, err := argOrStdin(args)
				if err != nil {
					return err
				}
				der, err = hex.DecodeString(stripSpaces(value))
				if err != nil {
					return fmt.Errorf("decode hex: %w", err)
				}
			} else {
				data, remaining, err := readInput(args)
				if err != nil {
					return err
				}
				if len(remaining) > 0 {
					return fmt.Errorf("unexpected argument: %s", remaining[0])
				}
				der, err = keyBytes(data)
				if err != nil {
					return err
				}
			}

			fmt.Println(principal.SelfAuthenticating(der).Text())
			return nil
		},
	}
}

// keyBytes extracts the DER key from input: the contents of a PEM
// "PUBLIC KEY" block when one is present, otherwise the input
// verbatim.
func keyBytes(data []byte) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return data, nil
	}
	if block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("PEM block type %q, want PUBLIC KEY", block.Type)
	}
	return block.Bytes, nil
}
