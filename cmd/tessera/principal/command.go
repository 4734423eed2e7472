// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package principal implements the "tessera principal" command group:
// inspection, format conversion, key derivation, and ordering of
// principal identifiers.
package principal

import (
	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
)

// Command returns the "principal" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "principal",
		Summary: "Inspect and convert principal identifiers",
		Description: `Tools for working with principal identifiers from the command line.

A principal is the byte-sequence identity Tessera uses for users,
canisters, and platform services. Its canonical text form is base-32
with an embedded checksum, grouped by dashes: "em77e-bvlzu-aq".

Subcommands convert between the text, hex, raw, and CBOR forms
(encode, decode), derive self-authenticating principals from public
keys (derive), classify and annotate identifiers (inspect), and order
them (compare).

Commands that annotate principals with names honor --roster PATH and
the TESSERA_ROSTER environment variable; with neither set they know
only the builtin names (management, anonymous).`,
		Subcommands: []*cli.Command{
			inspectCommand(),
			encodeCommand(),
			decodeCommand(),
			deriveCommand(),
			compareCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Inspect a principal's forms and kind",
				Command:     "tessera principal inspect em77e-bvlzu-aq",
			},
			{
				Description: "Encode hex bytes to canonical text",
				Command:     "tessera principal encode abcd01",
			},
			{
				Description: "Decode canonical text to hex",
				Command:     "tessera principal decode em77e-bvlzu-aq",
			},
			{
				Description: "Derive a principal from a PEM public key",
				Command:     "tessera principal derive service.pem",
			},
			{
				Description: "Order two principals",
				Command:     "tessera principal compare aaaaa-aa 2vxsx-fae",
			},
		},
	}
}
