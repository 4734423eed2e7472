// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package roster implements the "tessera roster" command group: name
// resolution over the roster of well-known principals.
package roster

import (
	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
)

// rosterEntry is one name/principal pair in command output.
type rosterEntry struct {
	Name      string `json:"name"`
	Principal string `json:"principal"`
}

// Command returns the "roster" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "roster",
		Summary: "Resolve names for well-known principals",
		Description: `Look up principals by name and names by principal.

A roster is a YAML file mapping stable operator-chosen names to
principal texts, one-to-one:

    principals:
      ledger: em77e-bvlzu-aq
      governance: 2vxsx-fae

Commands read the roster named by --roster PATH or the TESSERA_ROSTER
environment variable. With neither set, only the builtin names
(management, anonymous) are known. A loaded roster stands alone; it
does not inherit the builtin names.`,
		Subcommands: []*cli.Command{
			listCommand(),
			resolveCommand(),
			lookupCommand(),
			validateCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "List the builtin names",
				Command:     "tessera roster list",
			},
			{
				Description: "List a deployment roster",
				Command:     "tessera roster list --roster ./roster.yaml",
			},
			{
				Description: "Resolve a name to its principal",
				Command:     "tessera roster resolve ledger",
			},
			{
				Description: "Find the name of a principal",
				Command:     "tessera roster lookup em77e-bvlzu-aq",
			},
			{
				Description: "Check a roster file before deploying it",
				Command:     "tessera roster validate ./roster.yaml",
			},
		},
	}
}
