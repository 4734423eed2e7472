// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/roster"
)

// resolveParams holds the parameters for the resolve command.
type resolveParams struct {
	cli.JSONOutput
	Roster string `flag:"roster" desc:"roster file to resolve against"`
}

func resolveCommand() *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve a name to its principal",
		Usage:   "tessera roster resolve <name> [flags]",
		Description: `Print the canonical principal text registered under a name. Fails
when the selected roster does not know the name.`,
		Examples: []cli.Example{
			{
				Description: "Resolve a deployment name",
				Command:     "tessera roster resolve ledger --roster ./roster.yaml",
			},
			{
				Description: "Resolve a builtin name",
				Command:     "tessera roster resolve management",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("resolve takes exactly one name, got %d arguments", len(args))
			}
			name := args[0]

			r, err := roster.Select(params.Roster)
			if err != nil {
				return err
			}

			p, ok := r.Resolve(name)
			if !ok {
				return fmt.Errorf("name %q not in roster", name)
			}

			if done, err := params.EmitJSON(rosterEntry{Name: name, Principal: p.Text()}); done {
				return err
			}
			fmt.Println(p.Text())
			return nil
		},
	}
}
