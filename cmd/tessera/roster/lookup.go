// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/principal"
	"github.com/tessera-foundation/tessera/lib/roster"
)

// lookupParams holds the parameters for the lookup command.
type lookupParams struct {
	cli.JSONOutput
	Roster string `flag:"roster" desc:"roster file to look up in"`
}

func lookupCommand() *cli.Command {
	var params lookupParams

	return &cli.Command{
		Name:    "lookup",
		Summary: "Find the name of a principal",
		Usage:   "tessera roster lookup <text> [flags]",
		Description: `Print the roster name registered for a principal, the reverse of
resolve. The argument is canonical principal text. Fails when the
selected roster has no name for the principal.`,
		Examples: []cli.Example{
			{
				Description: "Name a principal seen in a log",
				Command:     "tessera roster lookup em77e-bvlzu-aq --roster ./roster.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("lookup takes exactly one principal, got %d arguments", len(args))
			}
			p, err := principal.FromText(args[0])
			if err != nil {
				return fmt.Errorf("principal %q: %w", args[0], err)
			}

			r, err := roster.Select(params.Roster)
			if err != nil {
				return err
			}

			name, ok := r.NameOf(p)
			if !ok {
				return fmt.Errorf("no name for principal %v", p)
			}

			if done, err := params.EmitJSON(rosterEntry{Name: name, Principal: p.Text()}); done {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}
}
