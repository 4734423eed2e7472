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

// compareParams holds the parameters for the compare command.
type compareParams struct {
	Quiet bool `flag:"quiet,q" desc:"no output; exit 1 when the principals differ"`
}

func compareCommand() *cli.Command {
	var params compareParams

	return &cli.Command{
		Name:    "compare",
		Summary: "Order two principals",
		Usage:   "tessera principal compare <text> <text> [flags]",
		Description: `Compare two principals by their raw bytes, position by position, the
order the platform uses for principal intervals. Prints "lt", "eq",
or "gt".

With --quiet nothing is printed and the exit status reports equality:
0 when the principals are equal, 1 otherwise, following cmp(1)
convention.`,
		Examples: []cli.Example{
			{
				Description: "Order two principals",
				Command:     "tessera principal compare aaaaa-aa 2vxsx-fae",
			},
			{
				Description: "Equality check in a script",
				Command:     "tessera principal compare --quiet $expected $actual",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 2 {
				return fmt.Errorf("compare takes exactly two principals, got %d", len(args))
			}
			a, err := principal.FromText(args[0])
			if err != nil {
				return fmt.Errorf("principal %q: %w", args[0], err)
			}
			b, err := principal.FromText(args[1])
			if err != nil {
				return fmt.Errorf("principal %q: %w", args[1], err)
			}

			if params.Quiet {
				if !a.Equal(b) {
					return &cli.ExitError{Code: 1}
				}
				return nil
			}
			fmt.Println(relation(a, b))
			return nil
		},
	}
}

// relation renders the comparison in cmp-style notation.
func relation(a, b principal.Principal) string {
	switch a.Compare(b) {
	case -1:
		return "lt"
	case 1:
		return "gt"
	default:
		return "eq"
	}
}
