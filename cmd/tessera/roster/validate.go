// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/roster"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Check a roster file",
		Usage:   "tessera roster validate [file]",
		Description: `Parse a roster file and report every validation problem at once:
malformed names, principal texts that fail checksum verification, and
distinct names mapping to the same principal.

Reads the file argument, or stdin when no argument is given. Prints
"ok" with the entry count when the roster is valid.`,
		Examples: []cli.Example{
			{
				Description: "Check a roster file before deploying it",
				Command:     "tessera roster validate ./roster.yaml",
			},
			{
				Description: "Check a generated roster on stdin",
				Command:     "generate-roster | tessera roster validate",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			var r *roster.Roster
			switch len(args) {
			case 0:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				r, err = roster.Parse(data)
				if err != nil {
					return err
				}
			case 1:
				var err error
				r, err = roster.LoadFile(args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			fmt.Printf("ok: %d names\n", r.Len())
			return nil
		},
	}
}
