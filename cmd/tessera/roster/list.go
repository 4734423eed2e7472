// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/roster"
)

// listParams holds the parameters for the list command.
type listParams struct {
	cli.JSONOutput
	Roster string `flag:"roster" desc:"roster file to list"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List roster entries",
		Usage:   "tessera roster list [flags]",
		Description: `Print every name in the selected roster with its principal text,
sorted by name.`,
		Examples: []cli.Example{
			{
				Description: "List the selected roster",
				Command:     "tessera roster list",
			},
			{
				Description: "List as JSON",
				Command:     "tessera roster list --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			r, err := roster.Select(params.Roster)
			if err != nil {
				return err
			}

			entries := rosterEntries(r)
			if done, err := params.EmitJSON(entries); done {
				return err
			}

			if len(entries) == 0 {
				logger.Info("roster is empty")
				return nil
			}
			writeEntries(os.Stdout, entries)
			return nil
		},
	}
}

// rosterEntries flattens a roster into output rows, sorted by name.
func rosterEntries(r *roster.Roster) []rosterEntry {
	entries := make([]rosterEntry, 0, r.Len())
	for _, name := range r.Names() {
		p, _ := r.Resolve(name)
		entries = append(entries, rosterEntry{Name: name, Principal: p.Text()})
	}
	return entries
}

// writeEntries renders entries as an aligned two-column table.
func writeEntries(w io.Writer, entries []rosterEntry) {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "NAME\tPRINCIPAL\n")
	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\n", entry.Name, entry.Principal)
	}
	writer.Flush()
}
