// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	principalcmd "github.com/tessera-foundation/tessera/cmd/tessera/principal"
	rostercmd "github.com/tessera-foundation/tessera/cmd/tessera/roster"
	"github.com/tessera-foundation/tessera/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that manage their own output (like compare --quiet)
		// return an exitError carrying the desired exit code. Don't
		// print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(context.Background(), os.Args[1:])
}

// rootCommand builds the complete tessera CLI command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "tessera",
		Description: `Tessera principal tooling.

Work with principal identifiers: the checksummed byte-sequence
identities that name users, canisters, and platform services on the
Tessera network.`,
		Subcommands: []*cli.Command{
			principalcmd.Command(),
			rostercmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("tessera %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Inspect a principal's forms and kind",
				Command:     "tessera principal inspect em77e-bvlzu-aq",
			},
			{
				Description: "Derive a principal from a public key",
				Command:     "tessera principal derive service.pem",
			},
			{
				Description: "Name the principals in a deployment",
				Command:     "tessera roster list --roster ./roster.yaml",
			},
			{
				Description: "Check a roster file before deploying it",
				Command:     "tessera roster validate ./roster.yaml",
			},
		},
	}
}
