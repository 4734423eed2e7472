// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
	"github.com/tessera-foundation/tessera/lib/codec"
	"github.com/tessera-foundation/tessera/lib/principal"
	"github.com/tessera-foundation/tessera/lib/roster"
)

// inspectParams holds the parameters for the inspect command.
type inspectParams struct {
	cli.JSONOutput
	Hex    bool   `flag:"hex,x"  desc:"treat input as hex-encoded bytes"`
	CBOR   bool   `flag:"cbor"   desc:"treat input as a CBOR byte string"`
	Roster string `flag:"roster" desc:"roster file for name annotation"`
}

// principalReport is the output of the inspect command.
type principalReport struct {
	Text   string `json:"text"`
	Hex    string `json:"hex"`
	Length int    `json:"length"`
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
}

func inspectCommand() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Describe a principal's forms and kind",
		Usage:   "tessera principal inspect [text] [flags]",
		Description: `Parse a principal and report every form it takes: canonical text,
hex bytes, byte length, and its kind (management, anonymous,
self-authenticating, or opaque).

By default the input is canonical text, given as an argument or on
stdin. With --hex the input is a hex byte string instead; with --cbor
it is a CBOR byte string read from a trailing file argument or stdin,
the form principals take on the Tessera wire.

When the roster (--roster or TESSERA_ROSTER) names the principal, the
report includes the name.`,
		Examples: []cli.Example{
			{
				Description: "Inspect canonical text",
				Command:     "tessera principal inspect em77e-bvlzu-aq",
			},
			{
				Description: "Inspect hex bytes",
				Command:     "tessera principal inspect --hex abcd01",
			},
			{
				Description: "Inspect a CBOR-encoded principal from a file",
				Command:     "tessera principal inspect --cbor caller.cbor",
			},
			{
				Description: "Machine-readable report",
				Command:     "tessera principal inspect em77e-bvlzu-aq --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			subject, err := resolveSubject(args, params.Hex, params.CBOR)
			if err != nil {
				return err
			}

			reg, err := roster.Select(params.Roster)
			if err != nil {
				return err
			}

			report := describe(subject, reg)
			if done, err := params.EmitJSON(report); done {
				return err
			}
			writeReport(os.Stdout, report)
			return nil
		},
	}
}

// resolveSubject reads the principal under inspection: canonical text
// by default, hex bytes with hexMode, a CBOR byte string with
// cborMode.
func resolveSubject(args []string, hexMode, cborMode bool) (principal.Principal, error) {
	if hexMode && cborMode {
		return principal.Principal{}, fmt.Errorf("--hex and --cbor are mutually exclusive")
	}

	if cborMode {
		data, remaining, err := readInput(args)
		if err != nil {
			return principal.Principal{}, err
		}
		if len(remaining) > 0 {
			return principal.Principal{}, fmt.Errorf("unexpected argument: %s", remaining[0])
		}
		var p principal.Principal
		if err := codec.Unmarshal(data, &p); err != nil {
			return principal.Principal{}, fmt.Errorf("decode CBOR principal: %w", err)
		}
		return p, nil
	}

	value, err := argOrStdin(args)
	if err != nil {
		return principal.Principal{}, err
	}
	if hexMode {
		return principal.FromHex(stripSpaces(value))
	}
	return principal.FromText(value)
}

// kind classifies a principal by its reserved byte shapes.
func kind(p principal.Principal) string {
	switch {
	case p.IsAnonymous():
		return "anonymous"
	case len(p.Raw()) == 0:
		return "management"
	case p.IsSelfAuthenticating():
		return "self-authenticating"
	default:
		return "opaque"
	}
}

// describe builds the inspect report, annotating the principal with
// its roster name when the roster has one.
func describe(p principal.Principal, reg *roster.Roster) principalReport {
	report := principalReport{
		Text:   p.Text(),
		Hex:    p.Hex(),
		Length: len(p.Raw()),
		Kind:   kind(p),
	}
	if reg != nil {
		if name, ok := reg.NameOf(p); ok {
			report.Name = name
		}
	}
	return report
}

// writeReport renders the report as an aligned key/value table.
func writeReport(w io.Writer, report principalReport) {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Text:\t%s\n", report.Text)
	fmt.Fprintf(writer, "Hex:\t%s\n", report.Hex)
	fmt.Fprintf(writer, "Length:\t%d\n", report.Length)
	fmt.Fprintf(writer, "Kind:\t%s\n", report.Kind)
	if report.Name != "" {
		fmt.Fprintf(writer, "Name:\t%s\n", report.Name)
	}
	writer.Flush()
}
