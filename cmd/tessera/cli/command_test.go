// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// run wraps a plain closure in the Run signature for tests that do not
// care about the context or logger.
func run(fn func(args []string) error) func(context.Context, []string, *slog.Logger) error {
	return func(_ context.Context, args []string, _ *slog.Logger) error {
		return fn(args)
	}
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "tessera",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: run(func(args []string) error {
					called = "version"
					return nil
				}),
			},
			{
				Name: "principal",
				Run: run(func(args []string) error {
					called = "principal"
					return nil
				}),
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"principal"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "principal" {
		t.Errorf("dispatched to %q, want %q", called, "principal")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "tessera",
		Subcommands: []*Command{
			{
				Name: "principal",
				Subcommands: []*Command{
					{
						Name: "encode",
						Run: run(func(args []string) error {
							called = "principal encode"
							receivedArgs = args
							return nil
						}),
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"principal", "encode", "abcd01"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "principal encode" {
		t.Errorf("dispatched to %q, want %q", called, "principal encode")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "abcd01" {
		t.Errorf("args = %v, want [abcd01]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var rosterPath string
	var target string

	command := &Command{
		Name: "resolve",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
			flagSet.StringVar(&rosterPath, "roster", "/default.yaml", "roster path")
			return flagSet
		},
		Run: run(func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		}),
	}

	if err := command.Execute(context.Background(), []string{"--roster", "/custom.yaml", "ledger"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if rosterPath != "/custom.yaml" {
		t.Errorf("rosterPath = %q, want %q", rosterPath, "/custom.yaml")
	}
	if target != "ledger" {
		t.Errorf("target = %q, want %q", target, "ledger")
	}
}

func TestCommand_Execute_ParamsBinding(t *testing.T) {
	type inspectParams struct {
		Hex  bool   `flag:"hex,x" desc:"hex input"`
		File string `flag:"file" desc:"input file" default:"-"`
	}

	var params inspectParams
	var receivedArgs []string

	command := &Command{
		Name:   "inspect",
		Params: func() any { return &params },
		Run: run(func(args []string) error {
			receivedArgs = args
			return nil
		}),
	}

	if err := command.Execute(context.Background(), []string{"-x", "2vxsx-fae"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !params.Hex {
		t.Error("params.Hex = false, want true")
	}
	if params.File != "-" {
		t.Errorf("params.File = %q, want default %q", params.File, "-")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "2vxsx-fae" {
		t.Errorf("args = %v, want [2vxsx-fae]", receivedArgs)
	}
}

func TestCommand_Execute_RunFallbackWithSubcommands(t *testing.T) {
	// A command with both Subcommands and Run routes unmatched
	// positional args to Run.
	var fallbackArgs []string

	command := &Command{
		Name: "group",
		Subcommands: []*Command{
			{Name: "list", Run: run(func(args []string) error { return nil })},
		},
		Run: run(func(args []string) error {
			fallbackArgs = args
			return nil
		}),
	}

	if err := command.Execute(context.Background(), []string{"something-else"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(fallbackArgs) != 1 || fallbackArgs[0] != "something-else" {
		t.Errorf("fallback args = %v, want [something-else]", fallbackArgs)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			flagSet.String("roster", "", "roster path")
			return flagSet
		},
		Run: run(func(args []string) error { return nil }),
	}

	err := command.Execute(context.Background(), []string{"--rotser"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --roster") {
		t.Errorf("error = %q, want suggestion for '--roster'", errStr)
	}
	if !strings.Contains(errStr, "rotser") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			return flagSet
		},
		Run: run(func(args []string) error { return nil }),
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "tessera",
		Subcommands: []*Command{
			{Name: "principal"},
			{Name: "roster"},
			{Name: "version"},
		},
	}

	err := root.Execute(context.Background(), []string{"principl"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"principal\"") {
		t.Errorf("error = %q, want suggestion for 'principal'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "tessera",
		Subcommands: []*Command{
			{Name: "principal"},
			{Name: "roster"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "tessera",
				Summary: "Identity tooling",
				Subcommands: []*Command{
					{Name: "principal", Summary: "Principal operations"},
				},
			}

			if err := root.Execute(context.Background(), []string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "tessera",
		Subcommands: []*Command{
			{Name: "principal", Summary: "Principal operations"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "tessera",
		Description: "Tessera platform identity tooling.",
		Subcommands: []*Command{
			{Name: "principal", Summary: "Inspect and convert principals"},
			{Name: "roster", Summary: "Resolve named principals"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Inspect a principal",
				Command:     "tessera principal inspect 2vxsx-fae",
			},
			{
				Description: "List roster entries",
				Command:     "tessera roster list --json",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Tessera platform identity tooling.",
		"Usage:",
		"tessera <command> [flags]",
		"Commands:",
		"principal",
		"Inspect and convert principals",
		"roster",
		"Resolve named principals",
		"Examples:",
		"tessera principal inspect 2vxsx-fae",
		"tessera roster list --json",
		"Run 'tessera <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithParams(t *testing.T) {
	type listParams struct {
		JSONOutput
		Roster string `flag:"roster" desc:"roster file path"`
	}

	var params listParams
	command := &Command{
		Name:    "list",
		Summary: "List roster entries",
		Usage:   "tessera roster list [flags]",
		Params:  func() any { return &params },
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"tessera roster list [flags]",
		"Flags:",
		"roster",
		"json",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "tessera"}
	principal := &Command{Name: "principal", parent: root}
	encode := &Command{Name: "encode", parent: principal}

	if got := root.fullName(); got != "tessera" {
		t.Errorf("root.fullName() = %q, want %q", got, "tessera")
	}
	if got := principal.fullName(); got != "tessera principal" {
		t.Errorf("principal.fullName() = %q, want %q", got, "tessera principal")
	}
	if got := encode.fullName(); got != "tessera principal encode" {
		t.Errorf("encode.fullName() = %q, want %q", got, "tessera principal encode")
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if err.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", err.ExitCode())
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("Error() = %q, should mention the code", err.Error())
	}
}
