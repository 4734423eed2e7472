// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/tessera-foundation/tessera/cmd/tessera/cli"
)

// TestCommandTreeShape walks the full production command tree and
// validates the structural invariants the framework relies on: every
// command is named, every leaf has a Run function, subcommand names
// are unique under their parent, and every subcommand carries the
// Summary its parent's help listing displays.
func TestCommandTreeShape(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")

		if command.Name == "" {
			t.Errorf("%s: command with empty name", name)
		}
		if command != root && command.Summary == "" {
			t.Errorf("%s: subcommand without a summary", name)
		}
		if len(command.Subcommands) == 0 && command.Run == nil {
			t.Errorf("%s: leaf command without a Run function", name)
		}

		seen := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", name, sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

// TestCommandTreeParams binds every command's parameter struct. A tag
// mistake (unsupported field type, malformed default) panics inside
// FlagsFromParams, so this catches bad declarations without invoking
// any command.
func TestCommandTreeParams(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		if command.Params == nil {
			return
		}
		name := strings.Join(path, " ")

		defer func() {
			if recovered := recover(); recovered != nil {
				t.Errorf("%s: binding params panicked: %v", name, recovered)
			}
		}()
		flagSet := cli.FlagsFromParams(command.Name, command.Params())
		if flagSet == nil {
			t.Errorf("%s: FlagsFromParams returned nil", name)
		}
	})
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
