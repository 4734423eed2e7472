// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the tessera
// unified CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], declarative flag binding
// via [Command.Params], and a Run function receiving a context and a
// scoped [log/slog.Logger]. Commands are assembled into a tree in
// cmd/tessera/main.go and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// Flag binding is declarative: a command declares a params struct with
// flag/desc/default tags and exposes it through [Command.Params], and
// the framework builds the [pflag.FlagSet] with [BindFlags]. Commands
// whose flags cannot be expressed as struct tags construct their own
// flag set via [Command.Flags].
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
package cli
