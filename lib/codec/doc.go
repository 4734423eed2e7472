// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Tessera's standard CBOR encoding configuration.
//
// Tessera uses two machine serialization formats with a clear boundary:
//
//   - JSON for tool-facing surfaces: CLI --json output, diagnostics,
//     and anything a human or a shell pipeline reads.
//   - CBOR for wire and state data: request envelopes, identity
//     records, and any payload that carries principals in raw binary
//     form.
//
// Human-edited configuration such as rosters is YAML and never passes
// through this package.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every Tessera package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which keeps envelope signatures and content hashes stable.
//
// For buffer-oriented operations (tokens, state files):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: this type is ONLY ever serialized as CBOR. It will
//     never be marshaled to JSON or interact with CLI tooling.
//     Examples: wire envelopes and on-disk CBOR state records.
//   - `json` tag: this type may be serialized as BOTH JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor`
//     tags are absent, so a single `json` tag controls field naming
//     and omitempty for both formats. Examples: types used in CLI
//     --json output and types shared between tool-facing JSON and
//     wire CBOR.
//
// Never use both `cbor` and `json` tags on the same field. The tag
// choice documents the contract — doubling up is noise that obscures
// whether a type participates in JSON serialization.
//
// # Principals
//
// principal.Principal implements cbor.Marshaler and cbor.Unmarshaler,
// which take precedence over the text-marshaler mode settings in this
// package: on the wire a principal is a byte string carrying its raw
// form, never its dash-grouped text rendering. The same value still
// renders as text in JSON through encoding.TextMarshaler. See the
// principal package documentation for the wire rationale.
package codec
