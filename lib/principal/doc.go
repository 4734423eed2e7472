// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package principal implements the identifier naming parties on the
// Tessera network: users, compute canisters, anonymous callers, and
// the platform's management identity.
//
// A [Principal] is an immutable byte sequence, 0 to [MaxLength] bytes
// in valid use, compared element-wise. Four forms are reserved:
//
//   - Self-authenticating: 29 bytes, a 28-byte SHA-224 digest of a
//     public key followed by the tag byte 0x02. Built with
//     [SelfAuthenticating] or [FromPublicKey]; binds the identifier to
//     the key so request-signing layers can verify ownership.
//   - Anonymous: the single byte 0x04, from [Anonymous]. Identifies an
//     unauthenticated caller.
//   - Management: the empty sequence, from [ManagementCanister]. Also
//     the zero value of the type.
//   - Opaque: anything else, typically platform-assigned canister
//     identifiers, wrapped verbatim by [FromBytes] or [FromHex].
//
// # Text format
//
// The canonical text form is produced by [Principal.Text]: the CRC32
// (IEEE) of the raw bytes as four big-endian bytes, then the raw
// bytes, base-32 encoded with the lowercase RFC 4648 alphabet without
// padding, grouped into dash-separated five-character chunks. The
// management identity is "aaaaa-aa", the anonymous caller "2vxsx-fae".
//
// [FromText] accepts only canonical text. Decoding verifies the
// carried checksum against the payload and then re-encodes, requiring
// exact equality with the input, so mistyped, re-cased, or regrouped
// text never aliases to a different identifier. Failures wrap
// [ErrInvalidChecksum] (and [ErrInvalidFormat] when the input cannot
// be decoded at all); [IsText] folds them into a boolean.
//
// # Wire format
//
// In CBOR envelopes a principal is a byte string of the raw bytes
// (cbor.Marshaler/Unmarshaler). In JSON and YAML it is the canonical
// text (encoding.TextMarshaler/TextUnmarshaler).
//
// # Ordering
//
// [Principal.Compare] defines a total byte-lexicographic order, with a
// shorter sequence sorting before any sequence it prefixes.
// [Principal.LessOrEqual] and [Principal.GreaterOrEqual] derive from
// it. The platform uses this order for canister range checks.
//
// All operations are pure and synchronous; values are safe for
// concurrent use without locking.
package principal
