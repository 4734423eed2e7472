// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"bytes"
	"crypto"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
)

// MaxLength is the longest byte sequence any Tessera constructor
// produces: a self-authenticating principal, 28 digest bytes plus the
// tag. FromBytes and FromHex do not enforce it; length policy belongs
// to the protocol layers that consume principals.
const MaxLength = 29

const (
	// selfAuthenticatingTag terminates principals derived from a
	// public key digest.
	selfAuthenticatingTag = 0x02

	// anonymousByte is the entire byte sequence of the anonymous
	// principal.
	anonymousByte = 0x04
)

// Sentinel errors wrapped by the constructors. Match with errors.Is;
// the returned errors carry input-specific detail around these.
var (
	// ErrInvalidFormat reports hex or base-32 input that cannot be
	// decoded at all.
	ErrInvalidFormat = errors.New("malformed principal encoding")

	// ErrInvalidChecksum reports principal text that does not
	// validate: a checksum mismatch, a non-canonical presentation
	// (uppercase, misplaced dashes), or an undecodable encoding.
	// Every FromText failure matches this sentinel.
	ErrInvalidChecksum = errors.New("principal checksum mismatch")

	// ErrUnsupportedType reports a From argument that is neither a
	// string nor a principal-like value.
	ErrUnsupportedType = errors.New("unsupported principal source type")
)

// Principal is an immutable identifier naming a party on the Tessera
// network: a user, a canister, an anonymous caller, or the platform's
// management identity. It wraps a byte sequence of 0 to MaxLength
// bytes (in valid use) with element-wise value equality.
//
// The zero value is the empty principal, which is the management
// canister identity (canonical text "aaaaa-aa"). There is no unset
// state; use *Principal where absence must be representable.
type Principal struct {
	raw []byte
}

var _ Interface = Principal{}

// Anonymous returns the fixed one-byte principal identifying an
// unauthenticated caller. Its canonical text is "2vxsx-fae".
func Anonymous() Principal {
	return Principal{raw: []byte{anonymousByte}}
}

// ManagementCanister returns the well-known management identity: the
// empty byte sequence, canonical text "aaaaa-aa".
func ManagementCanister() Principal {
	return Principal{raw: []byte{}}
}

// SelfAuthenticating derives a principal from a public key: the
// 28-byte SHA-224 digest of publicKey followed by the
// self-authenticating tag byte, 29 bytes total. The key is hashed as
// given; no shape validation is performed.
func SelfAuthenticating(publicKey []byte) Principal {
	digest := sha256.Sum224(publicKey)
	raw := make([]byte, 0, sha256.Size224+1)
	raw = append(raw, digest[:]...)
	raw = append(raw, selfAuthenticatingTag)
	return Principal{raw: raw}
}

// FromPublicKey derives a self-authenticating principal from a typed
// public key (Ed25519, ECDSA, RSA) by hashing its PKIX DER encoding.
// Use SelfAuthenticating directly when the encoded key bytes are
// already in hand.
func FromPublicKey(publicKey crypto.PublicKey) (Principal, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return Principal{}, fmt.Errorf("encoding public key: %w", err)
	}
	return SelfAuthenticating(der), nil
}

// FromBytes wraps raw as a principal verbatim: no validation, no copy.
// The caller must not modify raw afterwards.
func FromBytes(raw []byte) Principal {
	return Principal{raw: raw}
}

// FromHex decodes a hex string, two digits per byte in either case,
// into a principal. Odd-length input or any non-hex character fails
// with ErrInvalidFormat. Length is not bounded; see MaxLength.
func FromHex(hexString string) (Principal, error) {
	raw, err := hex.DecodeString(hexString)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Principal{raw: raw}, nil
}

// From converts a value into a Principal. A string is parsed as
// canonical text. An existing Principal, or any value exposing raw
// bytes and a true identity marker (see Interface), is duplicated by
// copying its bytes. Anything else fails with ErrUnsupportedType.
func From(value any) (Principal, error) {
	switch v := value.(type) {
	case string:
		return FromText(v)
	case Principal:
		return Principal{raw: bytes.Clone(v.raw)}, nil
	}
	if like, ok := value.(interface {
		Raw() []byte
		IsPrincipal() bool
	}); ok && like.IsPrincipal() {
		return Principal{raw: bytes.Clone(like.Raw())}, nil
	}
	return Principal{}, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

// Raw returns the underlying byte sequence. The slice is not copied;
// callers must treat it as read-only.
func (p Principal) Raw() []byte { return p.raw }

// Hex returns the uppercase hex rendering: two characters per byte, no
// separators, no prefix. Empty for the management canister.
func (p Principal) Hex() string { return fmt.Sprintf("%X", p.raw) }

// IsAnonymous reports whether this is the anonymous principal, the
// single byte 0x04.
func (p Principal) IsAnonymous() bool {
	return len(p.raw) == 1 && p.raw[0] == anonymousByte
}

// IsSelfAuthenticating reports whether p has the self-authenticating
// shape: a 28-byte digest followed by the tag byte. The check is
// structural only; it does not prove the digest came from any key.
func (p Principal) IsSelfAuthenticating() bool {
	return len(p.raw) == sha256.Size224+1 && p.raw[len(p.raw)-1] == selfAuthenticatingTag
}

// IsPrincipal is the identity marker of the Interface capability set.
// It always returns true on a Principal.
func (p Principal) IsPrincipal() bool { return true }

// Interface is the capability set a principal implementation exposes.
// Is and From accept any implementation rather than only this
// package's Principal, so independently compiled copies of the type
// (for example across module major versions) interoperate.
type Interface interface {
	// Raw returns the underlying byte sequence.
	Raw() []byte
	// Text returns the canonical text form.
	Text() string
	// String returns the canonical text form.
	String() string
	// IsPrincipal marks the value as a principal. Is rejects values
	// whose marker reports false.
	IsPrincipal() bool
}

// Is reports whether value is a principal: a Principal from this
// package, or any implementation of Interface whose identity marker is
// true. It is a capability check, not a type check.
func Is(value any) bool {
	like, ok := value.(Interface)
	return ok && like.IsPrincipal()
}

// IsText reports whether text parses as canonical principal text. All
// parse failures are converted to false; this is the only place in the
// package where errors are suppressed.
func IsText(text string) bool {
	_, err := FromText(text)
	return err == nil
}
