// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
)

// encoding is the RFC 4648 base-32 alphabet in lowercase, unpadded.
// Canonical principal text never carries padding; the checksum prefix
// guards against truncation instead.
var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

const (
	// checksumLength is the size of the big-endian CRC32 prefix
	// inside the base-32 payload.
	checksumLength = 4

	// groupLength is the dash-grouping width of canonical text.
	groupLength = 5
)

// Text returns the canonical text form: the big-endian CRC32 of the
// raw bytes followed by the raw bytes, base-32 encoded (lowercase,
// unpadded) and grouped into dash-separated five-character chunks.
func (p Principal) Text() string { return encodeText(p.raw) }

// String returns the canonical text form.
func (p Principal) String() string { return encodeText(p.raw) }

// FromText parses canonical principal text. The input is lowercased
// and dashes are stripped before base-32 decoding; the carried
// checksum must match a freshly computed CRC32 of the payload, and the
// payload must re-encode to the input exactly as given. Uppercase
// input, misplaced dashes, and corrupted characters therefore all fail
// with ErrInvalidChecksum; input that cannot be decoded at all
// additionally matches ErrInvalidFormat.
func FromText(text string) (Principal, error) {
	stripped := strings.ReplaceAll(strings.ToLower(text), "-", "")
	decoded, err := encoding.DecodeString(stripped)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w: %v", ErrInvalidChecksum, ErrInvalidFormat, err)
	}
	if len(decoded) < checksumLength {
		return Principal{}, fmt.Errorf("%w: %w: decoded to %d bytes, need at least %d",
			ErrInvalidChecksum, ErrInvalidFormat, len(decoded), checksumLength)
	}

	carried := binary.BigEndian.Uint32(decoded[:checksumLength])
	raw := decoded[checksumLength:]
	if computed := crc32.ChecksumIEEE(raw); computed != carried {
		return Principal{}, fmt.Errorf("%w: text carries %08x, payload sums to %08x",
			ErrInvalidChecksum, carried, computed)
	}

	// The checksum alone does not pin the presentation: uppercase or
	// regrouped input decodes to the same bytes. Canonical text must
	// survive the round trip exactly.
	if canonical := encodeText(raw); canonical != text {
		return Principal{}, fmt.Errorf("%w: not in canonical form (want %q)", ErrInvalidChecksum, canonical)
	}
	return Principal{raw: raw}, nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// text form. This covers JSON and YAML serialization.
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(encodeText(p.raw)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via FromText.
// Empty input is an error: an absent field must not silently become
// the management canister identity.
func (p *Principal) UnmarshalText(data []byte) error {
	parsed, err := FromText(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// encodeText renders raw in the canonical text form.
func encodeText(raw []byte) string {
	buf := make([]byte, checksumLength+len(raw))
	binary.BigEndian.PutUint32(buf[:checksumLength], crc32.ChecksumIEEE(raw))
	copy(buf[checksumLength:], raw)
	encoded := encoding.EncodeToString(buf)

	var grouped strings.Builder
	grouped.Grow(len(encoded) + len(encoded)/groupLength)
	for start := 0; start < len(encoded); start += groupLength {
		if start > 0 {
			grouped.WriteByte('-')
		}
		grouped.WriteString(encoded[start:min(start+groupLength, len(encoded))])
	}
	return grouped.String()
}
