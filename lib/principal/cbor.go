// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR implements cbor.Marshaler. On the wire a principal is a
// CBOR byte string holding the raw bytes: envelopes carry principals
// in binary rather than in checksummed text. A zero principal marshals
// as the empty byte string so equal values always encode identically.
func (p Principal) MarshalCBOR() ([]byte, error) {
	raw := p.raw
	if raw == nil {
		raw = []byte{}
	}
	return cbor.Marshal(raw)
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded byte string
// is wrapped verbatim, mirroring FromBytes: wire payloads carry no
// checksum to verify.
func (p *Principal) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding principal byte string: %w", err)
	}
	*p = Principal{raw: raw}
	return nil
}
