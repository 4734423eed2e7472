// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"bytes"
	"testing"

	"github.com/tessera-foundation/tessera/lib/principal"
)

func TestWriteDecoded(t *testing.T) {
	subject := principal.FromBytes([]byte{0xab, 0xcd, 0x01})

	tests := []struct {
		name string
		raw  bool
		wire bool
		want []byte
	}{
		{"hex default", false, false, []byte("ABCD01\n")},
		{"raw bytes", true, false, []byte{0xab, 0xcd, 0x01}},
		{"cbor byte string", false, true, []byte{0x43, 0xab, 0xcd, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer bytes.Buffer
			if err := writeDecoded(&buffer, subject, tt.raw, tt.wire); err != nil {
				t.Fatalf("writeDecoded: %v", err)
			}
			if !bytes.Equal(buffer.Bytes(), tt.want) {
				t.Errorf("output = %x, want %x", buffer.Bytes(), tt.want)
			}
		})
	}
}

func TestWriteDecoded_ModesAreExclusive(t *testing.T) {
	var buffer bytes.Buffer
	if err := writeDecoded(&buffer, principal.Anonymous(), true, true); err == nil {
		t.Error("writeDecoded accepted --raw with --cbor")
	}
	if buffer.Len() != 0 {
		t.Errorf("wrote %x before rejecting the flag combination", buffer.Bytes())
	}
}
