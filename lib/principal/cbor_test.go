// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal_test

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/tessera-foundation/tessera/lib/principal"
)

func TestCBORWireForm(t *testing.T) {
	// Principals travel as CBOR byte strings: major type 2, definite
	// length, raw bytes. Text form never appears on the wire.
	tests := []struct {
		name string
		p    principal.Principal
		want []byte
	}{
		{"zero value", principal.Principal{}, []byte{0x40}},
		{"management", principal.ManagementCanister(), []byte{0x40}},
		{"anonymous", principal.Anonymous(), []byte{0x41, 0x04}},
		{"opaque", principal.FromBytes([]byte{0xab, 0xcd, 0x01}), []byte{0x43, 0xab, 0xcd, 0x01}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := cbor.Marshal(test.p)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if !bytes.Equal(data, test.want) {
				t.Errorf("Marshal = %x, want %x", data, test.want)
			}
		})
	}
}

func TestCBORSelfAuthenticatingLength(t *testing.T) {
	// 29 payload bytes exceed the immediate-length range, so the
	// encoding switches to the one-byte length form.
	p := principal.SelfAuthenticating([]byte("wire form"))
	data, err := cbor.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if data[0] != 0x58 || data[1] != 0x1d {
		t.Fatalf("header = %x %x, want 58 1d", data[0], data[1])
	}
	if !bytes.Equal(data[2:], p.Raw()) {
		t.Errorf("payload = %x, want %x", data[2:], p.Raw())
	}
}

func TestCBORRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    principal.Principal
	}{
		{"zero value", principal.Principal{}},
		{"anonymous", principal.Anonymous()},
		{"opaque", principal.FromBytes([]byte{0x00, 0x00, 0x00, 0x02, 0x01, 0x01})},
		{"self-authenticating", principal.SelfAuthenticating([]byte("round trip"))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := cbor.Marshal(test.p)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			var decoded principal.Principal
			if err := cbor.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !decoded.Equal(test.p) {
				t.Errorf("round trip gave %q, want %q", decoded.Text(), test.p.Text())
			}
			if decoded.Text() != test.p.Text() {
				t.Errorf("wire and text forms disagree: %q vs %q", decoded.Text(), test.p.Text())
			}
		})
	}
}

func TestCBORInsideEnvelope(t *testing.T) {
	type envelope struct {
		Sender   principal.Principal `json:"sender"`
		Receiver principal.Principal `json:"receiver"`
	}

	original := envelope{
		Sender:   principal.Anonymous(),
		Receiver: principal.FromBytes([]byte{0xab, 0xcd, 0x01}),
	}
	data, err := cbor.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded envelope
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Sender.Equal(original.Sender) {
		t.Errorf("sender = %q, want %q", decoded.Sender.Text(), original.Sender.Text())
	}
	if !decoded.Receiver.Equal(original.Receiver) {
		t.Errorf("receiver = %q, want %q", decoded.Receiver.Text(), original.Receiver.Text())
	}
}

func TestCBORRejectsNonByteString(t *testing.T) {
	var p principal.Principal
	// 0x63 0x61 0x62 0x63: the text string "abc".
	if err := cbor.Unmarshal([]byte{0x63, 0x61, 0x62, 0x63}, &p); err == nil {
		t.Error("Unmarshal should reject a CBOR text string")
	}
}
