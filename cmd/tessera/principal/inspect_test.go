// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessera-foundation/tessera/lib/codec"
	"github.com/tessera-foundation/tessera/lib/principal"
	"github.com/tessera-foundation/tessera/lib/roster"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		p    principal.Principal
		want string
	}{
		{"anonymous", principal.Anonymous(), "anonymous"},
		{"management", principal.ManagementCanister(), "management"},
		{"self-authenticating", principal.SelfAuthenticating([]byte("key")), "self-authenticating"},
		{"opaque", principal.FromBytes([]byte{0xab, 0xcd, 0x01}), "opaque"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kind(tt.p); got != tt.want {
				t.Errorf("kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveSubject_Text(t *testing.T) {
	subject, err := resolveSubject([]string{"em77e-bvlzu-aq"}, false, false)
	if err != nil {
		t.Fatalf("resolveSubject: %v", err)
	}
	if got, want := subject.Hex(), "ABCD01"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func TestResolveSubject_Hex(t *testing.T) {
	subject, err := resolveSubject([]string{"ab cd 01"}, true, false)
	if err != nil {
		t.Fatalf("resolveSubject: %v", err)
	}
	if got, want := subject.Text(), "em77e-bvlzu-aq"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestResolveSubject_CBORFile(t *testing.T) {
	want := principal.FromBytes([]byte{0xab, 0xcd, 0x01})
	data, err := codec.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	tempFile := filepath.Join(t.TempDir(), "caller.cbor")
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	subject, err := resolveSubject([]string{tempFile}, false, true)
	if err != nil {
		t.Fatalf("resolveSubject: %v", err)
	}
	if !subject.Equal(want) {
		t.Errorf("subject = %v, want %v", subject, want)
	}
}

func TestResolveSubject_ModesAreExclusive(t *testing.T) {
	if _, err := resolveSubject([]string{"abcd01"}, true, true); err == nil {
		t.Error("resolveSubject accepted --hex with --cbor")
	}
}

func TestResolveSubject_BadText(t *testing.T) {
	if _, err := resolveSubject([]string{"em77e-bvlzu-aa"}, false, false); err == nil {
		t.Error("resolveSubject accepted a corrupted checksum")
	}
}

func TestDescribe(t *testing.T) {
	report := describe(principal.Anonymous(), roster.Builtin())

	if report.Text != "2vxsx-fae" {
		t.Errorf("Text = %q, want %q", report.Text, "2vxsx-fae")
	}
	if report.Hex != "04" {
		t.Errorf("Hex = %q, want %q", report.Hex, "04")
	}
	if report.Length != 1 {
		t.Errorf("Length = %d, want 1", report.Length)
	}
	if report.Kind != "anonymous" {
		t.Errorf("Kind = %q, want %q", report.Kind, "anonymous")
	}
	if report.Name != "anonymous" {
		t.Errorf("Name = %q, want %q", report.Name, "anonymous")
	}
}

func TestDescribe_UnnamedPrincipal(t *testing.T) {
	report := describe(principal.FromBytes([]byte{0xab, 0xcd, 0x01}), roster.Builtin())
	if report.Name != "" {
		t.Errorf("Name = %q, want empty for an unnamed principal", report.Name)
	}
}

func TestDescribe_NilRoster(t *testing.T) {
	report := describe(principal.Anonymous(), nil)
	if report.Name != "" {
		t.Errorf("Name = %q, want empty without a roster", report.Name)
	}
}

func TestWriteReport(t *testing.T) {
	var buffer strings.Builder
	writeReport(&buffer, principalReport{
		Text:   "2vxsx-fae",
		Hex:    "04",
		Length: 1,
		Kind:   "anonymous",
		Name:   "anonymous",
	})

	output := buffer.String()
	for _, want := range []string{"Text:", "2vxsx-fae", "Kind:", "anonymous", "Name:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q missing %q", output, want)
		}
	}
}

func TestWriteReport_OmitsEmptyName(t *testing.T) {
	var buffer strings.Builder
	writeReport(&buffer, principalReport{
		Text:   "em77e-bvlzu-aq",
		Hex:    "ABCD01",
		Length: 3,
		Kind:   "opaque",
	})

	if strings.Contains(buffer.String(), "Name:") {
		t.Errorf("output %q includes a Name row for an unnamed principal", buffer.String())
	}
}
