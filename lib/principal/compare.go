// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import "bytes"

// Compare orders two principals by their raw bytes: position by
// position over unsigned byte values, with a shorter sequence sorting
// before any sequence it prefixes. Returns -1, 0, or +1. The order
// carries no textual or cryptographic meaning; it exists for the
// range-membership checks the platform performs over principal
// intervals.
func (p Principal) Compare(other Principal) int {
	return bytes.Compare(p.raw, other.raw)
}

// Equal reports element-wise byte equality.
func (p Principal) Equal(other Principal) bool {
	return bytes.Equal(p.raw, other.raw)
}

// LessOrEqual reports whether p orders at or before other.
func (p Principal) LessOrEqual(other Principal) bool {
	return p.Compare(other) <= 0
}

// GreaterOrEqual reports whether p orders at or after other.
func (p Principal) GreaterOrEqual(other Principal) bool {
	return p.Compare(other) >= 0
}
