package icns

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TypeCode is the four-byte identifier that names an element's format and
// role inside an icon family. Comparison is byte-exact.
type TypeCode [4]byte

// typeCode builds a TypeCode from a four-character literal. Used for the
// registry table; panics on any other length.
func typeCode(s string) TypeCode {
	if len(s) != 4 {
		panic(fmt.Sprintf("type code literal %q is not 4 bytes", s))
	}
	var tc TypeCode
	copy(tc[:], s)
	return tc
}

// Bytes returns the code as a byte slice.
func (tc TypeCode) Bytes() []byte {
	return tc[:]
}

// Hex returns the code as lowercase hex, for naming elements whose code
// is not printable.
func (tc TypeCode) Hex() string {
	return hex.EncodeToString(tc[:])
}

// String renders the code as a single-quoted ASCII string. Non-printable
// and non-ASCII bytes are hex-escaped so arbitrary codes stay readable.
func (tc TypeCode) String() string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, b := range tc {
		switch {
		case b == '\'' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b >= 0x20 && b < 0x7f:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, "\\x%02x", b)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
