package icns

import (
	"bytes"
	"errors"
	"testing"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

func TestDecompressRLELiteral(t *testing.T) {
	// Tag 0x02 declares a literal run of 3 bytes.
	out, err := decompressRLE([]byte{0x02, 0xaa, 0xbb, 0xcc})
	if err != nil {
		t.Fatalf("decompressRLE failed: %v", err)
	}
	if !bytes.Equal(out, []byte{0xaa, 0xbb, 0xcc}) {
		t.Errorf("literal run decoded to % x", out)
	}
}

func TestDecompressRLERepeat(t *testing.T) {
	// Tag 0x83 (131) declares the value byte repeated 131-125 = 6 times.
	out, err := decompressRLE([]byte{0x83, 0xff})
	if err != nil {
		t.Fatalf("decompressRLE failed: %v", err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{0xff}, 6)) {
		t.Errorf("repeat run decoded to % x", out)
	}
}

func TestDecompressRLEMixed(t *testing.T) {
	// A literal chunk followed by a repeat chunk and another literal.
	in := []byte{0x01, 0x11, 0x22, 0x80, 0x33, 0x00, 0x44}
	want := []byte{0x11, 0x22, 0x33, 0x33, 0x33, 0x44}
	out, err := decompressRLE(in)
	if err != nil {
		t.Fatalf("decompressRLE failed: %v", err)
	}
	if !bytes.Equal(out, want) {
		t.Errorf("decoded to % x, want % x", out, want)
	}
}

func TestDecompressRLEEmpty(t *testing.T) {
	out, err := decompressRLE(nil)
	if err != nil {
		t.Fatalf("decompressRLE failed on empty input: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("empty input decoded to %d bytes", len(out))
	}
}

func TestDecompressRLETruncated(t *testing.T) {
	cases := [][]byte{
		{0x05, 0x01, 0x02},   // literal run declares 6 bytes, only 2 follow
		{0x90},               // repeat tag with no value byte
		{0x00, 0xaa, 0x7f},   // second chunk declares 128 bytes, none follow
	}
	for _, in := range cases {
		if _, err := decompressRLE(in); !errors.Is(err, apperrors.ErrTruncatedCompressedData) {
			t.Errorf("input % x: got %v, want ErrTruncatedCompressedData", in, err)
		}
	}
}

func TestDecompressRLEPlanesLengthMismatch(t *testing.T) {
	// 6 decompressed bytes against an expected plane size of 8.
	if _, err := decompressRLEPlanes([]byte{0x83, 0xff}, 8); !errors.Is(err, apperrors.ErrDecompressedLengthMismatch) {
		t.Errorf("got %v, want ErrDecompressedLengthMismatch", err)
	}
}

func TestDecompressRLERoundTrip(t *testing.T) {
	// Reference-encoded fixture: repeated and literal sections mixed.
	data := append(bytes.Repeat([]byte{0x7f}, 200), 0x01, 0x02, 0x03)
	encoded := append(rleRepeat(0x7f, 200), rleLiteral([]byte{0x01, 0x02, 0x03})...)

	out, err := decompressRLE(encoded)
	if err != nil {
		t.Fatalf("decompressRLE failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(out), len(data))
	}
}

// rleLiteral reference-encodes data as literal chunks.
func rleLiteral(data []byte) []byte {
	var out []byte
	for len(data) > 0 {
		n := len(data)
		if n > 128 {
			n = 128
		}
		out = append(out, byte(n-1))
		out = append(out, data[:n]...)
		data = data[n:]
	}
	return out
}

// rleRepeat reference-encodes count copies of value as repeat chunks.
// Counts below the 3-byte chunk minimum fall back to literal chunks.
func rleRepeat(value byte, count int) []byte {
	var out []byte
	for count > 0 {
		n := count
		if n > 130 {
			n = 130
		}
		if n < 3 {
			out = append(out, rleLiteral(bytes.Repeat([]byte{value}, n))...)
		} else {
			out = append(out, byte(n+125), value)
		}
		count -= n
	}
	return out
}
