package icns

import (
	"bytes"
	"fmt"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

// decompressRLE decodes the run-length scheme used by RGB and ARGB bitmap
// elements. It resembles PackBits but is not compatible with it: a tag
// byte >= 128 starts a repeat chunk whose count is tag - 125 (3..130),
// followed by the byte to repeat; any other tag starts a literal chunk of
// tag + 1 bytes (1..128). There is no end marker; the stream must end
// exactly on a chunk boundary.
func decompressRLE(data []byte) ([]byte, error) {
	var out bytes.Buffer
	for i := 0; i < len(data); {
		tag := data[i]
		i++
		if tag >= 0x80 {
			// Repeat chunk: one value byte follows the tag.
			if i >= len(data) {
				return nil, fmt.Errorf("%w: repeat chunk at offset %d is missing its value byte",
					apperrors.ErrTruncatedCompressedData, i-1)
			}
			count := int(tag) - 125
			out.Write(bytes.Repeat(data[i:i+1], count))
			i++
		} else {
			// Literal chunk: tag + 1 bytes copied verbatim.
			count := int(tag) + 1
			if i+count > len(data) {
				return nil, fmt.Errorf("%w: literal chunk at offset %d declares %d bytes but only %d remain",
					apperrors.ErrTruncatedCompressedData, i-1, count, len(data)-i)
			}
			out.Write(data[i : i+count])
			i += count
		}
	}
	return out.Bytes(), nil
}

// decompressRLEPlanes decompresses an RGB/ARGB payload and checks that the
// output is exactly the expected concatenated plane size.
func decompressRLEPlanes(data []byte, want int) ([]byte, error) {
	out, err := decompressRLE(data)
	if err != nil {
		return nil, err
	}
	if len(out) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			apperrors.ErrDecompressedLengthMismatch, len(out), want)
	}
	return out, nil
}
