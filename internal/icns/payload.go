package icns

import (
	"bytes"
	"encoding/binary"
	"fmt"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

// Payload is the structured form of one element's data. There is one
// implementation per data kind plus UnknownData for unregistered codes.
type Payload interface {
	// Description returns a short human-readable summary of the payload,
	// suitable for listings.
	Description() string
}

// File format signatures used to classify opaque image payloads.
var (
	pngSignature  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jp2Signature  = []byte{0x00, 0x00, 0x00, 0x0c, 0x6a, 0x50, 0x20, 0x20, 0x0d, 0x0a, 0x87, 0x0a}
	argbSignature = []byte("ARGB")
	it32Prefix    = []byte{0x00, 0x00, 0x00, 0x00}
)

// it32Code is the only RGB type whose data carries a zero prefix before
// the compressed stream.
var it32Code = typeCode("it32")

// TOCEntry is one entry of a table of contents: the header of a sibling
// element, without its body.
type TOCEntry struct {
	Code   TypeCode
	Length uint32
}

// TableOfContents is the optional directory of sibling element headers.
// It is informational only; decoding never relies on it.
type TableOfContents struct {
	Entries []TOCEntry
}

func (p *TableOfContents) Description() string {
	return fmt.Sprintf("table of contents, %d entries", len(p.Entries))
}

// IconComposerVersion is a version stamp written by old versions of Icon
// Composer. It has no effect on the rest of the family.
type IconComposerVersion struct {
	Version float32
}

func (p *IconComposerVersion) Description() string {
	return fmt.Sprintf("Icon Composer version, value %g", p.Version)
}

// InfoDictionary is an embedded binary property list (an NSDictionary
// serialized with NSKeyedArchiver). The decoder passes it through
// untouched; callers may hand it to a plist decoder.
type InfoDictionary struct {
	ArchivedData []byte
}

func (p *InfoDictionary) Description() string {
	return fmt.Sprintf("info dictionary, %d bytes", len(p.ArchivedData))
}

// Icon1BitWithMask is a monochrome bitmap icon with a bundled 1-bit
// mask. Both planes are bit-packed MSB-first, row-major. Bit semantics
// are inverted relative to usual raster conventions: 0 is white, 1 is
// black/opaque.
type Icon1BitWithMask struct {
	Resolution Resolution
	IconData   []byte
	MaskData   []byte
}

func (p *Icon1BitWithMask) Description() string {
	return fmt.Sprintf("1-bit monochrome icon and 1-bit mask, %s", p.Resolution)
}

// Icon4Bit is a 4-bit indexed bitmap icon in the fixed system palette,
// two pixels per byte with the high nibble first. It has no mask of its
// own.
type Icon4Bit struct {
	Resolution Resolution
	IconData   []byte
}

func (p *Icon4Bit) Description() string {
	return fmt.Sprintf("4-bit indexed color icon, %s", p.Resolution)
}

// Icon8Bit is an 8-bit indexed bitmap icon in the fixed system palette,
// one pixel per byte. It has no mask of its own.
type Icon8Bit struct {
	Resolution Resolution
	IconData   []byte
}

func (p *Icon8Bit) Description() string {
	return fmt.Sprintf("8-bit indexed color icon, %s", p.Resolution)
}

// IconRGB is a 24-bit icon stored as run-length compressed planar data:
// after decompression, a full red plane, then green, then blue. It has
// no mask of its own.
type IconRGB struct {
	Resolution     Resolution
	CompressedData []byte
}

func (p *IconRGB) Description() string {
	return fmt.Sprintf("24-bit RGB icon, %s", p.Resolution)
}

// Mask8Bit is a standalone 8-bit alpha mask for use with bitmap icons
// that have no bundled mask.
type Mask8Bit struct {
	Resolution Resolution
	MaskData   []byte
}

func (p *Mask8Bit) Description() string {
	return fmt.Sprintf("8-bit mask, %s", p.Resolution)
}

// IconARGB is a 32-bit icon stored as run-length compressed planar data
// behind an "ARGB" marker: after decompression, alpha, red, green and
// blue planes in that order.
type IconARGB struct {
	Resolution     Resolution
	CompressedData []byte
}

func (p *IconARGB) Description() string {
	return fmt.Sprintf("32-bit ARGB icon, %s", p.Resolution)
}

// IconPNGOrJPEG2000 is an icon stored as a complete PNG or JPEG 2000
// file. The format is determined by signature, not by type code; data
// matching neither signature is kept but flagged as unrecognized.
type IconPNGOrJPEG2000 struct {
	Resolution Resolution
	Data       []byte
}

// IsPNG reports whether the data starts with the PNG signature.
func (p *IconPNGOrJPEG2000) IsPNG() bool {
	return bytes.HasPrefix(p.Data, pngSignature)
}

// IsJPEG2000 reports whether the data starts with the JPEG 2000
// signature box.
func (p *IconPNGOrJPEG2000) IsJPEG2000() bool {
	return bytes.HasPrefix(p.Data, jp2Signature)
}

func (p *IconPNGOrJPEG2000) Description() string {
	switch {
	case p.IsPNG():
		return fmt.Sprintf("PNG icon, %s", p.Resolution)
	case p.IsJPEG2000():
		return fmt.Sprintf("JPEG 2000 icon, %s", p.Resolution)
	default:
		return fmt.Sprintf("invalid PNG or JPEG 2000 icon, %s", p.Resolution)
	}
}

// UnknownData is the payload of an element whose type code is not in the
// registry. Unknown codes are not an error: newer systems keep adding
// element types and their families must stay readable.
type UnknownData struct {
	Raw []byte
}

func (p *UnknownData) Description() string {
	return fmt.Sprintf("unknown data, %d bytes", len(p.Raw))
}

// Description summarizes the family for listings.
func (f *IconFamily) Description() string {
	return fmt.Sprintf("icon family, %d elements", f.Len())
}

// resolvePayload interprets an element body according to its type code's
// registry entry.
func resolvePayload(code TypeCode, body []byte) (Payload, error) {
	desc, known := LookupType(code)
	if !known {
		return &UnknownData{Raw: body}, nil
	}

	switch desc.Kind {
	case KindIconFamily:
		return decodeFamilyBody(body)

	case KindTableOfContents:
		return resolveTableOfContents(body)

	case KindComposerVersion:
		if len(body) != 4 {
			return nil, fmt.Errorf("%w: version element has %d bytes, want 4",
				apperrors.ErrInvalidPayloadSize, len(body))
		}
		r := newReader(body)
		version, err := r.readFloat32(apperrors.ErrInvalidPayloadSize)
		if err != nil {
			return nil, err
		}
		return &IconComposerVersion{Version: version}, nil

	case KindInfoDictionary:
		return &InfoDictionary{ArchivedData: body}, nil

	case KindIcon1BitWithMask:
		planeSize := (desc.Res.PixelCount() + 7) / 8
		if len(body) < 2*planeSize {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
				apperrors.ErrInvalidPayloadSize, code, len(body), 2*planeSize)
		}
		return &Icon1BitWithMask{
			Resolution: desc.Res,
			IconData:   body[:planeSize],
			MaskData:   body[planeSize : 2*planeSize],
		}, nil

	case KindIcon4Bit:
		size := (desc.Res.PixelCount() + 1) / 2
		if len(body) < size {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
				apperrors.ErrInvalidPayloadSize, code, len(body), size)
		}
		return &Icon4Bit{Resolution: desc.Res, IconData: body[:size]}, nil

	case KindIcon8Bit:
		size := desc.Res.PixelCount()
		if len(body) < size {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
				apperrors.ErrInvalidPayloadSize, code, len(body), size)
		}
		return &Icon8Bit{Resolution: desc.Res, IconData: body[:size]}, nil

	case KindIconRGB:
		compressed := body
		if code == it32Code {
			// it32 carries four zero bytes before the compressed stream.
			if len(body) < len(it32Prefix) || !bytes.Equal(body[:len(it32Prefix)], it32Prefix) {
				return nil, fmt.Errorf("%w: %s data does not start with a zero prefix",
					apperrors.ErrBadSignature, code)
			}
			compressed = body[len(it32Prefix):]
		}
		return &IconRGB{Resolution: desc.Res, CompressedData: compressed}, nil

	case KindMask8Bit:
		size := desc.Res.PixelCount()
		if len(body) < size {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
				apperrors.ErrInvalidPayloadSize, code, len(body), size)
		}
		return &Mask8Bit{Resolution: desc.Res, MaskData: body[:size]}, nil

	case KindIconARGB:
		if !bytes.HasPrefix(body, argbSignature) {
			return nil, fmt.Errorf("%w: %s data does not start with %q",
				apperrors.ErrBadSignature, code, argbSignature)
		}
		return &IconARGB{Resolution: desc.Res, CompressedData: body[len(argbSignature):]}, nil

	case KindIconPNGJP2RGB, KindIconPNGJP2:
		return &IconPNGOrJPEG2000{Resolution: desc.Res, Data: body}, nil

	default:
		return nil, fmt.Errorf("unhandled data kind %v for %s", desc.Kind, code)
	}
}

// resolveTableOfContents parses a run of bare element headers.
func resolveTableOfContents(body []byte) (*TableOfContents, error) {
	if len(body)%headerSize != 0 {
		return nil, fmt.Errorf("%w: table of contents length %d is not a multiple of %d",
			apperrors.ErrInvalidPayloadSize, len(body), headerSize)
	}
	toc := &TableOfContents{Entries: make([]TOCEntry, 0, len(body)/headerSize)}
	for off := 0; off < len(body); off += headerSize {
		var entry TOCEntry
		copy(entry.Code[:], body[off:off+4])
		entry.Length = binary.BigEndian.Uint32(body[off+4 : off+headerSize])
		toc.Entries = append(toc.Entries, entry)
	}
	return toc, nil
}
