package icns

import (
	"fmt"
)

// DataKind classifies what an element's data contains.
type DataKind int

const (
	KindIconFamily DataKind = iota
	KindTableOfContents
	KindComposerVersion
	KindInfoDictionary
	KindIcon1BitWithMask
	KindIcon4Bit
	KindIcon8Bit
	KindIconRGB
	KindMask8Bit
	KindIconARGB
	KindIconPNGJP2RGB
	KindIconPNGJP2
)

// String returns a short human-readable name for the kind.
func (k DataKind) String() string {
	switch k {
	case KindIconFamily:
		return "icon family"
	case KindTableOfContents:
		return "table of contents"
	case KindComposerVersion:
		return "Icon Composer version"
	case KindInfoDictionary:
		return "info dictionary"
	case KindIcon1BitWithMask:
		return "1-bit monochrome icon and 1-bit mask"
	case KindIcon4Bit:
		return "4-bit indexed color icon"
	case KindIcon8Bit:
		return "8-bit indexed color icon"
	case KindIconRGB:
		return "24-bit RGB icon"
	case KindMask8Bit:
		return "8-bit mask"
	case KindIconARGB:
		return "32-bit ARGB icon"
	case KindIconPNGJP2RGB, KindIconPNGJP2:
		return "PNG or JPEG 2000 icon"
	default:
		return fmt.Sprintf("DataKind(%d)", int(k))
	}
}

// isIcon reports whether elements of this kind carry icon image data.
func (k DataKind) isIcon() bool {
	_, ok := iconQuality[k]
	return ok
}

// isMask reports whether elements of this kind can serve as a mask for
// icons without their own alpha channel. Note that 1-bit icons carry a
// bundled mask and count as both icon and mask.
func (k DataKind) isMask() bool {
	_, ok := maskQuality[k]
	return ok
}

// Quality rankings for choosing between several representations of the
// same resolution. Higher is better. The numbers are only meaningful for
// comparisons within the same map.
var iconQuality = map[DataKind]int{
	KindIcon1BitWithMask: 1,
	KindIcon4Bit:         2,
	KindIcon8Bit:         3,
	KindIconRGB:          4,
	KindIconARGB:         5,
	KindIconPNGJP2RGB:    6,
	KindIconPNGJP2:       7,
}

var maskQuality = map[DataKind]int{
	KindIcon1BitWithMask: 1,
	KindMask8Bit:         2,
}

// Resolution is an icon image's size in points together with its scale
// (physical pixels per point along each axis). Scale 1 is a regular icon,
// scale 2 a HiDPI ("@2x") one.
type Resolution struct {
	PointWidth  int
	PointHeight int
	Scale       int
}

// PixelWidth returns the width in physical pixels.
func (r Resolution) PixelWidth() int {
	return r.PointWidth * r.Scale
}

// PixelHeight returns the height in physical pixels.
func (r Resolution) PixelHeight() int {
	return r.PointHeight * r.Scale
}

// PixelCount returns the total number of pixels in the image.
func (r Resolution) PixelCount() int {
	return r.PixelWidth() * r.PixelHeight()
}

func (r Resolution) String() string {
	s := fmt.Sprintf("%dx%d", r.PixelWidth(), r.PixelHeight())
	if r.Scale != 1 {
		s += fmt.Sprintf(" (%dx%d@%dx)", r.PointWidth, r.PointHeight, r.Scale)
	}
	return s
}

func res(pointWidth, pointHeight, scale int) Resolution {
	return Resolution{PointWidth: pointWidth, PointHeight: pointHeight, Scale: scale}
}

// TypeDescriptor is one entry of the type registry: the semantic meaning
// of a known four-byte type code. Image-bearing kinds also record the
// icon's resolution, and family kinds a display name for the variant.
type TypeDescriptor struct {
	Code    TypeCode
	Kind    DataKind
	Res     Resolution // zero value for non-image kinds
	Variant string     // set for family kinds only
}

// HasResolution reports whether the descriptor carries image dimensions.
func (d *TypeDescriptor) HasResolution() bool {
	return d.Res.Scale != 0
}

// darkModeCode is the non-printable type code of the dark mode variant
// family written by macOS 10.14 and later.
var darkModeCode = TypeCode{0xfd, 0xd9, 0x2f, 0xa8}

// knownTypes is the full registry of element types this package
// understands. Codes absent from this table decode as Unknown payloads
// rather than failing, so icons written by newer systems stay readable.
var knownTypes = []TypeDescriptor{
	// Icon families
	{Code: typeCode("icns"), Kind: KindIconFamily, Variant: "icon family"},
	{Code: typeCode("tile"), Kind: KindIconFamily, Variant: "tile variant"},
	{Code: typeCode("over"), Kind: KindIconFamily, Variant: "rollover variant"},
	{Code: typeCode("drop"), Kind: KindIconFamily, Variant: "drop variant"},
	{Code: typeCode("open"), Kind: KindIconFamily, Variant: "open variant"},
	{Code: typeCode("odrp"), Kind: KindIconFamily, Variant: "open drop variant"},
	{Code: typeCode("sbpp"), Kind: KindIconFamily, Variant: "sidebar unselected variant"},
	{Code: typeCode("sbtp"), Kind: KindIconFamily, Variant: "sidebar icon variant"},
	{Code: typeCode("slct"), Kind: KindIconFamily, Variant: "selected variant"},
	{Code: darkModeCode, Kind: KindIconFamily, Variant: "dark mode variant"},

	// Metadata
	{Code: typeCode("TOC "), Kind: KindTableOfContents},
	{Code: typeCode("icnV"), Kind: KindComposerVersion},
	{Code: typeCode("info"), Kind: KindInfoDictionary},

	// Classic bitmap icons, 16x12 ("mini")
	{Code: typeCode("icm#"), Kind: KindIcon1BitWithMask, Res: res(16, 12, 1)},
	{Code: typeCode("icm4"), Kind: KindIcon4Bit, Res: res(16, 12, 1)},
	{Code: typeCode("icm8"), Kind: KindIcon8Bit, Res: res(16, 12, 1)},

	// Classic bitmap icons, 16x16 ("small")
	{Code: typeCode("ics#"), Kind: KindIcon1BitWithMask, Res: res(16, 16, 1)},
	{Code: typeCode("ics4"), Kind: KindIcon4Bit, Res: res(16, 16, 1)},
	{Code: typeCode("ics8"), Kind: KindIcon8Bit, Res: res(16, 16, 1)},
	{Code: typeCode("is32"), Kind: KindIconRGB, Res: res(16, 16, 1)},
	{Code: typeCode("s8mk"), Kind: KindMask8Bit, Res: res(16, 16, 1)},

	// Classic bitmap icons, 32x32 ("large")
	{Code: typeCode("ICN#"), Kind: KindIcon1BitWithMask, Res: res(32, 32, 1)},
	{Code: typeCode("icl4"), Kind: KindIcon4Bit, Res: res(32, 32, 1)},
	{Code: typeCode("icl8"), Kind: KindIcon8Bit, Res: res(32, 32, 1)},
	{Code: typeCode("il32"), Kind: KindIconRGB, Res: res(32, 32, 1)},
	{Code: typeCode("l8mk"), Kind: KindMask8Bit, Res: res(32, 32, 1)},

	// Classic bitmap icons, 48x48 ("huge")
	{Code: typeCode("ich#"), Kind: KindIcon1BitWithMask, Res: res(48, 48, 1)},
	{Code: typeCode("ich4"), Kind: KindIcon4Bit, Res: res(48, 48, 1)},
	{Code: typeCode("ich8"), Kind: KindIcon8Bit, Res: res(48, 48, 1)},
	{Code: typeCode("ih32"), Kind: KindIconRGB, Res: res(48, 48, 1)},
	{Code: typeCode("h8mk"), Kind: KindMask8Bit, Res: res(48, 48, 1)},

	// Classic bitmap icons, 128x128 ("thumbnail"). The it32 RGB data has
	// four extra zero bytes before the compressed stream.
	{Code: typeCode("it32"), Kind: KindIconRGB, Res: res(128, 128, 1)},
	{Code: typeCode("t8mk"), Kind: KindMask8Bit, Res: res(128, 128, 1)},

	// ARGB bitmap icons
	{Code: typeCode("ic04"), Kind: KindIconARGB, Res: res(16, 16, 1)},
	{Code: typeCode("icsb"), Kind: KindIconARGB, Res: res(18, 18, 1)},
	{Code: typeCode("ic05"), Kind: KindIconARGB, Res: res(32, 32, 1)},

	// PNG/JPEG 2000 icons, regular scale. icp4/icp5 have been seen
	// carrying raw RGB bitmap data instead of PNG/JPEG 2000 data.
	{Code: typeCode("icp4"), Kind: KindIconPNGJP2RGB, Res: res(16, 16, 1)},
	{Code: typeCode("icp5"), Kind: KindIconPNGJP2RGB, Res: res(32, 32, 1)},
	{Code: typeCode("icp6"), Kind: KindIconPNGJP2, Res: res(64, 64, 1)},
	{Code: typeCode("ic07"), Kind: KindIconPNGJP2, Res: res(128, 128, 1)},
	{Code: typeCode("ic08"), Kind: KindIconPNGJP2, Res: res(256, 256, 1)},
	{Code: typeCode("ic09"), Kind: KindIconPNGJP2, Res: res(512, 512, 1)},

	// PNG/JPEG 2000 icons, HiDPI scale (@2x)
	{Code: typeCode("ic11"), Kind: KindIconPNGJP2, Res: res(16, 16, 2)},
	{Code: typeCode("icsB"), Kind: KindIconPNGJP2, Res: res(18, 18, 2)},
	{Code: typeCode("ic12"), Kind: KindIconPNGJP2, Res: res(32, 32, 2)},
	{Code: typeCode("ic13"), Kind: KindIconPNGJP2, Res: res(128, 128, 2)},
	{Code: typeCode("ic14"), Kind: KindIconPNGJP2, Res: res(256, 256, 2)},
	{Code: typeCode("ic10"), Kind: KindIconPNGJP2, Res: res(512, 512, 2)},
}

// mainFamilyCode is the required type code of the outermost element.
var mainFamilyCode = typeCode("icns")

type kindAndRes struct {
	kind DataKind
	res  Resolution
}

// Lookup maps over knownTypes, populated once at startup and read-only
// afterwards.
var (
	typesByCode       map[TypeCode]*TypeDescriptor
	typesByKindAndRes map[kindAndRes]*TypeDescriptor
)

func init() {
	typesByCode = make(map[TypeCode]*TypeDescriptor, len(knownTypes))
	typesByKindAndRes = make(map[kindAndRes]*TypeDescriptor)

	for i := range knownTypes {
		desc := &knownTypes[i]
		if _, dup := typesByCode[desc.Code]; dup {
			panic(fmt.Sprintf("type registry: duplicate type code %s", desc.Code))
		}
		typesByCode[desc.Code] = desc

		if desc.HasResolution() {
			key := kindAndRes{kind: desc.Kind, res: desc.Res}
			if _, dup := typesByKindAndRes[key]; dup {
				panic(fmt.Sprintf("type registry: duplicate kind/resolution for %s", desc.Code))
			}
			typesByKindAndRes[key] = desc
		}
	}
}

// LookupType returns the registry descriptor for a type code, if any.
func LookupType(tc TypeCode) (*TypeDescriptor, bool) {
	desc, ok := typesByCode[tc]
	return desc, ok
}

// LookupTypeByKindAndResolution returns the descriptor registered for an
// image-bearing kind at a given resolution, if any.
func LookupTypeByKindAndResolution(kind DataKind, r Resolution) (*TypeDescriptor, bool) {
	desc, ok := typesByKindAndRes[kindAndRes{kind: kind, res: r}]
	return desc, ok
}
