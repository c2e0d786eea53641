package icns

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	// PNG payloads pass through to the standard codec; JPEG 2000 has no
	// codec available and stays opaque.
	_ "image/png"
	"sort"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

// bestElement picks the element with the highest-ranked data kind at the
// given resolution, out of the kinds present in the ranking map.
func (f *IconFamily) bestElement(r Resolution, ranking map[DataKind]int) (*Element, error) {
	var best *Element
	bestRank := 0
	for kind, e := range f.byResolution[r] {
		rank, ok := ranking[kind]
		if !ok {
			continue
		}
		if rank > bestRank {
			best, bestRank = e, rank
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoMatchingElement, r)
	}
	return best, nil
}

// BestIcon returns the highest-quality icon element at the given
// resolution. Higher color depths and more modern formats rank higher
// (PNG/JPEG 2000 > ARGB > RGB > indexed > monochrome).
func (f *IconFamily) BestIcon(r Resolution) (*Element, error) {
	return f.bestElement(r, iconQuality)
}

// BestMask returns the highest-quality mask element at the given
// resolution. Matching macOS behavior, only standalone 8-bit masks and
// the 1-bit masks bundled with monochrome icons are candidates; ARGB and
// PNG/JPEG 2000 alpha channels are not.
func (f *IconFamily) BestMask(r Resolution) (*Element, error) {
	return f.bestElement(r, maskQuality)
}

// MaskAlpha finds the best mask at the given resolution and returns it
// as an alpha image.
func (f *IconFamily) MaskAlpha(r Resolution) (*image.Alpha, error) {
	e, err := f.BestMask(r)
	if err != nil {
		return nil, err
	}
	payload, err := e.Payload()
	if err != nil {
		return nil, err
	}
	switch p := payload.(type) {
	case *Mask8Bit:
		return p.Alpha(), nil
	case *Icon1BitWithMask:
		return p.MaskAlpha(), nil
	default:
		return nil, fmt.Errorf("%w: element %s is not a mask", apperrors.ErrNoMatchingElement, e.Code)
	}
}

// IconImage finds the best icon at the given resolution and composes it
// into a single image with an alpha channel. Icons that carry their own
// alpha use it directly; for the rest, the best available mask at the
// same resolution becomes the alpha channel, and the icon is fully
// opaque when the family has none.
func (f *IconFamily) IconImage(r Resolution) (image.Image, error) {
	e, err := f.BestIcon(r)
	if err != nil {
		return nil, err
	}
	payload, err := e.Payload()
	if err != nil {
		return nil, err
	}

	switch p := payload.(type) {
	case *Icon1BitWithMask:
		return p.Image(), nil
	case *IconARGB:
		return p.Image()
	case *IconPNGOrJPEG2000:
		return decodeOpaqueImage(p)
	case *Icon4Bit:
		mask, err := f.optionalMask(r)
		if err != nil {
			return nil, err
		}
		return p.Image(mask), nil
	case *Icon8Bit:
		mask, err := f.optionalMask(r)
		if err != nil {
			return nil, err
		}
		return p.Image(mask), nil
	case *IconRGB:
		mask, err := f.optionalMask(r)
		if err != nil {
			return nil, err
		}
		return p.Image(mask)
	default:
		return nil, fmt.Errorf("%w: element %s is not an icon", apperrors.ErrNoMatchingElement, e.Code)
	}
}

// optionalMask looks up a mask for composition; a family without one is
// fine, any other failure is not.
func (f *IconFamily) optionalMask(r Resolution) (*image.Alpha, error) {
	mask, err := f.MaskAlpha(r)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoMatchingElement) {
			return nil, nil
		}
		return nil, err
	}
	return mask, nil
}

// decodeOpaqueImage hands a PNG payload to the registered codec. JPEG
// 2000 and unrecognized data cannot be decoded here.
func decodeOpaqueImage(p *IconPNGOrJPEG2000) (image.Image, error) {
	if p.IsJPEG2000() {
		return nil, fmt.Errorf("%w: JPEG 2000", apperrors.ErrUnsupportedImageFormat)
	}
	if !p.IsPNG() {
		return nil, fmt.Errorf("%w: data matches neither the PNG nor the JPEG 2000 signature",
			apperrors.ErrUnsupportedImageFormat)
	}
	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedImageFormat, err)
	}
	return img, nil
}

// Resolutions returns every resolution for which the family has at least
// one icon element, smallest pixel area first.
func (f *IconFamily) Resolutions() []Resolution {
	var out []Resolution
	for r, byKind := range f.byResolution {
		for kind := range byKind {
			if kind.isIcon() {
				out = append(out, r)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PixelCount() != b.PixelCount() {
			return a.PixelCount() < b.PixelCount()
		}
		return a.Scale < b.Scale
	})
	return out
}
