package icns

import (
	"image"
	"image/color"
)

// Decoders from raw bitmap payloads to standard image buffers. All
// dimensions come from the type registry, never from the payload itself.
// Icons without a bundled mask take an optional alpha image; passing nil
// produces a fully opaque result.

func pixelRect(r Resolution) image.Rectangle {
	return image.Rect(0, 0, r.PixelWidth(), r.PixelHeight())
}

// IconGray expands the bit-packed icon plane into an 8-bit grayscale
// image. The source convention is inverted (1 is black), so set bits
// become 0x00 and clear bits 0xff.
func (p *Icon1BitWithMask) IconGray() *image.Gray {
	return unpackBits(p.Resolution, p.IconData, 0x00, 0xff)
}

// MaskAlpha expands the bit-packed mask plane into an alpha image; set
// bits are opaque.
func (p *Icon1BitWithMask) MaskAlpha() *image.Alpha {
	bits := unpackBits(p.Resolution, p.MaskData, 0xff, 0x00)
	return &image.Alpha{Pix: bits.Pix, Stride: bits.Stride, Rect: bits.Rect}
}

// Image combines the icon and mask planes into a single image.
func (p *Icon1BitWithMask) Image() *image.NRGBA {
	gray := p.IconGray()
	mask := p.MaskAlpha()
	out := image.NewNRGBA(pixelRect(p.Resolution))
	for i := range gray.Pix {
		v := gray.Pix[i]
		out.Pix[i*4+0] = v
		out.Pix[i*4+1] = v
		out.Pix[i*4+2] = v
		out.Pix[i*4+3] = mask.Pix[i]
	}
	return out
}

// unpackBits expands an MSB-first bit plane into one byte per pixel.
func unpackBits(r Resolution, packed []byte, set, clear uint8) *image.Gray {
	out := image.NewGray(pixelRect(r))
	for i := 0; i < r.PixelCount(); i++ {
		if packed[i/8]&(0x80>>(i%8)) != 0 {
			out.Pix[i] = set
		} else {
			out.Pix[i] = clear
		}
	}
	return out
}

// Image decodes the nibble-packed indices through the fixed 16-entry
// system palette. The high nibble of each byte is the earlier pixel.
func (p *Icon4Bit) Image(mask *image.Alpha) *image.NRGBA {
	out := image.NewNRGBA(pixelRect(p.Resolution))
	for i := 0; i < p.Resolution.PixelCount(); i++ {
		b := p.IconData[i/2]
		idx := b >> 4
		if i%2 == 1 {
			idx = b & 0x0f
		}
		setPaletteColor(out, i, mac4BitPalette[idx])
	}
	applyMask(out, mask)
	return out
}

// Image decodes one index per pixel through the fixed 256-entry system
// palette.
func (p *Icon8Bit) Image(mask *image.Alpha) *image.NRGBA {
	out := image.NewNRGBA(pixelRect(p.Resolution))
	for i := 0; i < p.Resolution.PixelCount(); i++ {
		setPaletteColor(out, i, mac8BitPalette[p.IconData[i]])
	}
	applyMask(out, mask)
	return out
}

// Planes decompresses the payload into its three concatenated color
// planes (red, then green, then blue; not interleaved).
func (p *IconRGB) Planes() ([]byte, error) {
	return decompressRLEPlanes(p.CompressedData, 3*p.Resolution.PixelCount())
}

// Image decompresses and interleaves the color planes.
func (p *IconRGB) Image(mask *image.Alpha) (*image.NRGBA, error) {
	planes, err := p.Planes()
	if err != nil {
		return nil, err
	}
	n := p.Resolution.PixelCount()
	out := image.NewNRGBA(pixelRect(p.Resolution))
	for i := 0; i < n; i++ {
		out.Pix[i*4+0] = planes[i]
		out.Pix[i*4+1] = planes[n+i]
		out.Pix[i*4+2] = planes[2*n+i]
		out.Pix[i*4+3] = 0xff
	}
	applyMask(out, mask)
	return out, nil
}

// Alpha returns the mask as an alpha image.
func (p *Mask8Bit) Alpha() *image.Alpha {
	out := image.NewAlpha(pixelRect(p.Resolution))
	copy(out.Pix, p.MaskData)
	return out
}

// Gray returns the mask as an opaque grayscale image, the conventional
// way to view a mask on its own.
func (p *Mask8Bit) Gray() *image.Gray {
	out := image.NewGray(pixelRect(p.Resolution))
	copy(out.Pix, p.MaskData)
	return out
}

// Planes decompresses the payload into its four concatenated planes
// (alpha, then red, green and blue).
func (p *IconARGB) Planes() ([]byte, error) {
	return decompressRLEPlanes(p.CompressedData, 4*p.Resolution.PixelCount())
}

// Image decompresses and interleaves the planes. The bundled alpha plane
// is the image's alpha channel.
func (p *IconARGB) Image() (*image.NRGBA, error) {
	planes, err := p.Planes()
	if err != nil {
		return nil, err
	}
	n := p.Resolution.PixelCount()
	out := image.NewNRGBA(pixelRect(p.Resolution))
	for i := 0; i < n; i++ {
		out.Pix[i*4+0] = planes[n+i]
		out.Pix[i*4+1] = planes[2*n+i]
		out.Pix[i*4+2] = planes[3*n+i]
		out.Pix[i*4+3] = planes[i]
	}
	return out, nil
}

func setPaletteColor(img *image.NRGBA, i int, c color.Color) {
	nrgba := c.(color.NRGBA)
	img.Pix[i*4+0] = nrgba.R
	img.Pix[i*4+1] = nrgba.G
	img.Pix[i*4+2] = nrgba.B
	img.Pix[i*4+3] = nrgba.A
}

// applyMask writes the mask into the image's alpha channel. A nil mask
// leaves the image fully opaque.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	if mask == nil {
		return
	}
	n := len(img.Pix) / 4
	for i := 0; i < n && i < len(mask.Pix); i++ {
		img.Pix[i*4+3] = mask.Pix[i]
	}
}
