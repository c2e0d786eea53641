package icns

import (
	"image"
	"image/color"
	"testing"
)

func TestIcon1BitImage(t *testing.T) {
	r := res(16, 16, 1)
	planeSize := r.PixelCount() / 8

	// First pixel set (black), rest clear; mask fully opaque.
	iconData := make([]byte, planeSize)
	iconData[0] = 0x80
	maskData := make([]byte, planeSize)
	for i := range maskData {
		maskData[i] = 0xff
	}

	p := &Icon1BitWithMask{Resolution: r, IconData: iconData, MaskData: maskData}
	img := p.Image()

	// Set bits are black, not white.
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("set pixel is %v, want opaque black", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("clear pixel is %v, want opaque white", got)
	}
}

func TestIcon1BitMaskAlpha(t *testing.T) {
	r := res(16, 16, 1)
	planeSize := r.PixelCount() / 8

	maskData := make([]byte, planeSize)
	maskData[0] = 0x40 // only the second pixel is opaque

	p := &Icon1BitWithMask{Resolution: r, IconData: make([]byte, planeSize), MaskData: maskData}
	alpha := p.MaskAlpha()
	if alpha.Pix[0] != 0x00 || alpha.Pix[1] != 0xff || alpha.Pix[2] != 0x00 {
		t.Errorf("mask alpha starts % x", alpha.Pix[:3])
	}
}

func TestIcon4BitImage(t *testing.T) {
	r := res(16, 16, 1)
	data := make([]byte, r.PixelCount()/2)
	data[0] = 0x0f // high nibble 0 (white), low nibble 15 (black)

	img := (&Icon4Bit{Resolution: r, IconData: data}).Image(nil)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("high-nibble pixel is %v, want white", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("low-nibble pixel is %v, want black", got)
	}
}

func TestIcon8BitImage(t *testing.T) {
	r := res(16, 16, 1)
	data := make([]byte, r.PixelCount())
	data[0] = 0   // first cube entry: white
	data[1] = 215 // first entry of the red ramp
	data[2] = 255 // black

	img := (&Icon8Bit{Resolution: r, IconData: data}).Image(nil)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("index 0 is %v, want white", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0xee, 0x00, 0x00, 0xff}) {
		t.Errorf("index 215 is %v, want the red ramp start", got)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("index 255 is %v, want black", got)
	}
}

func TestIcon8BitImageWithMask(t *testing.T) {
	r := res(16, 16, 1)
	mask := image.NewAlpha(pixelRect(r))
	mask.Pix[0] = 0x80

	img := (&Icon8Bit{Resolution: r, IconData: make([]byte, r.PixelCount())}).Image(mask)
	if img.NRGBAAt(0, 0).A != 0x80 {
		t.Errorf("masked pixel alpha is %#x, want 0x80", img.NRGBAAt(0, 0).A)
	}
	if img.NRGBAAt(1, 0).A != 0x00 {
		t.Errorf("masked pixel alpha is %#x, want 0", img.NRGBAAt(1, 0).A)
	}
}

func TestIconRGBPlaneOrder(t *testing.T) {
	r := res(16, 16, 1)
	n := r.PixelCount()

	// Distinct constant planes make channel mixups visible.
	planes := make([]byte, 0, 3*n)
	for _, v := range []byte{0x10, 0x30, 0x50} {
		for i := 0; i < n; i++ {
			planes = append(planes, v)
		}
	}
	planes[0] = 0x11    // red of pixel 0
	planes[n] = 0x31    // green of pixel 0
	planes[2*n] = 0x51  // blue of pixel 0

	p := &IconRGB{Resolution: r, CompressedData: rleLiteral(planes)}
	img, err := p.Image(nil)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0x11, 0x31, 0x51, 0xff}) {
		t.Errorf("pixel 0 is %v, want {11 31 51 ff}", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0x10, 0x30, 0x50, 0xff}) {
		t.Errorf("pixel 1 is %v, want {10 30 50 ff}", got)
	}
}

func TestIconRGBPlaneSizeMismatch(t *testing.T) {
	r := res(16, 16, 1)
	p := &IconRGB{Resolution: r, CompressedData: rleLiteral(make([]byte, 100))}
	if _, err := p.Planes(); err == nil {
		t.Error("short plane data decoded without error")
	}
}

func TestIconARGBPlaneOrder(t *testing.T) {
	r := res(16, 16, 1)
	n := r.PixelCount()

	planes := make([]byte, 0, 4*n)
	for _, v := range []byte{0x01, 0x02, 0x03, 0x04} { // A, R, G, B planes
		for i := 0; i < n; i++ {
			planes = append(planes, v)
		}
	}

	p := &IconARGB{Resolution: r, CompressedData: rleLiteral(planes)}
	img, err := p.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0x02, 0x03, 0x04, 0x01}) {
		t.Errorf("pixel 0 is %v, want {02 03 04 01}", got)
	}
}

func TestMask8BitAlpha(t *testing.T) {
	r := res(16, 16, 1)
	data := make([]byte, r.PixelCount())
	data[0] = 0xcc

	alpha := (&Mask8Bit{Resolution: r, MaskData: data}).Alpha()
	if alpha.Pix[0] != 0xcc || alpha.Pix[1] != 0x00 {
		t.Errorf("mask alpha starts % x", alpha.Pix[:2])
	}

	gray := (&Mask8Bit{Resolution: r, MaskData: data}).Gray()
	if gray.Pix[0] != 0xcc {
		t.Errorf("mask gray starts %#x", gray.Pix[0])
	}
}

func TestPaletteSizes(t *testing.T) {
	if len(mac4BitPalette) != 16 {
		t.Errorf("4-bit palette has %d entries", len(mac4BitPalette))
	}
	if len(mac8BitPalette) != 256 {
		t.Errorf("8-bit palette has %d entries", len(mac8BitPalette))
	}
	// The cube omits black; it lives at the last index instead.
	if mac8BitPalette[255] != (color.NRGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Errorf("index 255 is %v, want black", mac8BitPalette[255])
	}
	if mac8BitPalette[214] != (color.NRGBA{0x00, 0x00, 0x33, 0xff}) {
		t.Errorf("index 214 is %v, want the last cube entry", mac8BitPalette[214])
	}
}
