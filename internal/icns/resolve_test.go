package icns

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

func mustDecode(t *testing.T, data []byte) *IconFamily {
	t.Helper()
	fam, err := DecodeIconFamily(data)
	if err != nil {
		t.Fatalf("DecodeIconFamily failed: %v", err)
	}
	return fam
}

func TestBestIconPrefersHigherQuality(t *testing.T) {
	// 8-bit indexed and 24-bit RGB at the same resolution: RGB wins.
	fam := mustDecode(t, family(
		elem("ics8", make([]byte, 256)),
		elem("is32", rleLiteral(make([]byte, 768))),
	))

	e, err := fam.BestIcon(res(16, 16, 1))
	if err != nil {
		t.Fatalf("BestIcon failed: %v", err)
	}
	if e.Code != typeCode("is32") {
		t.Errorf("best icon is %s, want 'is32'", e.Code)
	}
}

func TestBestIconMonochromeOnly(t *testing.T) {
	fam := mustDecode(t, family(elem("ics#", make([]byte, 64))))

	e, err := fam.BestIcon(res(16, 16, 1))
	if err != nil {
		t.Fatalf("BestIcon failed: %v", err)
	}
	if e.Code != typeCode("ics#") {
		t.Errorf("best icon is %s, want 'ics#'", e.Code)
	}
}

func TestBestIconNoMatch(t *testing.T) {
	fam := mustDecode(t, family(elem("ics8", make([]byte, 256))))
	if _, err := fam.BestIcon(res(32, 32, 1)); !errors.Is(err, apperrors.ErrNoMatchingElement) {
		t.Errorf("got %v, want ErrNoMatchingElement", err)
	}
}

func TestBestMaskPrefers8Bit(t *testing.T) {
	fam := mustDecode(t, family(
		elem("ics#", make([]byte, 64)),
		elem("s8mk", make([]byte, 256)),
	))

	e, err := fam.BestMask(res(16, 16, 1))
	if err != nil {
		t.Fatalf("BestMask failed: %v", err)
	}
	if e.Code != typeCode("s8mk") {
		t.Errorf("best mask is %s, want 's8mk'", e.Code)
	}
}

func TestBestMaskIgnoresAlphaIcons(t *testing.T) {
	// ARGB icons carry alpha but never serve as a mask for other icons.
	argb := append([]byte("ARGB"), rleLiteral(make([]byte, 1024))...)
	fam := mustDecode(t, family(elem("ic04", argb)))
	if _, err := fam.BestMask(res(16, 16, 1)); !errors.Is(err, apperrors.ErrNoMatchingElement) {
		t.Errorf("got %v, want ErrNoMatchingElement", err)
	}
}

func TestIconImageAppliesMask(t *testing.T) {
	maskData := make([]byte, 256)
	maskData[0] = 0x80
	fam := mustDecode(t, family(
		elem("ics8", make([]byte, 256)),
		elem("s8mk", maskData),
	))

	img, err := fam.IconImage(res(16, 16, 1))
	if err != nil {
		t.Fatalf("IconImage failed: %v", err)
	}
	nrgba := img.(*image.NRGBA)
	if nrgba.NRGBAAt(0, 0).A != 0x80 {
		t.Errorf("pixel 0 alpha is %#x, want 0x80", nrgba.NRGBAAt(0, 0).A)
	}
	if nrgba.NRGBAAt(1, 0).A != 0x00 {
		t.Errorf("pixel 1 alpha is %#x, want 0", nrgba.NRGBAAt(1, 0).A)
	}
}

func TestIconImageOpaqueWithoutMask(t *testing.T) {
	fam := mustDecode(t, family(elem("ics8", make([]byte, 256))))

	img, err := fam.IconImage(res(16, 16, 1))
	if err != nil {
		t.Fatalf("IconImage failed: %v", err)
	}
	nrgba := img.(*image.NRGBA)
	if nrgba.NRGBAAt(0, 0).A != 0xff {
		t.Errorf("pixel alpha is %#x, want fully opaque", nrgba.NRGBAAt(0, 0).A)
	}
}

func TestIconImageARGBUsesOwnAlpha(t *testing.T) {
	n := 256
	planes := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		planes[i] = 0x42 // alpha plane
	}
	argb := append([]byte("ARGB"), rleLiteral(planes)...)

	// A standalone mask at the same resolution must not override the
	// icon's own alpha channel.
	maskData := make([]byte, 256)
	for i := range maskData {
		maskData[i] = 0xff
	}
	fam := mustDecode(t, family(elem("ic04", argb), elem("s8mk", maskData)))

	img, err := fam.IconImage(res(16, 16, 1))
	if err != nil {
		t.Fatalf("IconImage failed: %v", err)
	}
	nrgba := img.(*image.NRGBA)
	if nrgba.NRGBAAt(0, 0).A != 0x42 {
		t.Errorf("pixel alpha is %#x, want 0x42 from the ARGB alpha plane", nrgba.NRGBAAt(0, 0).A)
	}
}

func TestIconImagePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	src.Pix[3] = 0xff
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding fixture failed: %v", err)
	}

	fam := mustDecode(t, family(elem("icp4", buf.Bytes())))
	img, err := fam.IconImage(res(16, 16, 1))
	if err != nil {
		t.Fatalf("IconImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("decoded bounds are %v", img.Bounds())
	}
}

func TestIconImageJPEG2000Unsupported(t *testing.T) {
	fam := mustDecode(t, family(elem("ic07", jp2Signature)))
	if _, err := fam.IconImage(res(128, 128, 1)); !errors.Is(err, apperrors.ErrUnsupportedImageFormat) {
		t.Errorf("got %v, want ErrUnsupportedImageFormat", err)
	}
}

func TestResolutionsSortedAndIconsOnly(t *testing.T) {
	fam := mustDecode(t, family(
		elem("ic07", pngSignature),
		elem("ics8", make([]byte, 256)),
		elem("ICN#", make([]byte, 256)),
		elem("t8mk", make([]byte, 128*128)), // mask-only resolution at 128x128 already covered by ic07
		elem("h8mk", make([]byte, 48*48)),   // mask-only resolution, no icon at 48x48
	))

	got := fam.Resolutions()
	want := []Resolution{res(16, 16, 1), res(32, 32, 1), res(128, 128, 1)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
