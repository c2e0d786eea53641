package icns

import (
	"testing"
)

func TestLookupType(t *testing.T) {
	cases := []struct {
		code string
		kind DataKind
		res  Resolution
	}{
		{"icm#", KindIcon1BitWithMask, res(16, 12, 1)},
		{"ics8", KindIcon8Bit, res(16, 16, 1)},
		{"is32", KindIconRGB, res(16, 16, 1)},
		{"s8mk", KindMask8Bit, res(16, 16, 1)},
		{"ICN#", KindIcon1BitWithMask, res(32, 32, 1)},
		{"it32", KindIconRGB, res(128, 128, 1)},
		{"ic04", KindIconARGB, res(16, 16, 1)},
		{"icsb", KindIconARGB, res(18, 18, 1)},
		{"icp4", KindIconPNGJP2RGB, res(16, 16, 1)},
		{"ic07", KindIconPNGJP2, res(128, 128, 1)},
		{"ic10", KindIconPNGJP2, res(512, 512, 2)},
	}
	for _, tc := range cases {
		desc, ok := LookupType(typeCode(tc.code))
		if !ok {
			t.Errorf("%s not in registry", tc.code)
			continue
		}
		if desc.Kind != tc.kind {
			t.Errorf("%s kind is %v, want %v", tc.code, desc.Kind, tc.kind)
		}
		if desc.Res != tc.res {
			t.Errorf("%s resolution is %v, want %v", tc.code, desc.Res, tc.res)
		}
	}
}

func TestLookupTypeUnknown(t *testing.T) {
	if _, ok := LookupType(typeCode("WxYz")); ok {
		t.Error("unexpected registry entry for WxYz")
	}
}

func TestLookupTypeByKindAndResolution(t *testing.T) {
	desc, ok := LookupTypeByKindAndResolution(KindIconRGB, res(16, 16, 1))
	if !ok {
		t.Fatal("no RGB type registered at 16x16")
	}
	if desc.Code != typeCode("is32") {
		t.Errorf("got %s, want 'is32'", desc.Code)
	}

	if _, ok := LookupTypeByKindAndResolution(KindIconRGB, res(512, 512, 1)); ok {
		t.Error("unexpected RGB type at 512x512")
	}
}

func TestDarkModeVariant(t *testing.T) {
	desc, ok := LookupType(darkModeCode)
	if !ok {
		t.Fatal("dark mode code not in registry")
	}
	if desc.Kind != KindIconFamily {
		t.Errorf("dark mode kind is %v, want KindIconFamily", desc.Kind)
	}
	if desc.Variant == "" {
		t.Error("dark mode variant has no display name")
	}
}

func TestResolutionPixels(t *testing.T) {
	r := res(16, 16, 2)
	if r.PixelWidth() != 32 || r.PixelHeight() != 32 || r.PixelCount() != 1024 {
		t.Errorf("16x16@2x reports %dx%d (%d pixels)", r.PixelWidth(), r.PixelHeight(), r.PixelCount())
	}
}

func TestResolutionString(t *testing.T) {
	if got := res(32, 32, 1).String(); got != "32x32" {
		t.Errorf("got %q, want \"32x32\"", got)
	}
	if got := res(16, 16, 2).String(); got != "32x32 (16x16@2x)" {
		t.Errorf("got %q, want \"32x32 (16x16@2x)\"", got)
	}
}

func TestTypeCodeString(t *testing.T) {
	if got := typeCode("ics8").String(); got != "'ics8'" {
		t.Errorf("got %q, want \"'ics8'\"", got)
	}
	if got := darkModeCode.String(); got != `'\xfd\xd9/\xa8'` {
		t.Errorf("got %q", got)
	}
	if got := typeCode("TOC ").Hex(); got != "544f4320" {
		t.Errorf("got %q, want \"544f4320\"", got)
	}
}

func TestQualityRankingsCoverIconKinds(t *testing.T) {
	iconKinds := []DataKind{
		KindIcon1BitWithMask, KindIcon4Bit, KindIcon8Bit,
		KindIconRGB, KindIconARGB, KindIconPNGJP2RGB, KindIconPNGJP2,
	}
	for _, k := range iconKinds {
		if !k.isIcon() {
			t.Errorf("%v not ranked as an icon", k)
		}
	}
	if KindMask8Bit.isIcon() {
		t.Error("8-bit mask ranked as an icon")
	}
	if !KindMask8Bit.isMask() || !KindIcon1BitWithMask.isMask() {
		t.Error("mask ranking is missing a mask kind")
	}
	if KindIconARGB.isMask() || KindIconPNGJP2.isMask() {
		t.Error("alpha-carrying icon kinds must not rank as masks")
	}
}
