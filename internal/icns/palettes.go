package icns

import (
	"image/color"
)

// mac4BitPalette is the fixed 16-entry system palette used by 4-bit
// indexed icons on Classic Mac OS.
var mac4BitPalette = color.Palette{
	color.NRGBA{0xff, 0xff, 0xff, 0xff}, // white
	color.NRGBA{0xfc, 0xf3, 0x05, 0xff}, // yellow
	color.NRGBA{0xff, 0x64, 0x02, 0xff}, // orange
	color.NRGBA{0xdd, 0x08, 0x06, 0xff}, // red
	color.NRGBA{0xf2, 0x08, 0x84, 0xff}, // magenta
	color.NRGBA{0x46, 0x00, 0xa5, 0xff}, // purple
	color.NRGBA{0x00, 0x00, 0xd4, 0xff}, // blue
	color.NRGBA{0x02, 0xab, 0xea, 0xff}, // cyan
	color.NRGBA{0x1f, 0xb7, 0x14, 0xff}, // green
	color.NRGBA{0x00, 0x64, 0x11, 0xff}, // dark green
	color.NRGBA{0x56, 0x2c, 0x05, 0xff}, // brown
	color.NRGBA{0x90, 0x71, 0x3a, 0xff}, // tan
	color.NRGBA{0xc0, 0xc0, 0xc0, 0xff}, // light gray
	color.NRGBA{0x80, 0x80, 0x80, 0xff}, // medium gray
	color.NRGBA{0x40, 0x40, 0x40, 0xff}, // dark gray
	color.NRGBA{0x00, 0x00, 0x00, 0xff}, // black
}

// mac8BitPalette is the fixed 256-entry system palette used by 8-bit
// indexed icons and built the way Classic Mac OS defines it: a 6x6x6
// color cube (without black, which lives at index 255), then 10-step
// red, green, blue and gray ramps that skip the values already present
// in the cube.
var mac8BitPalette = buildMac8BitPalette()

func buildMac8BitPalette() color.Palette {
	p := make(color.Palette, 0, 256)

	cube := []uint8{0xff, 0xcc, 0x99, 0x66, 0x33, 0x00}
	for _, r := range cube {
		for _, g := range cube {
			for _, b := range cube {
				if r == 0 && g == 0 && b == 0 {
					continue
				}
				p = append(p, color.NRGBA{r, g, b, 0xff})
			}
		}
	}

	ramp := []uint8{0xee, 0xdd, 0xbb, 0xaa, 0x88, 0x77, 0x55, 0x44, 0x22, 0x11}
	for _, v := range ramp {
		p = append(p, color.NRGBA{v, 0, 0, 0xff})
	}
	for _, v := range ramp {
		p = append(p, color.NRGBA{0, v, 0, 0xff})
	}
	for _, v := range ramp {
		p = append(p, color.NRGBA{0, 0, v, 0xff})
	}
	for _, v := range ramp {
		p = append(p, color.NRGBA{v, v, v, 0xff})
	}

	p = append(p, color.NRGBA{0, 0, 0, 0xff})
	return p
}
