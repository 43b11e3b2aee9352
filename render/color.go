package render

import "math"

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	AMask Color = 0xFF000000
	RMask Color = 0x00FF0000
	GMask Color = 0x0000FF00
	BMask Color = 0x000000FF
)

const (
	Transparent Color = 0
	Black             = AMask
	White             = AMask | RMask | GMask | BMask
	Yellow            = AMask | RMask | GMask
	Red               = AMask | RMask
	Purple            = AMask | RMask | BMask
	Grey              = AMask | 0x7F<<16 | 0x7F<<8 | 0x7F
)

// RGB builds an opaque color from channels in [0,1]. Out-of-range channels are clamped.
func RGB(r, g, b float64) Color {
	return AMask | Color(quantize(r))<<16 | Color(quantize(g))<<8 | Color(quantize(b))
}

// ARGB is RGB with an explicit alpha channel.
func ARGB(a, r, g, b float64) Color {
	return RGB(r, g, b)&^AMask | Color(quantize(a))<<24
}

func quantize(v float64) uint32 {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(0, math.Min(1, v))
	return uint32(math.Round(v * 255))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8((c & RMask) >> 16) }
func (c Color) G() uint8 { return uint8((c & GMask) >> 8) }
func (c Color) B() uint8 { return uint8(c & BMask) }
