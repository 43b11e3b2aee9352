package render

import (
	"image"
	"math"
)

// Fill writes c into every pixel of [min, max) that lies inside dst.
// Inverted corners are swapped.
func Fill(dst *PixelBuffer, min, max image.Point, c Color) {
	fillRect(dst, image.Rect(min.X, min.Y, max.X, max.Y), c)
}

func fillRect(dst *PixelBuffer, r image.Rectangle, c Color) {
	for _, row := range dst.View(r).Rows() {
		for i := range row {
			row[i] = uint32(c)
		}
	}
}

// Clear fills the whole buffer.
func Clear(dst *PixelBuffer, c Color) {
	fillRect(dst, dst.Bounds(), c)
}

// Outline draws a border of the given thickness just inside [min, max).
// Each edge is clipped on its own, so a rectangle hanging off the buffer
// still draws the edges that are visible.
func Outline(dst *PixelBuffer, min, max image.Point, c Color, thickness int) {
	if thickness <= 0 || max.X <= min.X || max.Y <= min.Y {
		return
	}
	r := image.Rectangle{Min: min, Max: max}
	edges := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		fillRect(dst, e.Intersect(r), c)
	}
}

// Line draws a one pixel wide line from p0 to p1, both ends included.
// Pixels outside dst are skipped.
func Line(dst *PixelBuffer, p0, p1 image.Point, c Color) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	plot := func(x, y int) {
		if (image.Point{x, y}).In(dst.Bounds()) {
			dst.Set(x, y, c)
		}
	}

	if abs(dx) >= abs(dy) {
		if dx < 0 {
			p0, p1 = p1, p0
			dx, dy = -dx, -dy
		}
		if dx == 0 {
			plot(p0.X, p0.Y)
			return
		}
		slope := float64(abs(dy)) / float64(dx)
		step := sign(dy)
		y, acc := p0.Y, 0.0
		for x := p0.X; x <= p1.X; x++ {
			plot(x, y)
			acc += slope
			if acc >= 0.5 {
				y += step
				acc -= 1
			}
		}
		return
	}

	if dy < 0 {
		p0, p1 = p1, p0
		dx, dy = -dx, -dy
	}
	slope := float64(abs(dx)) / float64(dy)
	step := sign(dx)
	x, acc := p0.X, 0.0
	for y := p0.Y; y <= p1.Y; y++ {
		plot(x, y)
		acc += slope
		if acc >= 0.5 {
			x += step
			acc -= 1
		}
	}
}

// BlitAlpha composites src onto dst with its top-left corner at p.
//
// Each RGB channel is lerped towards the source by the source alpha. The
// destination alpha is not blended: every written pixel ends up with a zero
// alpha byte. Buffers are presented as opaque, so the host ignores it.
func BlitAlpha(dst, src *PixelBuffer, p image.Point) {
	dv := dst.View(src.Bounds().Add(p))
	if dv.Empty() {
		return
	}
	sx := dv.Rect().Min.X - p.X
	for y, row := range dv.Rows() {
		srow := src.Row(y - p.Y)[sx : sx+len(row)]
		for i, s := range srow {
			row[i] = uint32(lerp(Color(row[i]), Color(s)))
		}
	}
}

func lerp(d, s Color) Color {
	a := float64(s.A()) / 255
	mix := func(dc, sc uint8) Color {
		return Color(int(dc) + int(float64(int(sc)-int(dc))*a))
	}
	return mix(d.R(), s.R())<<16 | mix(d.G(), s.G())<<8 | mix(d.B(), s.B())
}

// BlitTinted blends mask onto dst like BlitAlpha, with every mask pixel
// recolored to c's RGB and its alpha scaled by c's alpha.
func BlitTinted(dst, mask *PixelBuffer, p image.Point, c Color) {
	dv := dst.View(mask.Bounds().Add(p))
	if dv.Empty() {
		return
	}
	sx := dv.Rect().Min.X - p.X
	for y, row := range dv.Rows() {
		srow := mask.Row(y - p.Y)[sx : sx+len(row)]
		for i, m := range srow {
			row[i] = uint32(lerp(Color(row[i]), tint(Color(m), c)))
		}
	}
}

func tint(m, c Color) Color {
	a := uint32(m.A()) * uint32(c.A()) / 255
	return Color(a<<24) | c&^AMask
}

// ScaleUp draws src into dst with every source pixel expanded to a
// scale x scale block. Whatever does not fit is dropped.
func ScaleUp(src, dst *PixelBuffer, scale int) {
	if scale <= 0 {
		return
	}
	w := min(dst.width, src.width*scale)
	h := min(dst.height, src.height*scale)
	for y := 0; y < h; y++ {
		srow := src.Row(y / scale)
		drow := dst.Row(y)[:w]
		for x := range drow {
			drow[x] = srow[x/scale]
		}
	}
}

// Opacity returns how much of c survives after fading by t in [0,1].
func Opacity(c Color, t float64) Color {
	a := float64(c.A()) * math.Max(0, math.Min(1, t))
	return c&^AMask | Color(uint32(math.Round(a)))<<24
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
