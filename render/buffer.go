// Package render is a software compositor over packed ARGB pixel buffers.
//
// Every drawing function takes the destination buffer explicitly. Coordinates
// are pixels with the origin in the top-left corner and Y pointing down.
package render

import (
	"fmt"
	"image"
	"image/color"
	"iter"
)

// PixelBuffer is a row-major grid of packed ARGB pixels.
type PixelBuffer struct {
	width, height int
	pix           []uint32
}

// NewPixelBuffer allocates a zeroed (transparent) buffer. Non-positive
// dimensions panic.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid buffer size %dx%d", width, height))
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// WrapPixels adopts an existing pixel slice, typically one owned by the host
// window. len(pix) must equal width*height.
func WrapPixels(width, height int, pix []uint32) *PixelBuffer {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		panic(fmt.Sprintf("render: cannot wrap %d pixels as %dx%d", len(pix), width, height))
	}
	return &PixelBuffer{width: width, height: height, pix: pix}
}

func (b *PixelBuffer) Width() int { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix exposes the backing array.
func (b *PixelBuffer) Pix() []uint32 { return b.pix }

func (b *PixelBuffer) index(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("render: pixel (%d, %d) out of bounds %dx%d", x, y, b.width, b.height))
	}
	return y*b.width + x
}

func (b *PixelBuffer) At(x, y int) Color {
	return Color(b.pix[b.index(x, y)])
}

func (b *PixelBuffer) Set(x, y int, c Color) {
	b.pix[b.index(x, y)] = uint32(c)
}

// Row returns the pixels of row y.
func (b *PixelBuffer) Row(y int) []uint32 {
	start := b.index(0, y)
	return b.pix[start : start+b.width]
}

// View returns the part of r that lies inside the buffer.
func (b *PixelBuffer) View(r image.Rectangle) View {
	return View{buf: b, rect: r.Canon().Intersect(b.Bounds())}
}

// Clone returns a deep copy.
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := NewPixelBuffer(b.width, b.height)
	copy(c.pix, b.pix)
	return c
}

// CopyRGBA writes the buffer as 8-bit RGBA into dst, which must hold
// 4*width*height bytes. Alpha is forced opaque because destination alpha
// is not tracked by the compositor.
func (b *PixelBuffer) CopyRGBA(dst []byte) {
	if len(dst) != 4*len(b.pix) {
		panic(fmt.Sprintf("render: rgba buffer has %d bytes, want %d", len(dst), 4*len(b.pix)))
	}
	for i, p := range b.pix {
		c := Color(p)
		dst[4*i] = c.R()
		dst[4*i+1] = c.G()
		dst[4*i+2] = c.B()
		dst[4*i+3] = 0xFF
	}
}

// FromImage converts a decoded image into a buffer, keeping straight
// (non-premultiplied) alpha in the top byte.
func FromImage(img image.Image) *PixelBuffer {
	r := img.Bounds()
	b := NewPixelBuffer(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		row := b.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			row[x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return b
}

// View is a rectangular window into a PixelBuffer, already clipped to its bounds.
type View struct {
	buf  *PixelBuffer
	rect image.Rectangle
}

func (v View) Rect() image.Rectangle { return v.rect }
func (v View) Empty() bool { return v.rect.Empty() }

// Rows yields each row of the view as a slice into the backing buffer,
// keyed by its y coordinate in buffer space.
func (v View) Rows() iter.Seq2[int, []uint32] {
	return func(yield func(int, []uint32) bool) {
		if v.rect.Empty() {
			return
		}
		for y := v.rect.Min.Y; y < v.rect.Max.Y; y++ {
			start := y*v.buf.width + v.rect.Min.X
			if !yield(y, v.buf.pix[start:start+v.rect.Dx()]) {
				return
			}
		}
	}
}
