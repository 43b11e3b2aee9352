// Package fonts rasterizes a TrueType font into per-character alpha masks
// that the software compositor can blit.
package fonts

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/tilerunner/render"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Charset is every character a GlyphAtlas can draw, besides space.
const Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.,:;!?"

// GlyphAtlas holds one white alpha-mask buffer per supported character.
// Every mask is exactly one line tall. It is immutable after construction.
type GlyphAtlas struct {
	glyphs map[rune]*render.PixelBuffer
	height int
}

// NewGlyphAtlas parses ttf and renders Charset at the given line height in pixels.
func NewGlyphAtlas(ttf []byte, height int) (*GlyphAtlas, error) {
	if height <= 0 {
		return nil, fmt.Errorf("fonts: invalid line height %d", height)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	a := &GlyphAtlas{
		glyphs: make(map[rune]*render.PixelBuffer, len(Charset)+1),
		height: height,
	}
	// The baseline sits one ascent below the top of the line so that no
	// glyph gets clipped at the top.
	dot := fixed.Point26_6{Y: face.Metrics().Ascent}
	for _, r := range Charset {
		g, err := rasterize(face, dot, r, height)
		if err != nil {
			return nil, err
		}
		a.glyphs[r] = g
	}
	a.glyphs[' '] = render.NewPixelBuffer(max(height/2, 1), height)
	return a, nil
}

// Default builds an atlas from the embedded Go Mono face.
func Default(height int) (*GlyphAtlas, error) {
	return NewGlyphAtlas(gomono.TTF, height)
}

func rasterize(face font.Face, dot fixed.Point26_6, r rune, height int) (*render.PixelBuffer, error) {
	dr, mask, maskp, advance, ok := face.Glyph(dot, r)
	if !ok {
		return nil, fmt.Errorf("fonts: font has no glyph for %q", r)
	}
	if dr.Empty() {
		return render.NewPixelBuffer(max(advance.Round(), 1), height), nil
	}

	buf := render.NewPixelBuffer(dr.Dx(), height)
	for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, height); y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			p := maskp.Add(image.Pt(x, y).Sub(dr.Min))
			cov := color.AlphaModel.Convert(mask.At(p.X, p.Y)).(color.Alpha).A
			buf.Set(x-dr.Min.X, y, render.Color(cov)<<24|render.White&^render.AMask)
		}
	}
	return buf, nil
}

// Height returns the line height in pixels.
func (a *GlyphAtlas) Height() int { return a.height }

// Glyph returns the mask for r. A character outside Charset and space panics.
func (a *GlyphAtlas) Glyph(r rune) *render.PixelBuffer {
	g, ok := a.glyphs[r]
	if !ok {
		panic(fmt.Sprintf("fonts: no glyph for %q", r))
	}
	return g
}

// Width returns how many pixels text takes when drawn.
func (a *GlyphAtlas) Width(text string) int {
	w := 0
	for _, r := range text {
		w += a.Glyph(r).Width()
	}
	return w
}

// DrawString draws text in white with its top-left corner at origin and
// returns the advanced width in pixels.
func (a *GlyphAtlas) DrawString(dst *render.PixelBuffer, origin image.Point, text string) int {
	x := origin.X
	for _, r := range text {
		g := a.Glyph(r)
		render.BlitAlpha(dst, g, image.Pt(x, origin.Y))
		x += g.Width()
	}
	return x - origin.X
}

// DrawStringColor is DrawString with the glyphs tinted by c, including its
// alpha. Glyph masks are white, so this is how text gets its color.
func (a *GlyphAtlas) DrawStringColor(dst *render.PixelBuffer, origin image.Point, text string, c render.Color) int {
	x := origin.X
	for _, r := range text {
		g := a.Glyph(r)
		render.BlitTinted(dst, g, image.Pt(x, origin.Y), c)
		x += g.Width()
	}
	return x - origin.X
}
