package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/tilerunner/render"
	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	img.SetNRGBA(2, 1, color.NRGBA{B: 0xFF, A: 0x80})
	return img
}

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pngBytes(t *testing.T) []byte {
	return encode(t, func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
}

func bmpBytes(t *testing.T) []byte {
	return encode(t, func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) })
}

func TestLoadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png":   {Data: pngBytes(t)},
		"b.BMP":   {Data: bmpBytes(t)},
		"c.gif":   {Data: []byte("GIF89a")},
		"noext":   {Data: pngBytes(t)},
		"bad.png": {Data: []byte("not a png")},
	}

	tests := []struct {
		name    string
		wantErr error
	}{
		{"a.png", nil},
		{"b.BMP", nil},
		{"c.gif", ErrUnsupportedFormat},
		{"noext", ErrNoExtension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadImage(fsys, tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if img.Width() != 3 || img.Height() != 2 {
				t.Fatalf("size = %dx%d, want 3x2", img.Width(), img.Height())
			}
			if got := img.At(0, 0); got != render.Red {
				t.Errorf("At(0,0) = %#08x, want %#08x", uint32(got), uint32(render.Red))
			}
		})
	}

	if _, err := LoadImage(fsys, "bad.png"); err == nil {
		t.Error("corrupt png should fail")
	}
	if _, err := LoadImage(fsys, "missing.png"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDecodeImageKeepsAlpha(t *testing.T) {
	img, err := DecodeImage(bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatal(err)
	}
	if a := img.At(2, 1).A(); a != 0x80 {
		t.Errorf("alpha = %#x, want 0x80", a)
	}
	if _, err := DecodeImage(bytes.NewReader([]byte("junk"))); err == nil {
		t.Error("junk should not decode")
	}
}

func TestLoaderCaches(t *testing.T) {
	fsys := fstest.MapFS{"a.png": {Data: pngBytes(t)}}
	l := NewLoader(fsys)
	first := l.MustLoad("a.png")
	delete(fsys, "a.png")
	if second := l.MustLoad("a.png"); second != first {
		t.Error("second load did not come from the cache")
	}
}

func TestLoadSprites(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range []string{
		"test_player_right", "test_player_left",
		"test_enemy_right", "test_enemy_left",
		"hook", "test_ground",
	} {
		fsys[SpriteDir+"/"+name+".png"] = &fstest.MapFile{Data: pngBytes(t)}
	}

	s, err := LoadSprites(fsys, SpriteDir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Player.Right == nil || s.Enemy.Left == nil || s.Hook == nil || s.Ground == nil {
		t.Fatal("sprite missing after load")
	}

	delete(fsys, SpriteDir+"/hook.png")
	if _, err := LoadSprites(fsys, SpriteDir); err == nil {
		t.Error("missing hook sprite should fail")
	}
}

func TestPlaceholder(t *testing.T) {
	s := Placeholder(16)
	if s.Ground.Width() != 16 || s.Ground.Height() != 16 {
		t.Errorf("ground is %dx%d", s.Ground.Width(), s.Ground.Height())
	}
	if s.Player.Right.At(12, 4) == s.Player.Left.At(12, 4) {
		t.Error("left and right player sprites should differ")
	}
}
