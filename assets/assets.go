// Package assets decodes sprite images from disk into pixel buffers.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/tilerunner/render"
	"golang.org/x/image/bmp"
)

var (
	ErrNoExtension       = errors.New("assets: file name has no extension")
	ErrUnsupportedFormat = errors.New("assets: unsupported image format")
)

// DecodeImage decodes a PNG or BMP stream, detected by its header.
func DecodeImage(r io.Reader) (*render.PixelBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	return render.FromImage(img), nil
}

// LoadImage reads name from fsys and decodes it with the decoder its
// extension names.
func LoadImage(fsys fs.FS, name string) (*render.PixelBuffer, error) {
	var decode func(io.Reader) (image.Image, error)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case "":
		return nil, fmt.Errorf("%w: %s", ErrNoExtension, name)
	case ".png":
		decode = png.Decode
	case ".bmp":
		decode = bmp.Decode
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return render.FromImage(img), nil
}

// Loader caches decoded images by path.
type Loader struct {
	fsys  fs.FS
	cache map[string]*render.PixelBuffer
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*render.PixelBuffer),
	}
}

// Load returns the cached image for name, decoding it on first use.
func (l *Loader) Load(name string) (*render.PixelBuffer, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	img, err := LoadImage(l.fsys, name)
	if err != nil {
		return nil, err
	}
	l.cache[name] = img
	return img, nil
}

// MustLoad is Load for images the game cannot run without.
func (l *Loader) MustLoad(name string) *render.PixelBuffer {
	img, err := l.Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load image %s: %v", name, err))
	}
	return img
}
