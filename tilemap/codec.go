package tilemap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HeaderSize is the length of the {width, height} prefix of a level file.
const HeaderSize = 8

var (
	// ErrTruncated means the data ended before width*height tiles were read.
	ErrTruncated = errors.New("tilemap: level data truncated")
	// ErrBadDimensions means the header holds a zero or oversized dimension.
	ErrBadDimensions = errors.New("tilemap: invalid level dimensions")
	// ErrBadTile means a tile byte is not a known Tile.
	ErrBadTile = errors.New("tilemap: invalid tile")
)

// maxCells bounds width*height so a corrupt header cannot request a huge allocation.
const maxCells = 1 << 26

type header struct {
	Width, Height uint32
}

// MarshalBinary encodes the grid as a little-endian {width, height uint32}
// header followed by one byte per tile in row-major order.
func (g *Grid) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(g.tiles)))
	h := header{Width: uint32(g.width), Height: uint32(g.height)}
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	for _, t := range g.tiles {
		buf.WriteByte(byte(t))
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the grid with the decoded level. Trailing bytes
// after the last tile are ignored.
func (g *Grid) UnmarshalBinary(data []byte) error {
	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*g = *d
	return nil
}

// Decode reads one level from r.
func Decode(r io.Reader) (*Grid, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	if h.Width == 0 || h.Height == 0 || uint64(h.Width)*uint64(h.Height) > maxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, h.Width, h.Height)
	}

	g := New(int(h.Width), int(h.Height))
	raw := make([]byte, len(g.tiles))
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d tiles", ErrTruncated, len(raw))
		}
		return nil, err
	}
	for i, b := range raw {
		if b >= tileKinds {
			return nil, fmt.Errorf("%w: %d at cell %d", ErrBadTile, b, i)
		}
		g.tiles[i] = Tile(b)
	}
	return g, nil
}

// Load reads a level file.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return g, nil
}

// Save writes the level to path, creating parent directories as needed.
func Save(path string, g *Grid) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return nil
}
