package tilemap

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned by a Store when no level with the given name exists.
var ErrNotFound = errors.New("tilemap: level not found")

// Store loads and saves levels by name.
type Store interface {
	LoadLevel(name string) (*Grid, error)
	SaveLevel(name string, g *Grid) error
}

// DirStore keeps each level as a file under a directory.
type DirStore struct {
	Dir string
}

func (s DirStore) path(name string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(name))
}

func (s DirStore) LoadLevel(name string) (*Grid, error) {
	g, err := Load(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return g, nil
}

func (s DirStore) SaveLevel(name string, g *Grid) error {
	return Save(s.path(name), g)
}

// GdataStore keeps levels in the per-user application data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdataStore opens the data directory of the given application.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open level storage: %w", err)
	}
	return &GdataStore{m: m}, nil
}

func itemKey(name string) string {
	return "level_" + filepath.Base(name)
}

func (s *GdataStore) LoadLevel(name string) (*Grid, error) {
	data, err := s.m.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	g := new(Grid)
	if err := g.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	return g, nil
}

func (s *GdataStore) SaveLevel(name string, g *Grid) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("save level %s: %w", name, err)
	}
	return nil
}

// MemStore is an in-memory Store, mostly useful in tests and for the
// editor when no data directory is configured.
type MemStore map[string][]byte

func (s MemStore) LoadLevel(name string) (*Grid, error) {
	data, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	g := new(Grid)
	if err := g.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return g, nil
}

func (s MemStore) SaveLevel(name string, g *Grid) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	s[name] = data
	return nil
}
