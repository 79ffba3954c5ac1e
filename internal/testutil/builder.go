// Package testutil builds on-disk fixtures for widget and loader tests.
package testutil

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fileData holds one entry to be written.
type fileData struct {
	name    string
	content []byte
	image   *imageData
	dir     bool
}

// Builder accumulates folder entries and writes them in one go.
type Builder struct {
	t       *testing.T
	dir     string
	entries []fileData
}

// NewFolder creates a builder writing into a fresh temporary directory.
func NewFolder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, dir: t.TempDir()}
}

// InDir creates a builder writing into an existing directory.
func InDir(t *testing.T, dir string) *Builder {
	t.Helper()
	return &Builder{t: t, dir: dir}
}

// WithImage adds a PNG of the given size.
func (b *Builder) WithImage(name string, w, h int, opts ...ImageOption) *Builder {
	img := defaultImage(w, h)
	for _, opt := range opts {
		opt(&img)
	}
	b.entries = append(b.entries, fileData{name: name, image: &img})
	return b
}

// WithFile adds a plain file.
func (b *Builder) WithFile(name, content string) *Builder {
	b.entries = append(b.entries, fileData{name: name, content: []byte(content)})
	return b
}

// WithDir adds an empty subdirectory.
func (b *Builder) WithDir(name string) *Builder {
	b.entries = append(b.entries, fileData{name: name, dir: true})
	return b
}

// Build writes every entry and returns the folder path.
func (b *Builder) Build() string {
	b.t.Helper()
	for _, e := range b.entries {
		path := filepath.Join(b.dir, e.name)
		switch {
		case e.dir:
			require.NoError(b.t, os.MkdirAll(path, 0o755))
		case e.image != nil:
			writePNG(b.t, path, *e.image)
		default:
			require.NoError(b.t, os.WriteFile(path, e.content, 0o644))
		}
	}
	b.entries = nil
	return b.dir
}

// Path joins name onto the folder.
func (b *Builder) Path(name string) string { return filepath.Join(b.dir, name) }

// WritePNG writes a single w x h PNG into dir and returns its path.
func WritePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	b := InDir(t, dir).WithImage(name, w, h)
	b.Build()
	return b.Path(name)
}

func writePNG(t *testing.T, path string, data imageData) {
	t.Helper()
	var img image.Image
	if data.gray {
		img = image.NewGray(image.Rect(0, 0, data.width, data.height))
	} else {
		rgba := image.NewRGBA(image.Rect(0, 0, data.width, data.height))
		rgba.Set(0, 0, data.fill)
		img = rgba
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

