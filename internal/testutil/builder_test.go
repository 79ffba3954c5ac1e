package testutil

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, format, err := image.Decode(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	return img
}

func TestBuilder_WritesEntries(t *testing.T) {
	b := NewFolder(t).
		WithImage("a.png", 3, 2).
		WithFile("notes.txt", "hello").
		WithDir("sub.png")
	dir := b.Build()

	img := decode(t, b.Path("a.png"))
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	info, err := os.Stat(filepath.Join(dir, "sub.png"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestBuilder_RGBA(t *testing.T) {
	b := NewFolder(t).WithImage("red.png", 2, 2, RGBA(color.RGBA{R: 255, A: 255}))
	b.Build()

	r, g, _, a := decode(t, b.Path("red.png")).At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Zero(t, g)
	require.Equal(t, uint32(0xffff), a)
}

func TestBuilder_BuildTwice(t *testing.T) {
	b := NewFolder(t).WithFile("one.txt", "1")
	dir := b.Build()
	require.Equal(t, dir, b.WithFile("two.txt", "2").Build())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := WritePNG(t, dir, "cat.png", 4, 3)

	require.Equal(t, filepath.Join(dir, "cat.png"), path)
	require.Equal(t, image.Rect(0, 0, 4, 3), decode(t, path).Bounds())
}
