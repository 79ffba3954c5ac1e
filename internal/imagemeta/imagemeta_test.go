package imagemeta

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/testutil"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	b := testutil.InDir(t, dir).WithImage(name, w, h, testutil.RGBA(color.White))
	b.Build()
	return b.Path(name)
}

func TestRead(t *testing.T) {
	path := writePNG(t, t.TempDir(), "cat.png", 4, 3)

	info, err := Read(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "png", info.Format)
	require.Equal(t, "4x3", info.Dimensions())
	require.Equal(t, "cat.png", info.Name())
	require.Positive(t, info.Size)
	require.Contains(t, info.Summary(), "PNG 4x3")
}

func TestRead_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Read(context.Background(), path)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolver_RereadsRewrittenFile(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 2, 2)
	r := NewResolver(time.Minute)

	info, err := r.Lookup(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "2x2", info.Dimensions())

	writePNG(t, dir, "a.png", 10, 5)
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	info, err = r.Lookup(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "10x5", info.Dimensions())
}

func TestHumanSize(t *testing.T) {
	require.Equal(t, "1.5 kB", Info{Size: 1500}.HumanSize())
	require.Equal(t, "0 B", Info{}.HumanSize())
}
