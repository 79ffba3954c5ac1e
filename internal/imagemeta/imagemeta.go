// Package imagemeta reads image headers (format and dimensions) together
// with file facts, memoized per path and modification time.
package imagemeta

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/zjrosen/vimkit/internal/cachemanager"
	"github.com/zjrosen/vimkit/internal/log"
)

// ErrUnsupported is returned for files whose header no registered decoder
// recognizes.
var ErrUnsupported = errors.New("unsupported image format")

// Info describes one image file.
type Info struct {
	Path    string
	Format  string
	Width   int
	Height  int
	Size    int64
	ModTime time.Time
}

// Name is the file's base name.
func (i Info) Name() string { return filepath.Base(i.Path) }

// Dimensions formats the pixel size as WxH.
func (i Info) Dimensions() string { return fmt.Sprintf("%dx%d", i.Width, i.Height) }

// HumanSize formats the byte size, e.g. "1.2 kB".
func (i Info) HumanSize() string { return humanize.Bytes(uint64(max(i.Size, 0))) }

// Summary is the one-line form shown next to multimedia items.
func (i Info) Summary() string {
	return fmt.Sprintf("%s %s %s", strings.ToUpper(i.Format), i.Dimensions(), i.HumanSize())
}

// Read stats path and decodes only its header.
func Read(_ context.Context, path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
		}
		return Info{}, fmt.Errorf("decode image header: %w", err)
	}
	return Info{
		Path:    path,
		Format:  format,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Size:    st.Size(),
		ModTime: st.ModTime(),
	}, nil
}

// Resolver caches Read results. Entries are keyed by path, size and
// modification time so a rewritten file is decoded again.
type Resolver struct {
	cache *cachemanager.ReadThroughCache[Info, string]
	ttl   time.Duration
}

// NewResolver creates a resolver whose entries live for ttl.
func NewResolver(ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = cachemanager.DefaultExpiration
	}
	return &Resolver{
		cache: cachemanager.NewReadThroughCache[Info, string](
			cachemanager.NewInMemoryCacheManager[Info]("imagemeta", ttl, cachemanager.DefaultCleanupInterval),
			Read,
		),
		ttl: ttl,
	}
}

// Lookup returns the metadata for path.
func (r *Resolver) Lookup(ctx context.Context, path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}
	key := fmt.Sprintf("%s|%d|%d", path, st.Size(), st.ModTime().UnixNano())
	info, err := r.cache.Get(ctx, key, path, r.ttl)
	if err != nil {
		log.Debug(log.CatCache, "image metadata unavailable", "path", path, "error", err)
	}
	return info, err
}
