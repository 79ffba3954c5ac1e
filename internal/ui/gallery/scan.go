package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zjrosen/vimkit/internal/watcher"
)

// Scan lists the image files directly inside dir, sorted by name without
// regard to case. Subdirectories and hidden files are skipped.
func Scan(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !watcher.Matches(name, exts) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(filepath.Base(a)), strings.ToLower(filepath.Base(b)))
	})
	return out, nil
}
