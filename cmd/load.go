package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/vimkit/internal/paths"
	"github.com/zjrosen/vimkit/internal/ui/gallery"
	"github.com/zjrosen/vimkit/internal/ui/vimmedia"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(paths.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// parseLines returns the non-blank lines of data.
func parseLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseTable splits data into a header row and body rows. comma is ',' for
// CSV input and '\t' for TSV.
func parseTable(data []byte, comma rune) (columns []string, rows [][]string, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = comma == '\t'
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("parsing table: no header row")
	}
	return records[0], records[1:], nil
}

// delimiterFor picks the separator from the file extension, defaulting to tabs.
func delimiterFor(path, format string) (rune, error) {
	if format == "" {
		format = "tsv"
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			format = "csv"
		}
	}
	switch strings.ToLower(format) {
	case "csv":
		return ',', nil
	case "tsv":
		return '\t', nil
	}
	return 0, fmt.Errorf("unknown table format %q (want csv or tsv)", format)
}

// mediaEntry is one item of a multimedia YAML file.
type mediaEntry struct {
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// parseMedia decodes a YAML list of text/image entries. Relative image paths
// resolve against base.
func parseMedia(data []byte, base string) ([]vimmedia.Item, error) {
	var entries []mediaEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing media list: %w", err)
	}
	items := make([]vimmedia.Item, 0, len(entries))
	for i, e := range entries {
		if e.Text == "" && e.Image == "" {
			return nil, fmt.Errorf("parsing media list: entry %d has neither text nor image", i)
		}
		img := paths.ExpandHome(e.Image)
		if img != "" && !filepath.IsAbs(img) {
			img = filepath.Join(base, img)
		}
		items = append(items, vimmedia.Item{Text: e.Text, Image: img})
	}
	return items, nil
}

// mediaFromFolder makes one captioned item per image in dir.
func mediaFromFolder(dir string, exts []string) ([]vimmedia.Item, error) {
	images, err := gallery.Scan(dir, exts)
	if err != nil {
		return nil, err
	}
	items := make([]vimmedia.Item, 0, len(images))
	for _, p := range images {
		name := filepath.Base(p)
		items = append(items, vimmedia.Item{Text: strings.TrimSuffix(name, filepath.Ext(name)), Image: p})
	}
	return items, nil
}
