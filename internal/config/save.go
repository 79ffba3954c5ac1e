package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/vimkit/internal/log"
)

// DefaultConfigTemplate renders the defaults as a commented YAML document.
func DefaultConfigTemplate() string {
	d := Defaults()
	return fmt.Sprintf(`# vimkit configuration

# Alternate row backgrounds in lists and tables
zebra_stripes: %t

# Clipboard backend: auto, system, osc52 or memory.
# auto uses OSC52 inside SSH, tmux and screen sessions.
clipboard: %s

# How long notices stay on screen
notice_duration: %s

# Chord windows: how long a leader key waits for its follower
chords:
  delete_timeout: %s
  copy_timeout: %s
  go_timeout: %s
  tick_interval: %s

gallery:
  extensions: [%s]
  # 0 fits as many columns as the terminal allows
  columns: %d
  debounce: %s
  watch: %t

tracing:
  enabled: %t
  # none, file, stdout or otlp
  exporter: %s
  # file_path: ~/.config/vimkit/traces/traces.jsonl
  otlp_endpoint: %s
  sample_rate: %v

# Hex colors overriding the palette
# theme:
#   highlight: "#54A0FF"
#   visual: "#3B4261"
#   muted: "#696969"
#   zebra: "#1E1E2E"
`,
		d.ZebraStripes,
		d.Clipboard,
		d.NoticeDuration,
		d.Chords.DeleteTimeout, d.Chords.CopyTimeout, d.Chords.GoTimeout, d.Chords.TickInterval,
		strings.Join(d.Gallery.Extensions, ", "), d.Gallery.Columns, d.Gallery.Debounce, d.Gallery.Watch,
		d.Tracing.Enabled, d.Tracing.Exporter, d.Tracing.OTLPEndpoint, d.Tracing.SampleRate,
	)
}

// WriteDefaultConfig writes the default template to configPath. An existing
// file is left alone.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config already exists: %s", configPath)
	}
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// Set writes value at the dotted key, e.g. "theme.highlight". Comments and
// unrelated keys survive because the file is edited as a yaml.Node tree.
// The value is parsed as YAML, so "true" and "3" keep their types.
func Set(configPath, key, value string) error {
	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("invalid key %q", key)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	val := scalar(value)

	node := root
	for i, p := range parts {
		last := i == len(parts)-1
		child := lookup(node, p)
		switch {
		case last && child != nil:
			*child = *val
		case last:
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p}, val)
		case child == nil:
			child = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p}, child)
		case child.Kind != yaml.MappingNode:
			return fmt.Errorf("key %q: %s is not a section", key, strings.Join(parts[:i+1], "."))
		}
		node = child
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "Updated config", "path", configPath, "key", key)
	return nil
}

// scalar parses value as a YAML scalar so booleans and numbers keep their
// type. Anything else, including text starting with #, is stored as a string.
func scalar(value string) *yaml.Node {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(value), &doc); err == nil && len(doc.Content) == 1 {
		if n := doc.Content[0]; n.Kind == yaml.ScalarNode && n.Tag != "!!null" {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: n.Tag, Value: n.Value}
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// lookup returns the value node of key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory, then renames it.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	temp, err := os.CreateTemp(dir, ".vimkit.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
