// Package paths resolves the files vimkit reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "vimkit"

// LocalConfigPath is the project-local config, relative to the working directory.
var LocalConfigPath = filepath.Join("."+appName, "config.yaml")

// ConfigDir returns ~/.config/vimkit, or "" when the home directory is unknown.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// UserConfigPath returns ~/.config/vimkit/config.yaml.
func UserConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// TracesFile is the default output of the file trace exporter.
func TracesFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// ResolveConfig picks the config file to load. An explicit path always wins,
// then .vimkit/config.yaml, then the user config. ok is false when none exists.
func ResolveConfig(explicit string) (path string, ok bool) {
	if explicit != "" {
		return ExpandHome(explicit), true
	}
	for _, candidate := range []string{LocalConfigPath, UserConfigPath()} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// ExpandHome replaces a leading ~ with the home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
