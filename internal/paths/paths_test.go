package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestResolveConfig_LookupOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	_, ok := ResolveConfig("")
	require.False(t, ok)

	user := filepath.Join(home, ".config", "vimkit", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(user), 0o755))
	require.NoError(t, os.WriteFile(user, nil, 0o600))
	path, ok := ResolveConfig("")
	require.True(t, ok)
	require.Equal(t, user, path)

	require.NoError(t, os.MkdirAll(".vimkit", 0o755))
	require.NoError(t, os.WriteFile(LocalConfigPath, nil, 0o600))
	path, _ = ResolveConfig("")
	require.Equal(t, LocalConfigPath, path)

	path, ok = ResolveConfig("~/other.yaml")
	require.True(t, ok)
	require.Equal(t, filepath.Join(home, "other.yaml"), path)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, home, ExpandHome("~"))
	require.Equal(t, filepath.Join(home, "pics"), ExpandHome("~/pics"))
	require.Equal(t, "~user/pics", ExpandHome("~user/pics"))
	require.Equal(t, "/tmp/x", ExpandHome("/tmp/x"))
}

func TestTracesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, ".config", "vimkit", "traces", "traces.jsonl"), TracesFile())
}
