package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state", "nested", "history.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	// idempotent
	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir("history.db"))
}

func TestEnsureParentDir_FailsWhenParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "db"))
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.sharefile/history.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sharefile", "history.db"), got)

	got, err = ExpandHome("relative/history.db")
	require.NoError(t, err)
	assert.Equal(t, "relative/history.db", got)

	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}

func TestLocalDBPath(t *testing.T) {
	for _, dsn := range []string{":memory:", "file:test?mode=memory"} {
		got, err := LocalDBPath(dsn)
		require.NoError(t, err)
		assert.Equal(t, dsn, got)
	}

	path := filepath.Join(t.TempDir(), "a", "h.db")
	got, err := LocalDBPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.DirExists(t, filepath.Dir(path))
}
