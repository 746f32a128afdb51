package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.js")
	require.NoError(t, os.WriteFile(path, []byte("console.log(\"🔐 开始登录\");\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "console.log(\"🔐 开始登录\");\n", got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.js")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe}, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	assert.Contains(t, err.Error(), "offset 2")
}

func TestStoreReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.js")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	require.NoError(t, Store(path, "v2"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(b))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
	assertNoTempFiles(t, dir)
}

func TestStoreCreatesMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.js")

	require.NoError(t, Store(path, "data"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
	assertNoTempFiles(t, dir)
}

func TestStoreMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.js")

	err := Store(path, "data")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "tmp file not cleaned: %s", e.Name())
	}
}
