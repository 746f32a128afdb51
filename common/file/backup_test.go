package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xishang0128/textfix/compression"
)

func TestBackupAndRestore(t *testing.T) {
	m := compression.NewCodecManager()

	for _, typ := range m.GetSupportedTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "auth.js")
			original := []byte("alert(\"请输入邮箱和密码\");\n")
			require.NoError(t, os.WriteFile(path, original, 0o644))

			codec, err := m.GetCodec(typ)
			require.NoError(t, err)

			backupPath, created, err := Backup(path, original, codec, m)
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, path+".backup"+codec.Extension(), backupPath)

			require.NoError(t, Store(path, "alert(\"Please enter email and password\");\n"))

			restoredFrom, err := Restore(path, m)
			require.NoError(t, err)
			assert.Equal(t, backupPath, restoredFrom)

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, original, b)

			_, err = os.Stat(backupPath)
			assert.NoError(t, err, "backup should be kept after restore")
		})
	}
}

func TestBackupKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auth.js")
	codec := compression.NewNoneCodec()

	_, created, err := Backup(path, []byte("first"), codec, nil)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = Backup(path, []byte("second"), codec, nil)
	require.NoError(t, err)
	assert.False(t, created)

	b, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}

func TestFindBackupPrefersCompressed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auth.js")
	m := compression.NewCodecManager()

	_, _, err := Backup(path, []byte("plain"), compression.NewNoneCodec(), m)
	require.NoError(t, err)
	packed, err := compression.NewXZCodec().Compress([]byte("packed"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path+".backup.xz", packed, 0o644))

	found, codec, err := FindBackup(path, m)
	require.NoError(t, err)
	assert.Equal(t, path+".backup.xz", found)
	assert.Equal(t, compression.TypeXZ, codec.Type())
}

func TestBackupKeepsExistingOtherFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auth.js")
	m := compression.NewCodecManager()

	_, created, err := Backup(path, []byte("pristine"), compression.NewNoneCodec(), m)
	require.NoError(t, err)
	require.True(t, created)

	backupPath, created, err := Backup(path, []byte("already rewritten"), compression.NewXZCodec(), m)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, path+".backup", backupPath)

	_, err = os.Stat(path + ".backup.xz")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, os.WriteFile(path, []byte("already rewritten"), 0o644))
	_, err = Restore(path, m)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pristine", string(b))
}

func TestRestoreWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.js")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Restore(path, compression.NewCodecManager())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBackup))
}
