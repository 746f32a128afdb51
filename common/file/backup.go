package file

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/xishang0128/textfix/compression"
)

// BackupSuffix is appended to the rewritten file's name, before any codec extension.
const BackupSuffix = ".backup"

// BackupPath returns where the codec would place the backup of path.
func BackupPath(path string, codec compression.Codec) string {
	return path + BackupSuffix + codec.Extension()
}

// Backup writes original to the backup location of path encoded with codec.
// An existing backup in any format m knows, or at codec's own location, is
// left untouched and created reports false, so the first pristine copy
// survives repeated runs even when the backup format changes between them.
// m may be nil.
func Backup(path string, original []byte, codec compression.Codec, m *compression.CodecManager) (backupPath string, created bool, err error) {
	if m != nil {
		if existing, _, err := FindBackup(path, m); err == nil {
			return existing, false, nil
		}
	}

	backupPath = BackupPath(path, codec)
	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return backupPath, false, errors.Mark(errors.Wrapf(err, "stat backup %s", backupPath), ErrWrite)
	}

	packed, err := codec.Compress(original)
	if err != nil {
		return backupPath, false, errors.Mark(errors.Wrapf(err, "encode backup %s", backupPath), ErrWrite)
	}

	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := WriteAtomic(backupPath, packed, perm); err != nil {
		return backupPath, false, errors.Mark(errors.Wrapf(err, "write backup %s", backupPath), ErrWrite)
	}
	return backupPath, true, nil
}

// FindBackup looks for an existing backup of path, compressed formats first.
func FindBackup(path string, m *compression.CodecManager) (string, compression.Codec, error) {
	for _, codec := range m.ByExtensionPriority() {
		candidate := BackupPath(path, codec)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, codec, nil
		}
	}
	return "", nil, errors.Wrapf(ErrNoBackup, "%s", path)
}

// Restore decodes the backup of path and stores it back over path.
// The backup itself is kept.
func Restore(path string, m *compression.CodecManager) (string, error) {
	backupPath, codec, err := FindBackup(path, m)
	if err != nil {
		return "", err
	}

	packed, err := readAll(backupPath)
	if err != nil {
		return backupPath, err
	}
	data, err := codec.Decompress(packed)
	if err != nil {
		return backupPath, errors.Wrapf(err, "decode backup %s", backupPath)
	}

	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := WriteAtomic(path, data, perm); err != nil {
		return backupPath, errors.Mark(errors.Wrapf(err, "restore %s", path), ErrWrite)
	}
	return backupPath, nil
}
