// Package file provides loading, atomic storing and backup of the files being rewritten.
package file

import (
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Error taxonomy for the rewrite pipeline. Returned errors are marked with
// one of these, so errors.Is works against both the sentinel and the
// underlying fs error.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrDecode       = errors.New("file is not valid UTF-8")
	ErrWrite        = errors.New("write failed")
	ErrNoBackup     = errors.New("no backup found")
)

const defaultPerm os.FileMode = 0o644

// Load reads the whole file at path as UTF-8 text.
func Load(path string) (string, error) {
	data, err := readAll(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.Wrapf(ErrDecode, "%s: invalid byte at offset %d", path, invalidOffset(data))
	}
	return string(data), nil
}

// Store replaces the file at path with content. The write goes through a
// temp file in the same directory and a rename, and keeps the permissions
// of the file it replaces.
func Store(path string, content string) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := WriteAtomic(path, []byte(content), perm); err != nil {
		return errors.Mark(errors.Wrapf(err, "store %s", path), ErrWrite)
	}
	return nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Mark(errors.Wrapf(err, "load %s", path), ErrFileNotFound)
		}
		return nil, errors.Wrapf(err, "load %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
