//go:build windows

package file

import (
	"golang.org/x/sys/windows"
)

// osReplace moves tmpPath over dest with MOVEFILE_WRITE_THROUGH, so the call
// returns only once the move is flushed to disk. os.Rename does not ask for
// that.
func osReplace(tmpPath, dest string) error {
	from, err := windows.UTF16PtrFromString(tmpPath)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(dest)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(from, to, windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}

// Directory handles cannot be fsynced on Windows; WRITE_THROUGH covers the rename.
func syncDir(string) error { return nil }
