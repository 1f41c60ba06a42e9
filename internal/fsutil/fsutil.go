// Package fsutil provides filesystem helpers shared by the generator packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place, so readers never observe a partial file.
// The result always has mode perm, whatever mode a replaced file had, and nothing
// outside filename's directory is touched.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err := writeFile(filename, data, perm); err != nil {
		return fmt.Errorf(messages.FsutilWriteFileFmt, filename, err)
	}
	return nil
}

// writeFile avoids renameio.WriteFile, which copies the mode of an existing
// target and probes os.TempDir.
func writeFile(filename string, data []byte, perm os.FileMode) error {
	pending, err := renameio.NewPendingFile(filename,
		renameio.WithTempDir(filepath.Dir(filename)),
		renameio.WithStaticPermissions(perm),
	)
	if err != nil {
		return err
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
