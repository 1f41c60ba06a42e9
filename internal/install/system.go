package install

import (
	"os"

	"golang.org/x/sys/unix"
)

// System abstracts the filesystem operations needed by the installer.
type System interface {
	Access(path string, mode uint32) error
	Readlink(name string) (string, error)
	Symlink(oldname string, newname string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Access checks the calling process's permission to path (access(2)).
func (RealSystem) Access(path string, mode uint32) error {
	return unix.Access(path, mode)
}

// Readlink returns the destination of a symbolic link.
func (RealSystem) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Symlink creates newname as a symbolic link to oldname.
func (RealSystem) Symlink(oldname string, newname string) error {
	return os.Symlink(oldname, newname)
}
