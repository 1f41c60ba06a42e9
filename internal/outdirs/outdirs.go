// Package outdirs resolves and validates the three generator output directories.
package outdirs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// Count is the number of output directories systemd passes to a generator.
const Count = 3

// Directories holds the normal, early and late output directories.
type Directories struct {
	Normal string
	Early  string
	Late   string
}

// Labeled returns the directories paired with their labels, in argument order.
func (d Directories) Labeled() [Count][2]string {
	return [Count][2]string{
		{"normal_dir", d.Normal},
		{"early_dir", d.Early},
		{"late_dir", d.Late},
	}
}

// Resolve pads args with cwd until there are exactly three entries.
// Supplied arguments keep their order; extra arguments are ignored.
func Resolve(args []string, cwd string) Directories {
	paths := make([]string, 0, Count)
	for _, arg := range args {
		if len(paths) == Count {
			break
		}
		paths = append(paths, arg)
	}
	for len(paths) < Count {
		paths = append(paths, cwd)
	}
	return Directories{Normal: paths[0], Early: paths[1], Late: paths[2]}
}

// MissingError reports an output directory that does not exist or is not a directory.
type MissingError struct {
	Label string
	Path  string
	Err   error
}

func (e *MissingError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf(messages.DirsMissingFmt, e.Path, e.Label)
	}
	return fmt.Sprintf(messages.DirsNotDirFmt, e.Path, e.Label)
}

func (e *MissingError) Unwrap() error {
	return e.Err
}

// errNotDir marks an existing path that is not a directory.
var errNotDir = errors.New("not a directory")

// System is the filesystem access Validate needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Validate checks that each directory exists and is a directory.
// It returns a *MissingError for the first offending path and never creates anything.
func Validate(sys System, dirs Directories) error {
	for _, entry := range dirs.Labeled() {
		label, path := entry[0], entry[1]
		info, err := sys.Stat(path)
		if err != nil {
			return &MissingError{Label: label, Path: path, Err: err}
		}
		if !info.IsDir() {
			return &MissingError{Label: label, Path: path, Err: errNotDir}
		}
	}
	return nil
}
