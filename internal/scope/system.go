package scope

import (
	"os/exec"
	"path/filepath"
)

// System abstracts the path lookups used to canonicalize argv0.
type System interface {
	LookPath(file string) (string, error)
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches for an executable named file in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Abs returns an absolute representation of path.
func (RealSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// EvalSymlinks returns path after evaluating any symbolic links.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
