// Package install links the generator executable into the systemd generator directories.
//
// See https://www.freedesktop.org/software/systemd/man/latest/systemd.generator.html
// for the search paths. Installation is best-effort: each privilege class commits to
// the first candidate directory that accepts the link and failures are only logged.
package install

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/fallback"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// Class is a privilege class with its generator alias and candidate directories in priority order.
type Class struct {
	Name  string
	Alias string
	Dirs  []string
}

// DefaultClasses returns the system and user generator classes.
func DefaultClasses() []Class {
	return []Class{
		{
			Name:  config.SystemScope,
			Alias: config.SystemExecName,
			Dirs: []string{
				"/run/systemd/system-generators",
				"/etc/systemd/system-generators",
				"/usr/local/lib/systemd/system-generators",
				"/usr/lib/systemd/system-generators",
			},
		},
		{
			Name:  config.UserScope,
			Alias: config.UserExecName,
			Dirs: []string{
				"/run/systemd/user-generators",
				"/etc/systemd/user-generators",
				"/usr/local/lib/systemd/user-generators",
				"/usr/lib/systemd/user-generators",
			},
		},
	}
}

// Outcome is the installation result for one class.
type Outcome struct {
	Class string
	// Link is the created or pre-existing link; empty when every candidate failed.
	Link string
	// Existing is true when Link already pointed at the executable.
	Existing bool
	Failed   []fallback.Attempt
}

// Linked reports whether the class ended up with a link.
func (o Outcome) Linked() bool {
	return o.Link != ""
}

// Result holds one Outcome per class, in class order.
type Result struct {
	Outcomes []Outcome
}

// Install links selfPath into the default generator directories.
func Install(sys System, logger *slog.Logger, selfPath string) Result {
	return InstallClasses(sys, logger, selfPath, DefaultClasses())
}

// InstallClasses links selfPath as <dir>/<alias> for each class, stopping at the
// first candidate directory that succeeds. It never returns an error.
func InstallClasses(sys System, logger *slog.Logger, selfPath string, classes []Class) Result {
	logger.Info(messages.InstallStarted, "executable", selfPath)
	var res Result
	for _, class := range classes {
		res.Outcomes = append(res.Outcomes, installClass(sys, logger, selfPath, class))
	}
	return res
}

type link struct {
	path     string
	existing bool
}

func installClass(sys System, logger *slog.Logger, selfPath string, class Class) Outcome {
	candidates := make([]fallback.Candidate[link], 0, len(class.Dirs))
	for _, dir := range class.Dirs {
		dir := dir
		candidates = append(candidates, fallback.Candidate[link]{
			Name: dir,
			Try: func() (link, error) {
				logger.Debug(messages.InstallAttempt, "class", class.Name, "dir", dir)
				return linkInto(sys, selfPath, dir, class.Alias)
			},
		})
	}

	found, err := fallback.First(candidates...)
	out := Outcome{Class: class.Name, Failed: found.Failed}
	for _, attempt := range found.Failed {
		logger.Debug(messages.InstallAttemptFailed, "class", class.Name, "dir", attempt.Name, "error", attempt.Err)
	}
	if err != nil {
		logger.Warn(messages.InstallExhausted, "class", class.Name)
		return out
	}
	out.Link = found.Value.path
	out.Existing = found.Value.existing
	if out.Existing {
		logger.Info(messages.InstallAlreadyLinked, "class", class.Name, "link", out.Link)
	} else {
		logger.Info(messages.InstallLinked, "class", class.Name, "link", out.Link)
	}
	return out
}

// linkInto creates dir/alias -> selfPath. A link that already points at selfPath
// counts as success so repeated installs settle on the same directory.
func linkInto(sys System, selfPath string, dir string, alias string) (link, error) {
	target := filepath.Join(dir, alias)
	if dest, err := sys.Readlink(target); err == nil && dest == selfPath {
		return link{path: target, existing: true}, nil
	}
	if err := sys.Access(dir, unix.W_OK); err != nil {
		return link{}, fmt.Errorf(messages.InstallNotWritableFmt, dir, err)
	}
	if err := sys.Symlink(selfPath, target); err != nil {
		return link{}, fmt.Errorf(messages.InstallSymlinkFmt, target, selfPath, err)
	}
	return link{path: target}, nil
}
