// Package unitfile locates and renders the unit-file template.
package unitfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/fallback"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/scope"
)

// ErrTemplateNotFound is returned when no template candidate resolves.
var ErrTemplateNotFound = errors.New(messages.TemplateNotFound)

// Template is template source text together with where it was read from.
type Template struct {
	Path string
	Text string
}

// System is the filesystem access the locator needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LocateOptions lists the template sources in priority order.
type LocateOptions struct {
	// Explicit is the --template flag value.
	Explicit string
	// EnvOverride is the PIXI_SYSTEMD_UNIT_PATH value.
	EnvOverride string
	Privilege   scope.Privilege
	Cwd         string
}

// DefaultPath returns the privilege-specific template path under cwd.
// User and unspecified invocations share a default.
func DefaultPath(p scope.Privilege, cwd string) string {
	if p == scope.PrivilegeSystem {
		return filepath.Join(cwd, config.SystemTemplatePath)
	}
	return filepath.Join(cwd, config.UserTemplatePath)
}

// Locate reads the first template that resolves: the explicit path, the
// environment override, then the privilege default. Each source must be a regular file.
func Locate(sys System, logger *slog.Logger, opts LocateOptions) (Template, error) {
	var candidates []fallback.Candidate[Template]
	for _, path := range []string{opts.Explicit, opts.EnvOverride} {
		if path == "" {
			continue
		}
		candidates = append(candidates, candidate(sys, path))
	}
	candidates = append(candidates, candidate(sys, DefaultPath(opts.Privilege, opts.Cwd)))

	res, err := fallback.First(candidates...)
	for _, attempt := range res.Failed {
		logger.Debug(messages.TemplateCandidateSkipped, "path", attempt.Name, "error", attempt.Err)
	}
	if err != nil {
		return Template{}, fmt.Errorf(messages.TemplateNotFoundFmt, ErrTemplateNotFound, err)
	}
	logger.Debug(messages.TemplateLocated, "path", res.Name)
	return res.Value, nil
}

func candidate(sys System, path string) fallback.Candidate[Template] {
	return fallback.Candidate[Template]{
		Name: path,
		Try: func() (Template, error) {
			return readRegular(sys, path)
		},
	}
}

func readRegular(sys System, path string) (Template, error) {
	info, err := sys.Stat(path)
	if err != nil {
		return Template{}, err
	}
	if !info.Mode().IsRegular() {
		return Template{}, fmt.Errorf(messages.TemplateNotRegularFmt, path)
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf(messages.TemplateReadFailedFmt, path, err)
	}
	return Template{Path: path, Text: string(data)}, nil
}
