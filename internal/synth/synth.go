// Package synth renders one unit file per manifest environment that declares a service.
package synth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/systemd-pixi-generator/internal/manifest"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/outdirs"
	"github.com/conn-castle/systemd-pixi-generator/internal/unitfile"
)

// Values rendered in place of the service fields. The manifest values are parsed
// and logged but not yet mapped into the unit.
const (
	AfterPlaceholder        = "unknown"
	ExecStartPrePlaceholder = "missing"
	ExecStartPlaceholder    = "missing"
)

const (
	unitSuffix = ".service"
	unitMode   = 0o644
	dirMode    = 0o755
)

// ErrInvalidName is returned for environment names that cannot be used as a unit file name.
var ErrInvalidName = errors.New("environment name cannot be used as a unit name")

// UnitPath returns the unit file path for an environment inside dir.
func UnitPath(dir string, env string) string {
	return filepath.Join(dir, env+unitSuffix)
}

// Data builds the template record for an environment.
func Data(env string) unitfile.TemplateData {
	return unitfile.TemplateData{
		Name:         env,
		Description:  env,
		After:        AfterPlaceholder,
		ExecStartPre: ExecStartPrePlaceholder,
		ExecStart:    ExecStartPlaceholder,
	}
}

// Synthesize writes <normal>/<env>.service for every environment with a service and
// returns the written paths. The first render or write failure aborts the run.
func Synthesize(sys System, logger *slog.Logger, m *manifest.Manifest, tmpl unitfile.Template, dirs outdirs.Directories) ([]string, error) {
	if err := ensureParents(sys, dirs); err != nil {
		return nil, err
	}
	renderer, err := unitfile.Compile(tmpl)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range m.Names() {
		env := m.Envs[name]
		logger.Debug(messages.SynthEnvironment, environmentAttrs(name, env)...)
		if env.Service == nil {
			logger.Debug(messages.SynthSkipped, "env", name)
			continue
		}
		if err := validName(name); err != nil {
			return written, err
		}
		body, err := renderer.Render(Data(name))
		if err != nil {
			return written, err
		}
		path := UnitPath(dirs.Normal, name)
		if err := writeUnit(sys, logger, path, body); err != nil {
			return written, err
		}
		logger.Info(messages.SynthWrote, "path", path)
		written = append(written, path)
	}
	return written, nil
}

// ensureParents creates the parent of each output directory.
func ensureParents(sys System, dirs outdirs.Directories) error {
	for _, entry := range dirs.Labeled() {
		parent := filepath.Dir(entry[1])
		if err := sys.MkdirAll(parent, dirMode); err != nil {
			return fmt.Errorf(messages.SynthCreateParentFailedFmt, entry[1], err)
		}
	}
	return nil
}

func writeUnit(sys System, logger *slog.Logger, path string, body string) error {
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logChange(sys, logger, path, body)
	}
	if err := sys.WriteFileAtomic(path, []byte(body), unitMode); err != nil {
		return fmt.Errorf(messages.SynthWriteFailedFmt, path, err)
	}
	return nil
}

// logChange reports how a rewrite differs from the unit left by the previous run.
func logChange(sys System, logger *slog.Logger, path string, body string) {
	previous, err := sys.ReadFile(path)
	if err != nil {
		return
	}
	if string(previous) == body {
		logger.Debug(messages.SynthUnchanged, "path", path)
		return
	}
	diff := udiff.Unified(path, path, string(previous), body)
	logger.Debug(messages.SynthChanged, "path", path, "diff", diff)
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func environmentAttrs(name string, env manifest.EnvConfig) []any {
	attrs := []any{
		"env", name,
		"channels", env.Channels,
		"dependencies", env.Dependencies,
		"exposed", env.Exposed,
	}
	if s := env.Service; s != nil {
		attrs = append(attrs,
			"service.status", s.Status,
			"service.after", deref(s.After),
			"service.exec_start_pre", deref(s.ExecStartPre),
			"service.exec_start", deref(s.ExecStart),
		)
	}
	return attrs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
