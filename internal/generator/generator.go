// Package generator runs one synthesis pass: locate the template, load the
// manifest, apply the version policy and write the unit files.
package generator

import (
	"log/slog"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/manifest"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/outdirs"
	"github.com/conn-castle/systemd-pixi-generator/internal/scope"
	"github.com/conn-castle/systemd-pixi-generator/internal/synth"
	"github.com/conn-castle/systemd-pixi-generator/internal/unitfile"
)

// Options configures a run. Directories must already be validated.
type Options struct {
	Dirs      outdirs.Directories
	Privilege scope.Privilege
	Cwd       string
	// TemplatePath and ManifestPath are the command-line overrides.
	TemplatePath string
	ManifestPath string
	Settings     config.Settings
	// Home resolves the default manifest location; nil uses go-homedir.
	Home manifest.HomeFunc
}

// Run performs a synthesis pass and returns the unit files written.
func Run(sys System, logger *slog.Logger, opts Options) ([]string, error) {
	logger.Info(messages.RunStarted, "privilege", opts.Privilege.String())

	tmpl, err := unitfile.Locate(sys, logger, unitfile.LocateOptions{
		Explicit:    opts.TemplatePath,
		EnvOverride: opts.Settings.TemplatePath,
		Privilege:   opts.Privilege,
		Cwd:         opts.Cwd,
	})
	if err != nil {
		return nil, err
	}

	m, _, err := manifest.Load(sys, logger, manifest.LoadOptions{
		Explicit:    opts.ManifestPath,
		EnvOverride: opts.Settings.ManifestPath,
		Home:        opts.Home,
	})
	if err != nil {
		return nil, err
	}
	manifest.CheckVersion(m, logger)

	written, err := synth.Synthesize(sys, logger, m, tmpl, opts.Dirs)
	if err != nil {
		return written, err
	}
	logger.Info(messages.RunDone, "units", len(written))
	return written, nil
}
