package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/logging"
	"github.com/conn-castle/systemd-pixi-generator/internal/manifest"
	"github.com/conn-castle/systemd-pixi-generator/internal/outdirs"
	"github.com/conn-castle/systemd-pixi-generator/internal/scope"
	"github.com/conn-castle/systemd-pixi-generator/internal/testutil"
	"github.com/conn-castle/systemd-pixi-generator/internal/unitfile"
)

type fixture struct {
	cwd  string
	home string
	dirs outdirs.Directories
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{cwd: t.TempDir(), home: t.TempDir()}
	out := t.TempDir()
	f.dirs = outdirs.Directories{
		Normal: filepath.Join(out, "generator"),
		Early:  filepath.Join(out, "generator.early"),
		Late:   filepath.Join(out, "generator.late"),
	}
	for _, entry := range f.dirs.Labeled() {
		require.NoError(t, os.Mkdir(entry[1], 0o755))
	}
	return f
}

func (f fixture) write(t *testing.T, path string, content string) {
	t.Helper()
	testutil.WriteFile(t, path, content)
}

func (f fixture) options() Options {
	return Options{
		Dirs:      f.dirs,
		Privilege: scope.PrivilegeSystem,
		Cwd:       f.cwd,
		Home:      func() (string, error) { return f.home, nil },
	}
}

func TestRunWritesUnitsFromDefaults(t *testing.T) {
	f := newFixture(t)
	f.write(t, filepath.Join(f.cwd, config.SystemTemplatePath), "system {{ .Name }} {{ .After }}\n")
	f.write(t, filepath.Join(f.cwd, config.UserTemplatePath), "user {{ .Name }}\n")
	f.write(t, config.DefaultManifestPath(f.home), `
version = 2
[envs.foo.service]
status = "enabled"
[envs.bar]
channels = ["conda-forge"]
`)

	written, err := Run(RealSystem{}, logging.Discard(), f.options())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(f.dirs.Normal, "foo.service")}, written)

	got, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "system foo unknown\n", string(got))
}

func TestRunHonorsOverrides(t *testing.T) {
	f := newFixture(t)
	flagTemplate := filepath.Join(t.TempDir(), "flag.tmpl")
	envManifest := filepath.Join(t.TempDir(), "env.toml")
	f.write(t, flagTemplate, "flag {{ .Description }}\n")
	f.write(t, envManifest, "version = 1\n[envs.envsrc.service]\nstatus = \"on\"\n")

	opts := f.options()
	opts.TemplatePath = flagTemplate
	opts.Settings = config.Settings{ManifestPath: envManifest}
	opts.Home = func() (string, error) { return "", errors.New("unused") }

	written, err := Run(RealSystem{}, logging.Discard(), opts)
	require.NoError(t, err)
	require.Len(t, written, 1)
	got, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "flag envsrc\n", string(got))
}

func TestRunTemplateMissing(t *testing.T) {
	f := newFixture(t)
	f.write(t, config.DefaultManifestPath(f.home), "[envs.foo.service]\nstatus = \"on\"\n")

	_, err := Run(RealSystem{}, logging.Discard(), f.options())
	require.ErrorIs(t, err, unitfile.ErrTemplateNotFound)
	entries, readErr := os.ReadDir(f.dirs.Normal)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunManifestMissing(t *testing.T) {
	f := newFixture(t)
	f.write(t, filepath.Join(f.cwd, config.SystemTemplatePath), "x")

	_, err := Run(RealSystem{}, logging.Discard(), f.options())
	require.ErrorIs(t, err, manifest.ErrManifestNotFound)
}

func TestRunManifestParseError(t *testing.T) {
	f := newFixture(t)
	f.write(t, filepath.Join(f.cwd, config.SystemTemplatePath), "x")
	f.write(t, config.DefaultManifestPath(f.home), "[envs.foo\n")

	_, err := Run(RealSystem{}, logging.Discard(), f.options())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manifest")
}
