package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/logging"
)

func writeManifest(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func homeAt(dir string) HomeFunc {
	return func() (string, error) { return dir, nil }
}

func TestLoadExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.toml")
	writeManifest(t, path, "version = 1\n[envs.a.service]\nstatus = \"on\"\n")

	m, src, err := Load(RealSystem{}, logging.Discard(), LoadOptions{
		Explicit: path,
		Home:     func() (string, error) { return "", errors.New("home must not be consulted") },
	})
	require.NoError(t, err)
	assert.Equal(t, path, src)
	assert.Equal(t, []string{"a"}, m.Names())
}

func TestLoadFallsThroughUnreadableSources(t *testing.T) {
	home := t.TempDir()
	writeManifest(t, config.DefaultManifestPath(home), "version = 1\n[envs.home]\n")
	missing := filepath.Join(t.TempDir(), "missing.toml")

	m, src, err := Load(RealSystem{}, logging.Discard(), LoadOptions{
		Explicit:    missing,
		EnvOverride: filepath.Join(t.TempDir(), "also-missing.toml"),
		Home:        homeAt(home),
	})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultManifestPath(home), src)
	assert.Equal(t, []string{"home"}, m.Names())
}

func TestLoadEnvOverrideBeforeDefault(t *testing.T) {
	home := t.TempDir()
	writeManifest(t, config.DefaultManifestPath(home), "[envs.home]\n")
	override := filepath.Join(t.TempDir(), "override.toml")
	writeManifest(t, override, "[envs.override]\n")

	m, src, err := Load(RealSystem{}, logging.Discard(), LoadOptions{EnvOverride: override, Home: homeAt(home)})
	require.NoError(t, err)
	assert.Equal(t, override, src)
	assert.Equal(t, []string{"override"}, m.Names())
}

func TestLoadHomeUnknownIsFatal(t *testing.T) {
	_, _, err := Load(RealSystem{}, logging.Discard(), LoadOptions{
		Home: func() (string, error) { return "", errors.New("no passwd entry") },
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestNotFound)
	assert.ErrorIs(t, err, ErrHomeDir)
	assert.Contains(t, err.Error(), "no passwd entry")
}

func TestLoadEmptyHomeIsFatal(t *testing.T) {
	_, _, err := Load(RealSystem{}, logging.Discard(), LoadOptions{Home: homeAt("")})
	assert.ErrorIs(t, err, ErrHomeDir)
}

func TestLoadParseErrorDoesNotFallThrough(t *testing.T) {
	home := t.TempDir()
	writeManifest(t, config.DefaultManifestPath(home), "version = 1\n")
	explicit := filepath.Join(t.TempDir(), "broken.toml")
	writeManifest(t, explicit, "version = = 1")

	_, src, err := Load(RealSystem{}, logging.Discard(), LoadOptions{Explicit: explicit, Home: homeAt(home)})
	require.Error(t, err)
	assert.Equal(t, explicit, src)
	assert.NotErrorIs(t, err, ErrManifestNotFound)
	assert.Contains(t, err.Error(), "invalid manifest "+explicit)
}

func TestLoadDefaultMissing(t *testing.T) {
	home := t.TempDir()
	_, _, err := Load(RealSystem{}, logging.Discard(), LoadOptions{Home: homeAt(home)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), config.DefaultManifestPath(home))
}

func TestLoadUsesHomedirByDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	writeManifest(t, config.DefaultManifestPath(home), "[envs.fromhome]\n")

	m, _, err := Load(RealSystem{}, logging.Discard(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fromhome"}, m.Names())
}
