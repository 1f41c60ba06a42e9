package manifest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/fallback"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

var (
	// ErrManifestNotFound is returned when no manifest source can be read.
	ErrManifestNotFound = errors.New(messages.ManifestNotFound)
	// ErrHomeDir is returned when the default location needs a home directory that cannot be determined.
	ErrHomeDir = errors.New(messages.ManifestHomeDirUnknown)
)

// HomeFunc returns the invoking user's home directory.
type HomeFunc func() (string, error)

// System is the filesystem access the loader needs.
type System interface {
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LoadOptions lists the manifest sources in priority order.
type LoadOptions struct {
	// Explicit is the --manifest flag value.
	Explicit string
	// EnvOverride is the PIXI_MANIFEST_PATH value.
	EnvOverride string
	// Home resolves the default location; nil uses go-homedir.
	Home HomeFunc
}

// Load reads and parses the first readable manifest: the explicit path, the
// environment override, then $HOME/.pixi/manifests/pixi-global.toml.
// Read failures fall through to the next source; a parse failure is final.
// It returns the manifest and the path it was read from.
func Load(sys System, logger *slog.Logger, opts LoadOptions) (*Manifest, string, error) {
	home := opts.Home
	if home == nil {
		home = homedir.Dir
	}

	var candidates []fallback.Candidate[source]
	for _, path := range []string{opts.Explicit, opts.EnvOverride} {
		if path == "" {
			continue
		}
		candidates = append(candidates, readCandidate(sys, path))
	}
	candidates = append(candidates, defaultCandidate(sys, home))

	res, err := fallback.First(candidates...)
	for _, attempt := range res.Failed {
		logger.Debug(messages.ManifestCandidateSkipped, "path", attempt.Name, "error", attempt.Err)
	}
	if err != nil {
		return nil, "", fmt.Errorf(messages.ManifestNotFoundFmt, ErrManifestNotFound, err)
	}
	logger.Info(messages.ManifestLocated, "path", res.Value.path)

	m, err := Parse(res.Value.data, res.Value.path)
	if err != nil {
		return nil, res.Value.path, err
	}
	return m, res.Value.path, nil
}

// source is manifest content and the path it came from.
type source struct {
	path string
	data []byte
}

func readSource(sys System, path string) (source, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return source{}, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	return source{path: path, data: data}, nil
}

func readCandidate(sys System, path string) fallback.Candidate[source] {
	return fallback.Candidate[source]{
		Name: path,
		Try: func() (source, error) {
			return readSource(sys, path)
		},
	}
}

// defaultCandidate resolves the home directory lazily so it is only required
// when every earlier source failed.
func defaultCandidate(sys System, home HomeFunc) fallback.Candidate[source] {
	return fallback.Candidate[source]{
		Name: config.DefaultManifestPath("$HOME"),
		Try: func() (source, error) {
			dir, err := home()
			if err != nil {
				return source{}, fmt.Errorf(messages.ManifestHomeDirFailedFmt, ErrHomeDir, err)
			}
			if dir == "" {
				return source{}, ErrHomeDir
			}
			return readSource(sys, config.DefaultManifestPath(dir))
		},
	}
}
