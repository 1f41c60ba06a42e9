// Package manifest loads the pixi global manifest that declares environments and their services.
package manifest

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// SupportedVersion is the manifest schema version this generator understands.
const SupportedVersion = 1

// Manifest is the top level of pixi-global.toml.
type Manifest struct {
	// Version is kept untyped so absent or non-integer values can be tolerated.
	Version any                  `toml:"version"`
	Envs    map[string]EnvConfig `toml:"envs"`
}

// EnvConfig describes one named environment.
type EnvConfig struct {
	Channels     []string          `toml:"channels"`
	Dependencies map[string]string `toml:"dependencies"`
	Exposed      map[string]string `toml:"exposed"`
	Service      *Service          `toml:"service"`
}

// Service marks an environment as producing a unit file.
type Service struct {
	Status       string  `toml:"status"`
	After        *string `toml:"after"`
	ExecStartPre *string `toml:"exec-start-pre"`
	ExecStart    *string `toml:"exec-start"`
}

// Parse decodes manifest TOML. source names the data in error messages.
// Syntax and type errors are returned as-is; nothing is partially recovered.
func Parse(data []byte, source string) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(messages.ManifestInvalidFmt, source, err)
	}
	return &m, nil
}

// Names returns the environment names in sorted order.
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Envs))
	for name := range m.Envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VersionStatus classifies the manifest version field.
type VersionStatus int

const (
	// VersionSupported means version = 1.
	VersionSupported VersionStatus = iota
	// VersionAssumed means the field was absent or not an integer; 1 is assumed.
	VersionAssumed
	// VersionUnsupported means an integer other than 1. Processing continues.
	VersionUnsupported
)

// CheckVersion logs the version policy outcome and returns the effective version.
// None of the outcomes stop processing.
func CheckVersion(m *Manifest, logger *slog.Logger) (int64, VersionStatus) {
	var raw any
	if m != nil {
		raw = m.Version
	}
	switch v := raw.(type) {
	case nil:
		logger.Warn(fmt.Sprintf(messages.ManifestVersionMissingFmt, SupportedVersion))
		return SupportedVersion, VersionAssumed
	case int64:
		if v == SupportedVersion {
			logger.Info(fmt.Sprintf(messages.ManifestVersionSupportedFmt, v))
			return v, VersionSupported
		}
		logger.Error(messages.ManifestVersionUnsupported, "version", v)
		return v, VersionUnsupported
	default:
		logger.Warn(fmt.Sprintf(messages.ManifestVersionNotIntegerFmt, v, SupportedVersion))
		return SupportedVersion, VersionAssumed
	}
}
