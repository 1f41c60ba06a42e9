package config

import "strings"

// Environment variables read once at startup.
const (
	EnvScope        = "SYSTEMD_SCOPE"
	EnvManifestPath = "PIXI_MANIFEST_PATH"
	EnvTemplatePath = "PIXI_SYSTEMD_UNIT_PATH"
	EnvLogLevel     = "PIXI_GENERATOR_LOG"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Settings is the process environment relevant to the generator.
// It is captured once so components never read the environment themselves.
type Settings struct {
	Scope        string
	ScopeSet     bool
	ManifestPath string
	TemplatePath string
	LogLevel     string
}

// FromEnv captures Settings through lookup. Blank path overrides are treated as unset.
func FromEnv(lookup LookupFunc) Settings {
	if lookup == nil {
		return Settings{}
	}
	var s Settings
	s.Scope, s.ScopeSet = lookup(EnvScope)
	s.ManifestPath = trimmed(lookup, EnvManifestPath)
	s.TemplatePath = trimmed(lookup, EnvTemplatePath)
	s.LogLevel = strings.ToLower(trimmed(lookup, EnvLogLevel))
	return s
}

func trimmed(lookup LookupFunc, key string) string {
	value, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
