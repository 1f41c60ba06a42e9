package config

import "path/filepath"

const (
	// SystemExecName is the alias systemd invokes for system-wide generation.
	SystemExecName = "systemd-pixi-system-generator"
	// UserExecName is the alias systemd invokes for per-user generation.
	UserExecName = "systemd-pixi-user-generator"

	// SystemScope and UserScope are the values systemd exports in SYSTEMD_SCOPE.
	SystemScope = "system"
	UserScope   = "user"

	// SystemTemplatePath is the cwd-relative default template for system units.
	SystemTemplatePath = "resources/system.unit.service.tmpl"
	// UserTemplatePath is the cwd-relative default template for user and unspecified units.
	UserTemplatePath = "resources/user.unit.service.tmpl"

	manifestDir  = ".pixi/manifests"
	manifestFile = "pixi-global.toml"
)

// DefaultManifestPath returns the pixi global manifest location under home.
func DefaultManifestPath(home string) string {
	return filepath.Join(home, manifestDir, manifestFile)
}
