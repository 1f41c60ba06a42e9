// Package scope classifies a generator invocation as system, user or unspecified.
//
// systemd runs the generator through one of two symlink aliases and exports
// SYSTEMD_SCOPE. The alias names the privilege class; the variable must agree.
package scope

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// Privilege is the privilege class of the invocation.
type Privilege int

const (
	// PrivilegeUnspec is used when the class cannot be determined.
	PrivilegeUnspec Privilege = iota
	PrivilegeSystem
	PrivilegeUser
)

// String returns the lower-case class name.
func (p Privilege) String() string {
	switch p {
	case PrivilegeSystem:
		return "system"
	case PrivilegeUser:
		return "user"
	default:
		return "unspec"
	}
}

// Result is the outcome of Detect.
type Result struct {
	Privilege Privilege
	// Alias is the base name the executable was invoked as.
	Alias string
	// ResolvedPath is argv0 with symlinks resolved; empty when resolution failed.
	ResolvedPath string
	// ResolvedName is the base name of ResolvedPath.
	ResolvedName string
}

type class struct {
	privilege Privilege
	alias     string
	scope     string
}

var classes = []class{
	{privilege: PrivilegeSystem, alias: config.SystemExecName, scope: config.SystemScope},
	{privilege: PrivilegeUser, alias: config.UserExecName, scope: config.UserScope},
}

// Detect classifies the invocation from argv0 and the captured SYSTEMD_SCOPE value.
// It never fails: unresolvable paths, an unset variable or a mismatch yield PrivilegeUnspec.
func Detect(sys System, logger *slog.Logger, argv0 string, settings config.Settings) Result {
	res := Result{Privilege: PrivilegeUnspec, Alias: aliasOf(argv0)}

	resolved, err := canonicalize(sys, argv0)
	if err != nil {
		logger.Warn(messages.ScopeResolveFailed, "argv0", argv0, "error", err)
		return res
	}
	res.ResolvedPath = resolved
	res.ResolvedName = filepath.Base(resolved)
	logger.Info(messages.ScopeInvokedAs, "alias", res.Alias, "binary", res.ResolvedName)

	if !settings.ScopeSet {
		logger.Warn(messages.ScopeNotSet)
		return res
	}
	c, ok := classFor(res.Alias, res.ResolvedName)
	if !ok || !c.matches(settings.Scope) {
		logger.Warn(messages.ScopeMismatch, "scope", settings.Scope, "alias", res.Alias)
		return res
	}
	res.Privilege = c.privilege
	logger.Info(messages.ScopeResolved, "privilege", res.Privilege.String())
	return res
}

// matches accepts the value systemd exports as well as the alias itself.
func (c class) matches(scope string) bool {
	scope = strings.TrimSpace(scope)
	return scope == c.scope || scope == c.alias
}

// classFor prefers the invoked alias and falls back to the resolved binary name.
func classFor(names ...string) (class, bool) {
	for _, name := range names {
		for _, c := range classes {
			if name == c.alias {
				return c, true
			}
		}
	}
	return class{}, false
}

func aliasOf(argv0 string) string {
	if strings.TrimSpace(argv0) == "" {
		return "unknown"
	}
	base := filepath.Base(argv0)
	if base == "." || base == string(filepath.Separator) {
		return "unknown"
	}
	return base
}

// canonicalize resolves argv0 to an absolute, symlink-free path. A bare command
// name is looked up on PATH first, the way a shell would have found it.
func canonicalize(sys System, argv0 string) (string, error) {
	path := argv0
	if !strings.ContainsRune(argv0, filepath.Separator) {
		found, err := sys.LookPath(argv0)
		if err != nil {
			return "", err
		}
		path = found
	}
	abs, err := sys.Abs(path)
	if err != nil {
		return "", err
	}
	return sys.EvalSymlinks(abs)
}
