package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/systemd-pixi-generator/internal/install"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/scope"
)

// Seams for tests.
var (
	installSystem  install.System = install.RealSystem{}
	installClasses                = install.DefaultClasses
	executable                    = os.Executable
)

// runInstall links the running executable into the generator directories and
// prints one line per privilege class. Exhausted classes are not an error.
func runInstall(out io.Writer, logger *slog.Logger, detected scope.Result) error {
	selfPath, err := selfPath(detected)
	if err != nil {
		return fmt.Errorf(messages.InstallSelfPathFailed, err)
	}
	res := install.InstallClasses(installSystem, logger, selfPath, installClasses())
	printInstallSummary(out, res)
	return nil
}

// selfPath prefers the canonical argv0 and falls back to the running executable.
func selfPath(detected scope.Result) (string, error) {
	if detected.ResolvedPath != "" {
		return detected.ResolvedPath, nil
	}
	exe, err := executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func printInstallSummary(out io.Writer, res install.Result) {
	linked := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	for _, o := range res.Outcomes {
		switch {
		case o.Existing:
			_, _ = linked.Fprintf(out, messages.InstallSummaryExistingFmt, o.Class, o.Link)
		case o.Linked():
			_, _ = linked.Fprintf(out, messages.InstallSummaryLinkedFmt, o.Class, o.Link)
		default:
			_, _ = warn.Fprintf(out, messages.InstallSummaryExhaustedFmt, o.Class)
		}
	}
}
