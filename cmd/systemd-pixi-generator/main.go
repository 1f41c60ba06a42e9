package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/outdirs"
)

var executeFunc = execute
var getwd = os.Getwd
var lookupEnv = os.LookupEnv

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const (
	// exitMissingDir is the documented status for a missing output directory.
	exitMissingDir = 1
	exitFailure    = 1
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
// args[0] is the executable path as invoked; it drives scope detection.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	argv0 := ""
	if len(args) > 0 {
		argv0 = args[0]
	}
	cmd := newRootCmd(argv0)
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with a non-zero status on failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	_, _ = color.New(color.FgRed).Fprintln(stderr, err)
	exit(exitCode(err))
}

func exitCode(err error) int {
	var missing *outdirs.MissingError
	if errors.As(err, &missing) {
		return exitMissingDir
	}
	return exitFailure
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
