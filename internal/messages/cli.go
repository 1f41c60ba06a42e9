package messages

// CLI messages for the generator command line.
const (
	// RootUse is the CLI command name.
	RootUse = "systemd-pixi-generator [normal-dir [early-dir [late-dir]]]"
	// RootShort is the short description for the root command.
	RootShort = "A systemd generator for pixi global environments"
	RootLong  = `Generate systemd unit files for pixi global environments that declare a service.

systemd invokes generators with three output directories (normal, early, late).
Missing directories default to the current working directory.
Run with --mode init to link this executable into the generator search directories.`
	RootVersionFlag = "Print version and exit"

	FlagVerboseUsage  = "enable debug logging"
	FlagModeUsage     = "mode of operation: run or init"
	FlagManifestUsage = "path to the pixi global manifest"
	FlagTemplateUsage = "path to the unit file template"

	ModeInvalidFmt = "invalid mode %q (allowed: %s)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallSummaryLinkedFmt reports the link created for a privilege class.
	InstallSummaryLinkedFmt    = "%s generator linked: %s\n"
	InstallSummaryExistingFmt  = "%s generator already linked: %s\n"
	InstallSummaryExhaustedFmt = "%s generator not linked: no writable generator directory\n"
)
