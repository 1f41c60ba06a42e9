package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/conn-castle/systemd-pixi-generator/internal/config"
	"github.com/conn-castle/systemd-pixi-generator/internal/generator"
	"github.com/conn-castle/systemd-pixi-generator/internal/logging"
	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
	"github.com/conn-castle/systemd-pixi-generator/internal/outdirs"
	"github.com/conn-castle/systemd-pixi-generator/internal/scope"
)

// Seams for tests.
var (
	scopeSystem     scope.System     = scope.RealSystem{}
	outdirsSystem   outdirs.System   = outdirs.RealSystem{}
	generatorSystem generator.System = generator.RealSystem{}
)

type rootOptions struct {
	argv0        string
	verbose      bool
	mode         Mode
	manifestPath string
	templatePath string
}

func newRootCmd(argv0 string) *cobra.Command {
	opts := &rootOptions{argv0: argv0, mode: ModeRun}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.MaximumNArgs(outdirs.Count),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.FlagVerboseUsage)
	flags.Var(&opts.mode, "mode", messages.FlagModeUsage)
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "", messages.FlagManifestUsage)
	flags.StringVarP(&opts.templatePath, "template", "t", "", messages.FlagTemplateUsage)
	return cmd
}

// runRoot detects the scope, validates the output directories and dispatches on mode.
// Directory validation happens before anything is written in either mode.
func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	settings := config.FromEnv(lookupEnv)
	logger := newLogger(cmd, opts.verbose, settings.LogLevel)

	detected := scope.Detect(scopeSystem, logger, opts.argv0, settings)

	cwd, err := getwd()
	if err != nil {
		return err
	}
	dirs := outdirs.Resolve(args, cwd)
	if err := outdirs.Validate(outdirsSystem, dirs); err != nil {
		logger.Error(err.Error())
		return err
	}
	logger.Info(messages.DirsResolved, "normal", dirs.Normal, "early", dirs.Early, "late", dirs.Late)

	if opts.mode == ModeInit {
		return runInstall(cmd.OutOrStdout(), logger, detected)
	}
	_, err = generator.Run(generatorSystem, logger, generator.Options{
		Dirs:         dirs,
		Privilege:    detected.Privilege,
		Cwd:          cwd,
		TemplatePath: opts.templatePath,
		ManifestPath: opts.manifestPath,
		Settings:     settings,
	})
	return err
}

func newLogger(cmd *cobra.Command, verbose bool, override string) *slog.Logger {
	level, invalid := logging.Level(verbose, override)
	logger := logging.New(cmd.ErrOrStderr(), level)
	if invalid {
		logger.Warn(fmt.Sprintf(messages.LogLevelInvalidFmt, config.EnvLogLevel, override))
	}
	return logger
}
