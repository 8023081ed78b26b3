package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"premake-setup/internal/logger"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug      bool
	configPath string
	root       string
	logFile    string
}

// logCloser detaches the --log-file mirror once the command finishes.
var logCloser io.Closer

const rootLongDescription = `premake-setup prepares a checkout for building:
it makes sure the Premake generator is installed under vendor/premake/bin
(offering to download it when missing), pulls Git LFS objects, updates
submodules and generates IDE project files.

Running premake-setup without a subcommand is the same as "premake-setup setup".`

// newRootCmd builds the command tree. Each call returns independent flag
// state, so tests can execute commands side by side.
func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	so := &setupOptions{}

	rootCmd := &cobra.Command{
		Use:           "premake-setup",
		Short:         "Bootstrap a Premake project checkout",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,

		// Initialize logging before any subcommand runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(g.debug)
			if g.logFile != "" && logCloser == nil {
				logCloser = logger.SetLogFile(g.logFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), g, so)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&g.debug, "debug", false, "Enable debug logging")
	pf.StringVarP(&g.configPath, "config", "c", "", "Path to configuration file (default <root>/premake-setup.yaml)")
	pf.StringVar(&g.root, "root", ".", "Project root directory")
	pf.StringVar(&g.logFile, "log-file", "", "Also write log messages to this file (rotated)")
	addSetupFlags(rootCmd, so)

	rootCmd.AddCommand(
		newSetupCmd(g),
		newCheckCmd(g),
		newInstallCmd(g),
		newCleanCmd(g),
	)
	return rootCmd
}

// Execute runs the CLI. It is the only place the process exits with an error status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("[ERROR] %v\n", err)
	}
	closeLogFile()
	if err != nil {
		os.Exit(1)
	}
}

func closeLogFile() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		logger.Warn("[WARN] Failed to close log file: %v\n", err)
	}
	logCloser = nil
}
