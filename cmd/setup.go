package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"premake-setup/internal/logger"
	"premake-setup/internal/prompt"
	"premake-setup/internal/setup"
)

// setupOptions holds the flags of the setup flow, registered on both the
// root command and the setup subcommand.
type setupOptions struct {
	yes       bool
	target    string
	keepGoing bool
}

func addSetupFlags(cmd *cobra.Command, so *setupOptions) {
	f := cmd.Flags()
	f.BoolVarP(&so.yes, "yes", "y", false, "Install Premake without asking when it is missing")
	f.StringVar(&so.target, "target", "", "Premake action to generate (default per platform, vs2022 on Windows)")
	f.BoolVar(&so.keepGoing, "continue", false, "Continue with sync and generation right after installing Premake")
}

func newSetupCmd(g *globalOptions) *cobra.Command {
	so := &setupOptions{}
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Check Premake, sync LFS and submodules, generate project files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), g, so)
		},
	}
	addSetupFlags(setupCmd, so)
	return setupCmd
}

func runSetup(ctx context.Context, g *globalOptions, so *setupOptions) error {
	p, err := loadProject(g, so.target)
	if err != nil {
		return err
	}

	opts := setup.OptionsFromConfig(p.cfg, p.root, p.layout.Target)
	if so.keepGoing {
		opts.ContinueAfterInstall = true
	}

	res, err := setup.New(opts, p.inst, setup.NewExecRunner(), prompt.Default(so.yes)).Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Setup finished: %s, %d commands run\n", res.Status, len(res.Steps))
	return nil
}
