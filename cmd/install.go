package cmd

import (
	"github.com/spf13/cobra"

	"premake-setup/internal/logger"
)

func newInstallCmd(g *globalOptions) *cobra.Command {
	var force bool
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Download and install Premake without prompting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(g, "")
			if err != nil {
				return err
			}
			if p.inst.Present() && !force {
				logger.Info("[INFO] Premake already installed at %s. Use --force to reinstall.\n", p.layout.ExePath)
				return nil
			}
			return p.inst.Install(cmd.Context())
		},
	}
	installCmd.Flags().BoolVar(&force, "force", false, "Reinstall even when Premake is already present")
	return installCmd
}
