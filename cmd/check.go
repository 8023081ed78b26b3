package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"premake-setup/internal/installer"
	"premake-setup/internal/logger"
)

// newCheckCmd reports whether Premake is installed; it fails when it is not.
func newCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether Premake is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(g, "")
			if err != nil {
				return err
			}

			if !p.inst.Present() {
				logger.Alert("You don't have Premake installed!")
				return fmt.Errorf("%w: expected %s", installer.ErrNotInstalled, p.layout.ExePath)
			}

			logger.Success("Premake located at %s", p.layout.LocalDir)
			if v := p.inst.InstalledVersion(); v != "" {
				logger.Info("[INFO] Installed version %s (configured %s)\n", v, p.layout.Version)
			} else {
				logger.Info("[INFO] Installed version unknown; it was not installed by premake-setup\n")
			}
			return nil
		},
	}
}
