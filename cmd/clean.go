package cmd

import (
	"github.com/spf13/cobra"
)

// newCleanCmd removes the install directory so the next setup starts fresh.
func newCleanCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the local Premake install directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(g, "")
			if err != nil {
				return err
			}
			return p.inst.Uninstall()
		},
	}
}
