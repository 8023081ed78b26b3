package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"premake-setup/internal/config"
	"premake-setup/internal/installer"
	"premake-setup/internal/logger"
)

// project bundles what every subcommand derives from the global flags.
type project struct {
	root   string
	cfg    config.Config
	layout installer.Layout
	inst   *installer.Installer
}

// loadProject resolves the root, loads the config and builds the installer.
// A non-empty target overrides the configured one.
func loadProject(g *globalOptions, target string) (*project, error) {
	root, err := filepath.Abs(g.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", g.root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	cfgPath := g.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.DefaultFile)
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if target != "" {
		cfg.Premake.Target = target
	}

	layout, err := installer.NewLayout(cfg.Premake)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Project root %s, premake %s for %s, target %s\n", root, layout.Version, layout.Platform.Name, layout.Target)

	inst := installer.New(root, layout,
		installer.WithChecksum(cfg.Premake.Checksum),
		installer.WithReleaseDigest(cfg.Premake.VerifyReleaseDigest),
	)
	return &project{root: root, cfg: cfg, layout: layout, inst: inst}, nil
}
