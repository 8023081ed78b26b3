package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at configFile on top of Defaults.
// A missing file is not an error: the defaults are returned unchanged.
// Keys absent from the file keep their default values.
func LoadConfig(configFile string) (Config, error) {
	cfg := Defaults()

	raw, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", configFile, err)
	}
	return cfg, nil
}

// Validate reports the first field that would make the setup flow unusable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Premake.Version) == "" {
		return errors.New("premake.version is required")
	}
	if strings.TrimSpace(c.Premake.LocalDir) == "" {
		return errors.New("premake.local_dir is required")
	}
	if strings.TrimSpace(c.Premake.ArchiveURL) == "" {
		return errors.New("premake.archive_url is required")
	}
	for i, s := range c.Sync {
		if strings.TrimSpace(s.Command) == "" {
			return fmt.Errorf("sync[%d] (%s): command is required", i, s.Name)
		}
	}
	return nil
}
