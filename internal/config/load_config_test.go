package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "5.0.0-beta2", cfg.Premake.Version)
	assert.Equal(t, "vendor/premake/bin", cfg.Premake.LocalDir)
	assert.True(t, cfg.GenerateFatal)
	assert.False(t, cfg.ContinueAfterInstall)
	require.Len(t, cfg.Sync, 2)
	assert.Equal(t, []string{"lfs", "pull"}, cfg.Sync[0].Args)
	assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, cfg.Sync[1].Args)
	assert.False(t, cfg.Sync[0].Fatal)
	assert.False(t, cfg.Sync[1].Fatal)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_OverridesKeepOtherDefaults(t *testing.T) {
	path := writeConfig(t, `
premake:
  version: 5.0.0-beta3
  target: vs2019
  checksum: abc123
prerequisites: [git]
continue_after_install: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "5.0.0-beta3", cfg.Premake.Version)
	assert.Equal(t, "vs2019", cfg.Premake.Target)
	assert.Equal(t, "abc123", cfg.Premake.Checksum)
	assert.Equal(t, []string{"git"}, cfg.Prerequisites)
	assert.True(t, cfg.ContinueAfterInstall)

	// Untouched keys keep their defaults.
	assert.Equal(t, "vendor/premake/bin", cfg.Premake.LocalDir)
	assert.True(t, cfg.Premake.VerifyReleaseDigest)
	assert.Len(t, cfg.Sync, 2)
	assert.True(t, cfg.GenerateFatal)
}

func TestLoadConfig_SyncStepsReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
sync:
  - name: lfs
    command: git
    args: [lfs, pull]
    fatal: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sync, 1)
	assert.Equal(t, Step{Name: "lfs", Command: "git", Args: []string{"lfs", "pull"}, Fatal: true}, cfg.Sync[0])
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed yaml", "premake: [unclosed", "failed to unmarshal"},
		{"empty version", "premake:\n  version: \"\"\n", "premake.version is required"},
		{"empty local dir", "premake:\n  local_dir: \" \"\n", "premake.local_dir is required"},
		{"step without command", "sync:\n  - name: broken\n", "sync[0] (broken): command is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
