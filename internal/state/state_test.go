package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadState_MissingFile(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), FileName))
	require.NotNil(t, st.Tools)
	assert.Empty(t, st.Tools)
}

func TestLoadState_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := LoadState(path)
	require.NotNil(t, st.Tools)
	assert.Empty(t, st.Tools)
}

func TestLoadState_NullTools(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"tools": null}`), 0o644))

	st := LoadState(path)
	assert.NotNil(t, st.Tools)
}

func TestSaveStateThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	installedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	st := &State{Tools: map[string]ToolState{
		"premake": {
			Version:     "5.0.0-beta2",
			Platform:    "windows",
			InstallPath: "vendor/premake/bin/premake5.exe",
			InstalledAt: installedAt,
		},
	}}
	require.NoError(t, SaveState(path, st))

	loaded := LoadState(path)
	got, ok := loaded.Tools["premake"]
	require.True(t, ok)
	assert.Equal(t, "5.0.0-beta2", got.Version)
	assert.True(t, installedAt.Equal(got.InstalledAt))
}

func TestSaveState_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)
	err := SaveState(path, &State{Tools: map[string]ToolState{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write state file")
}
