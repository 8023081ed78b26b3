package state

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"premake-setup/internal/logger"
)

// FileName is the state file written next to the installed binary, so that
// removing the install directory also forgets the install.
const FileName = ".premake-setup.json"

// ToolState records what was installed by this tool.
type ToolState struct {
	Version     string    `json:"version"`          // Release version, e.g. 5.0.0-beta2
	Platform    string    `json:"platform"`         // Release platform, e.g. windows
	InstallPath string    `json:"install_path"`     // Path of the generator binary relative to the project root
	ArchiveURL  string    `json:"archive_url"`      // URL the archive was fetched from
	Digest      string    `json:"digest,omitempty"` // Verified SHA-256 of the archive, if any
	InstalledAt time.Time `json:"installed_at"`
}

// State holds every tool installed by premake-setup, keyed by tool name.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// LoadState loads the saved state from a JSON file at the given path.
// A missing, unreadable or corrupt file yields an empty state.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		logger.Debug("[DEBUG] Ignoring corrupt state file %s: %v\n", path, err)
	}
	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// SaveState writes st to path as indented JSON.
func SaveState(path string, st *State) error {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}
