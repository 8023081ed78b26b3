package installer

import (
	"fmt"
	"os"

	"premake-setup/internal/logger"
)

// Uninstall removes the local install directory, including the binary, the
// downloaded archive, the license and the state file. Removing an absent
// directory is not an error.
func (i *Installer) Uninstall() error {
	dir := i.Path(i.layout.LocalDir)
	logger.Info("[INFO] Uninstalling premake from %s...\n", i.layout.LocalDir)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Info("[INFO] Nothing to remove at %s\n", i.layout.LocalDir)
		return nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", i.layout.LocalDir, err)
	}
	logger.Info("[INFO] Successfully removed directory %s\n", i.layout.LocalDir)
	return nil
}
