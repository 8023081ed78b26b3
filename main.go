package main

import (
	"premake-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// premake-setup bootstraps a developer checkout of a Premake-based project:
//   - Checks that git and git-lfs are on PATH
//   - Looks for the Premake generator under vendor/premake/bin and offers to download
//     the pinned release (plus its license) when it is missing
//   - Pulls LFS objects and updates submodules
//   - Runs Premake to generate IDE project files (vs2022 on Windows by default)
//
// Error handling strategy:
//   - Library packages return errors and never exit the process
//   - Sync steps that fail are reported as warnings unless configured as fatal
//   - Fatal errors make the program exit with a non-zero status
func main() {
	cmd.Execute()
}
