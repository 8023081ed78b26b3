package config

// DefaultFile is the config file looked up under the project root when
// --config is not given.
const DefaultFile = "premake-setup.yaml"

// Config is the top-level structure returned after loading premake-setup.yaml.
type Config struct {
	Premake              Premake  `yaml:"premake"`
	Prerequisites        []string `yaml:"prerequisites"`
	ContinueAfterInstall bool     `yaml:"continue_after_install"`
	Sync                 []Step   `yaml:"sync"`
	GenerateFatal        bool     `yaml:"generate_fatal"`
}

// Premake describes which generator release to install and how to run it.
// - Version: release version without the leading "v" (e.g., 5.0.0-beta2).
// - Platform: release platform name or GOOS value; empty means the host OS.
// - Target: generator action (e.g., vs2022); empty means the platform default.
// - ArchiveURL/LicenseURL/ReleaseAPI: templates expanding {version}, {platform} and {ext}.
// - Checksum: optional hex SHA-256 of the archive.
type Premake struct {
	Version             string `yaml:"version"`
	Platform            string `yaml:"platform"`
	Target              string `yaml:"target"`
	LocalDir            string `yaml:"local_dir"`
	ArchiveURL          string `yaml:"archive_url"`
	LicenseURL          string `yaml:"license_url"`
	Checksum            string `yaml:"checksum"`
	VerifyReleaseDigest bool   `yaml:"verify_release_digest"`
	ReleaseAPI          string `yaml:"release_api"`
}

// Step is one external command run during dependency sync.
// A Fatal step aborts the run when it fails; otherwise failure is a warning.
type Step struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Fatal   bool     `yaml:"fatal"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Premake: Premake{
			Version:             "5.0.0-beta2",
			LocalDir:            "vendor/premake/bin",
			ArchiveURL:          "https://github.com/premake/premake-core/releases/download/v{version}/premake-{version}-{platform}{ext}",
			LicenseURL:          "https://raw.githubusercontent.com/premake/premake-core/master/LICENSE.txt",
			VerifyReleaseDigest: true,
			ReleaseAPI:          "https://api.github.com/repos/premake/premake-core/releases/tags/v{version}",
		},
		Prerequisites: []string{"git", "git-lfs"},
		Sync: []Step{
			{Name: "lfs", Command: "git", Args: []string{"lfs", "pull"}},
			{Name: "submodules", Command: "git", Args: []string{"submodule", "update", "--init", "--recursive"}},
		},
		GenerateFatal: true,
	}
}
