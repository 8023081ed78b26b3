package installer

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	"premake-setup/internal/config"
	"premake-setup/internal/state"
)

// ErrUnsupportedPlatform is returned for operating systems Premake ships no
// prebuilt release for.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Platform describes one prebuilt Premake release flavor.
// - Name: platform segment in the release asset name (windows, linux, macosx).
// - ArchiveExt: archive suffix of the release asset.
// - ExeName: generator binary inside the archive.
// - DefaultTarget: generator action used when none is configured.
type Platform struct {
	Name          string
	ArchiveExt    string
	ExeName       string
	DefaultTarget string
}

var platforms = map[string]Platform{
	"windows": {Name: "windows", ArchiveExt: ".zip", ExeName: "premake5.exe", DefaultTarget: "vs2022"},
	"linux":   {Name: "linux", ArchiveExt: ".tar.gz", ExeName: "premake5", DefaultTarget: "gmake2"},
	"darwin":  {Name: "macosx", ArchiveExt: ".tar.gz", ExeName: "premake5", DefaultTarget: "xcode4"},
}

// PlatformFor maps a GOOS value, or a release platform name such as
// "macosx", to its Platform. An empty name means the host OS.
func PlatformFor(name string) (Platform, error) {
	if name == "" {
		name = runtime.GOOS
	}
	name = strings.ToLower(name)
	if p, ok := platforms[name]; ok {
		return p, nil
	}
	for _, p := range platforms {
		if p.Name == name {
			return p, nil
		}
	}
	return Platform{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, name)
}

// Layout is the set of URLs and project-relative paths derived from the
// configured version and platform. Paths are slash-separated.
type Layout struct {
	Version  string
	Platform Platform
	Target   string

	ArchiveURL string
	LicenseURL string
	ReleaseAPI string

	LocalDir    string
	ArchivePath string
	ExePath     string
	LicensePath string
	StatePath   string
}

// NewLayout expands the templates in cfg for the configured platform.
func NewLayout(cfg config.Premake) (Layout, error) {
	p, err := PlatformFor(cfg.Platform)
	if err != nil {
		return Layout{}, err
	}

	expand := strings.NewReplacer(
		"{version}", cfg.Version,
		"{platform}", p.Name,
		"{ext}", p.ArchiveExt,
	).Replace

	target := cfg.Target
	if target == "" {
		target = p.DefaultTarget
	}

	localDir := path.Clean(strings.TrimSuffix(cfg.LocalDir, "/"))
	return Layout{
		Version:     cfg.Version,
		Platform:    p,
		Target:      target,
		ArchiveURL:  expand(cfg.ArchiveURL),
		LicenseURL:  expand(cfg.LicenseURL),
		ReleaseAPI:  expand(cfg.ReleaseAPI),
		LocalDir:    localDir,
		ArchivePath: localDir + "/" + expand("premake-{version}-{platform}{ext}"),
		ExePath:     localDir + "/" + p.ExeName,
		LicensePath: localDir + "/LICENSE.txt",
		StatePath:   localDir + "/" + state.FileName,
	}, nil
}

// ArchiveName is the release asset name, as listed by the releases API.
func (l Layout) ArchiveName() string {
	return path.Base(l.ArchivePath)
}
