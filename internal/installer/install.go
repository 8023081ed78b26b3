package installer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"premake-setup/internal/logger"
	"premake-setup/internal/prompt"
	"premake-setup/internal/state"
)

// stateKey names the generator in the state file.
const stateKey = "premake"

var (
	// ErrChecksumMismatch is returned when the downloaded archive does not
	// hash to the expected SHA-256.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrNotInstalled is returned by callers that need the generator and find it absent.
	ErrNotInstalled = errors.New("premake is not installed")
)

// Status is the outcome of PromptInstall.
type Status int

const (
	// AlreadyPresent means the generator binary was found; nothing was done.
	AlreadyPresent Status = iota
	// InstalledRerunRequired means the user accepted and the install succeeded.
	// The caller decides whether to continue or ask for a re-run.
	InstalledRerunRequired
	// DeclinedByUser means the binary is absent and the user said no.
	DeclinedByUser
)

func (s Status) String() string {
	switch s {
	case AlreadyPresent:
		return "already present"
	case InstalledRerunRequired:
		return "installed, re-run required"
	case DeclinedByUser:
		return "declined by user"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Installer checks for and installs the Premake generator under a project root.
type Installer struct {
	root         string
	layout       Layout
	client       *http.Client
	checksum     string
	verifyDigest bool
	now          func() time.Time
}

// Option configures an Installer.
type Option func(*Installer)

// WithHTTPClient replaces http.DefaultClient for downloads and API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(i *Installer) { i.client = c }
}

// WithChecksum pins the expected hex SHA-256 of the release archive.
func WithChecksum(sum string) Option {
	return func(i *Installer) { i.checksum = strings.ToLower(strings.TrimSpace(sum)) }
}

// WithReleaseDigest enables looking the archive digest up in the releases
// API when no checksum is pinned.
func WithReleaseDigest(enabled bool) Option {
	return func(i *Installer) { i.verifyDigest = enabled }
}

// New returns an Installer for layout rooted at root.
func New(root string, layout Layout, opts ...Option) *Installer {
	i := &Installer{
		root:   root,
		layout: layout,
		client: http.DefaultClient,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Layout returns the URLs and relative paths the installer works with.
func (i *Installer) Layout() Layout {
	return i.layout
}

// Path resolves a slash-separated, project-relative path against the root.
func (i *Installer) Path(rel string) string {
	return filepath.Join(i.root, filepath.FromSlash(rel))
}

// Present reports whether the generator binary exists. It has no side effects.
func (i *Installer) Present() bool {
	_, err := os.Stat(i.Path(i.layout.ExePath))
	return err == nil
}

// InstalledVersion returns the version recorded by the last install, or ""
// when the binary was put there by other means.
func (i *Installer) InstalledVersion() string {
	st := state.LoadState(i.Path(i.layout.StatePath))
	return st.Tools[stateKey].Version
}

// PromptInstall offers to install the generator when it is absent.
// It never exits the process; the returned Status tells the caller what happened.
func (i *Installer) PromptInstall(ctx context.Context, p prompt.Prompter) (Status, error) {
	if i.Present() {
		return AlreadyPresent, nil
	}

	install, err := p.Confirm("Would you like to install Premake?")
	if err != nil {
		return DeclinedByUser, fmt.Errorf("install prompt failed: %w", err)
	}
	if !install {
		return DeclinedByUser, nil
	}

	if err := i.Install(ctx); err != nil {
		return DeclinedByUser, err
	}
	return InstalledRerunRequired, nil
}

// Install creates the local directory, downloads and extracts the release
// archive, then downloads the license file. Errors are returned as-is with
// context; partially written files are left for the next attempt to overwrite.
func (i *Installer) Install(ctx context.Context) error {
	l := i.layout
	dir := i.Path(l.LocalDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", l.LocalDir, err)
	}

	archive := i.Path(l.ArchivePath)
	logger.Info("[INFO] Downloading %s to %s\n", l.ArchiveURL, l.ArchivePath)
	if err := downloadFile(ctx, i.client, l.ArchiveURL, archive); err != nil {
		return fmt.Errorf("failed to download premake archive: %w", err)
	}

	digest, err := i.verifyArchive(ctx, archive)
	if err != nil {
		return err
	}

	logger.Info("[INFO] Extracting %s\n", l.ArchivePath)
	files, err := ExtractArchive(archive, dir)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", l.ArchivePath, err)
	}
	logger.Debug("[DEBUG] Extracted %d files into %s\n", len(files), l.LocalDir)

	if !i.Present() {
		return fmt.Errorf("archive %s did not contain %s", l.ArchiveName(), l.Platform.ExeName)
	}

	logger.Info("[INFO] Downloading %s to %s\n", l.LicenseURL, l.LicensePath)
	if err := downloadFile(ctx, i.client, l.LicenseURL, i.Path(l.LicensePath)); err != nil {
		return fmt.Errorf("failed to download premake license: %w", err)
	}

	i.record(digest)
	logger.Info("[INFO] Installed premake %s to %s\n", l.Version, l.ExePath)
	return nil
}

// verifyArchive checks the archive against the pinned checksum or the
// release digest. It returns the digest it verified against, or "" when no
// digest was available.
func (i *Installer) verifyArchive(ctx context.Context, archive string) (string, error) {
	expected, source := i.checksum, "pinned checksum"
	if expected == "" && i.verifyDigest && i.layout.ReleaseAPI != "" {
		digest, err := fetchReleaseDigest(ctx, i.client, i.layout.ReleaseAPI, i.layout.ArchiveName())
		if err != nil {
			logger.Warn("[WARN] Could not look up release digest: %v\n", err)
		}
		expected, source = digest, "release digest"
	}
	if expected == "" {
		logger.Warn("[WARN] No checksum available for %s; skipping verification\n", i.layout.ArchiveName())
		return "", nil
	}

	actual, err := fileSHA256(archive)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", archive, err)
	}
	if actual != expected {
		return "", fmt.Errorf("%w: %s has sha256 %s, %s is %s", ErrChecksumMismatch, i.layout.ArchiveName(), actual, source, expected)
	}
	logger.Debug("[DEBUG] %s matches %s %s\n", i.layout.ArchiveName(), source, expected)
	return actual, nil
}

// record saves the install in the state file. Save errors are logged only.
func (i *Installer) record(digest string) {
	path := i.Path(i.layout.StatePath)
	st := state.LoadState(path)
	st.Tools[stateKey] = state.ToolState{
		Version:     i.layout.Version,
		Platform:    i.layout.Platform.Name,
		InstallPath: i.layout.ExePath,
		ArchiveURL:  i.layout.ArchiveURL,
		Digest:      digest,
		InstalledAt: i.now().UTC(),
	}
	if err := state.SaveState(path, st); err != nil {
		logger.Warn("[WARN] %v\n", err)
	}
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
