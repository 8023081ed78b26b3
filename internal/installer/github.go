package installer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"premake-setup/internal/logger"
)

// GitHubRelease represents the structure of a GitHub release JSON response.
type GitHubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v5.0.0-beta2)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
		Digest             string `json:"digest"`               // "sha256:<hex>", empty for assets uploaded before digests existed
	} `json:"assets"`
}

// fetchReleaseDigest asks the GitHub releases API for the SHA-256 digest of
// assetName. It returns "" with no error when the release lists the asset
// without a digest.
func fetchReleaseDigest(ctx context.Context, client *http.Client, apiURL, assetName string) (string, error) {
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release %s: %w", apiURL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", apiURL, resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON: %w", err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	for _, asset := range release.Assets {
		if asset.Name != assetName {
			continue
		}
		algo, sum, ok := strings.Cut(asset.Digest, ":")
		if !ok || !strings.EqualFold(algo, "sha256") {
			return "", nil
		}
		return strings.ToLower(sum), nil
	}
	return "", fmt.Errorf("asset %s not found in release %s", assetName, release.TagName)
}
