package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/branding"
)

const (
	cacheFileName = "release-check.json"
	// cacheMaxAge bounds how often the background release check runs.
	cacheMaxAge = 24 * time.Hour
)

// checkCache holds the cached result of the last release check.
type checkCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// CheckAndPrintBanner prints an upgrade hint if the cached release check
// found a newer version. It never blocks: when the cache is stale, a
// background goroutine refreshes it for the next invocation.
func (ch *Checker) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := loadCache(configDir)
	if err != nil {
		return
	}

	if cache != nil && cache.UpdateAvailable {
		fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", cache.CurrentVersion, cache.LatestVersion)
		fmt.Fprintf(w, "    See https://github.com/%s/releases\n\n", branding.GitHubRepo())
	}

	if cache == nil || time.Since(cache.CheckedAt) > cacheMaxAge {
		go ch.refreshCache(configDir)
	}
}

// refreshCache fetches the latest release and rewrites the cache file.
// Runs in a background goroutine and never fails loudly.
func (ch *Checker) refreshCache(configDir string) {
	release, err := ch.LatestRelease()
	if err != nil {
		return
	}

	available, err := IsNewer(ch.currentVersion, release.TagName)
	if err != nil {
		// Non-semver current version (dev build): record the check, no banner.
		available = false
	}

	cache := &checkCache{
		LatestVersion:   release.TagName,
		CurrentVersion:  ch.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	}
	_ = saveCache(configDir, cache)
}

func loadCache(configDir string) (*checkCache, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cache checkCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

func saveCache(configDir string, cache *checkCache) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, cacheFileName), data, 0644)
}
