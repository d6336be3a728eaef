// Package updater checks GitHub for newer releases of the CLI and prints a
// non-blocking upgrade hint. It never fails a run: every error path is
// silent, and network checks happen in the background against a 24h cache.
package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/branding"
	"github.com/Masterminds/semver/v3"
)

const githubAPIBase = "https://api.github.com"

// Release is the subset of the GitHub release payload we care about.
type Release struct {
	TagName   string    `json:"tag_name"`
	HTMLURL   string    `json:"html_url"`
	Published time.Time `json:"published_at"`
}

// Checker looks up the latest published release of this CLI.
type Checker struct {
	currentVersion string
	httpClient     *http.Client
	apiBase        string
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(ch *Checker) {
		ch.apiBase = base
	}
}

// New creates a Checker for the given current version.
func New(currentVersion string, opts ...Option) *Checker {
	ch := &Checker{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		apiBase:        githubAPIBase,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// LatestRelease fetches the latest release of this repository from GitHub.
func (ch *Checker) LatestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", ch.apiBase, branding.GitHubRepo())

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := ch.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	return &release, nil
}

// IsNewer reports whether latest is a strictly newer semver than current.
// A leading "v" is tolerated on either side. Errors on non-semver input,
// which includes dev builds; callers treat that as "no update".
func IsNewer(current, latest string) (bool, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.LessThan(lv), nil
}
