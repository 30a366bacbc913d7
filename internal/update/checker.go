package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// ReleasesURL is the GitHub API endpoint for the latest release
	ReleasesURL = "https://api.github.com/repos/young1lin/gridconsole/releases/latest"
	// checkInterval is how often an unforced check contacts GitHub
	checkInterval = 24 * time.Hour
)

// State tracks the last release check.
type State struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// Checker compares the running version with the latest release.
type Checker struct {
	currentVersion string
	stateFile      string
	releasesURL    string
	httpClient     *http.Client
	now            func() time.Time
}

// Option customises a Checker
type Option func(*Checker)

// WithReleasesURL points the checker at another release endpoint
func WithReleasesURL(url string) Option {
	return func(c *Checker) { c.releasesURL = url }
}

// WithHTTPClient replaces the default client with its 10 second timeout
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.httpClient = client }
}

// NewChecker creates a checker for version that remembers its last result
// in stateFile.
func NewChecker(version, stateFile string, opts ...Option) *Checker {
	c := &Checker{
		currentVersion: version,
		stateFile:      stateFile,
		releasesURL:    ReleasesURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the latest release when it is newer than the running
// version, and nil otherwise. Unless force is set, GitHub is contacted at
// most once per day and the remembered result is used in between.
func (c *Checker) Check(ctx context.Context, force bool) (*ReleaseInfo, error) {
	state := c.loadState()

	if !force && c.now().Sub(state.LastCheck) < checkInterval {
		if state.LatestVersion != "" && c.needsUpdate(state.LatestVersion) {
			return &ReleaseInfo{TagName: "v" + state.LatestVersion}, nil
		}
		return nil, nil
	}

	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := parseVersion(release.TagName)
	state.LastCheck = c.now()
	state.LatestVersion = latest
	_ = c.saveState(state)

	if c.needsUpdate(latest) {
		return release, nil
	}
	return nil, nil
}

// fetchLatest fetches the latest release from GitHub.
func (c *Checker) fetchLatest(ctx context.Context) (*ReleaseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gridconsole")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// needsUpdate returns true if the current version is older than latest.
// Development builds never ask for an update.
func (c *Checker) needsUpdate(latest string) bool {
	if c.currentVersion == "dev" {
		return false
	}

	currentV, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return false
	}
	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return latestV.GreaterThan(currentV)
}

// parseVersion extracts semantic version from tag name (e.g., "v1.2.3" -> "1.2.3").
func parseVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// loadState loads the remembered check, or a zero State.
func (c *Checker) loadState() *State {
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		return &State{}
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return &State{}
	}
	return &state
}

// saveState saves the update state to disk.
func (c *Checker) saveState(state *State) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.stateFile, data, 0644)
}
