// Package update reports the build version and checks for newer releases.
package update

import "time"

// Version information injected by ldflags during build, e.g.
// -ldflags "-X github.com/young1lin/gridconsole/internal/update.Version=1.2.0"
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
)

// ReleaseInfo represents a GitHub release.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}
