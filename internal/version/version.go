// Package version provides version information for the CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("create-modern-fullstack version %s\n  Commit:  %s\n  Built:   %s\n  Go:      %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion)
}

// Short returns the version without the leading "v", as exposed to templates.
// Versions that are not valid semver are returned unchanged.
func (i Info) Short() string {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return i.Version
	}
	return v.String()
}

// IsDev reports whether this is an unreleased build.
func (i Info) IsDev() bool {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return true
	}
	return strings.HasSuffix(v.Prerelease(), "dev")
}
