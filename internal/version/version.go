// Package version exposes build-time metadata for the placehound CLI.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/placehound/placehound/internal/version.Version=1.0.0 ..."
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version is the semantic version, "dev" for untagged builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildDate is the UTC build timestamp in RFC3339 format.
	BuildDate = "unknown"
)

// String returns the single-line version.
func String() string {
	return Version
}

// Full returns a multi-line version report.
func Full() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("placehound %s\n", Version))
	sb.WriteString(fmt.Sprintf("  Commit:     %s\n", Commit))
	sb.WriteString(fmt.Sprintf("  Built:      %s\n", BuildDate))
	sb.WriteString(fmt.Sprintf("  Go version: %s\n", runtime.Version()))
	sb.WriteString(fmt.Sprintf("  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH))
	return sb.String()
}
