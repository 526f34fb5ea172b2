package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the swiftc CLI. The variables can be overridden at
// build time, e.g.
//
//	go build -ldflags "-X github.com/BluPerf/swift/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Pretty renders Version with the major.minor.patch parts colored. Anything
// that does not look like semver comes back unchanged.
func Pretty() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Long returns the full version report, one field per line. Empty optional
// fields are omitted.
func Long() string {
	var sb strings.Builder
	sb.WriteString("swiftc ")
	sb.WriteString(Pretty())
	if GitCommit != "" {
		sb.WriteString("\ncommit: ")
		sb.WriteString(GitCommit)
	}
	if BuildDate != "" {
		sb.WriteString("\nbuilt:  ")
		sb.WriteString(BuildDate)
	}
	return sb.String()
}
