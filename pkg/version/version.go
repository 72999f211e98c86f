// Package version carries build-time identification for the rangeset
// binaries, populated via -ldflags at release build time.
package version

// Version, Commit, and Date are overridden at build time with:
//
//	go build -ldflags "-X github.com/baratali/rangeset/pkg/version.Version=... \
//	  -X .../version.Commit=... -X .../version.Date=..."
//
// Their defaults describe an unreleased development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the three fields as a single line suitable for a
// `version` subcommand.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
