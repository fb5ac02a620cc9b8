package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string. Binaries installed with go install
// carry no ldflags and fall back to the module version.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns a full version string with commit and date
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" {
		v = fmt.Sprintf("%s (commit %s", v, GitCommit)
		if BuildDate != "unknown" {
			v += ", built " + BuildDate
		}
		v += ")"
	}
	return v
}
