// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/mutro/termindex/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", resolved(), Commit, BuildDate)
}

// resolved falls back to the module version when installed with go install.
func resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
