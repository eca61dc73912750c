// Package version exposes the build's version information.
package version

import "runtime/debug"

// Version is the release version, overridden at build time.
var Version = "devel"

// Revision is the VCS revision the binary was built from.
var Revision = vcsRevision()

func vcsRevision() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}
