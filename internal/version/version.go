// Package version reports the build version of fretsmart.
package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/Iron-Ham/fretsmart/internal/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, suffixed with
// -dirty for modified trees, or "" when unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

func revision(settings []debug.BuildSetting) string {
	modified := false
	for _, setting := range settings {
		if setting.Key == "vcs.modified" && setting.Value == "true" {
			modified = true
			break
		}
	}
	for _, setting := range settings {
		if setting.Key == "vcs.revision" {
			short := setting.Value
			if len(short) > 7 {
				short = short[:7]
			}
			if modified {
				return short + "-dirty"
			}
			return short
		}
	}
	return ""
}

// String returns Version, else Hash, else "dev".
func String() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "dev"
}
