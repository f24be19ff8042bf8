package utils

import (
	"runtime/debug"
	"strings"
)

// set with -ldflags "-X github.com/gnomegl/hourglass/internal/utils.version=..."
var version string

// GetVersion returns the release version without its "v" prefix, falling
// back to the module build info and then to "dev".
func GetVersion() string {
	return normalizeVersion(version, buildVersion())
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return info.Main.Version
}

func normalizeVersion(injected, fromBuild string) string {
	v := injected
	if v == "" {
		v = fromBuild
	}
	if v == "" || v == "(devel)" {
		return "dev"
	}
	return strings.TrimPrefix(v, "v")
}
