package cli

import "runtime/debug"

// Version is set at build time with -ldflags "-X github.com/yomorun/lambda-stream/cli.Version=v1.0.0".
var Version = ""

// GetVersion returns the build version, falling back to the module version.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
