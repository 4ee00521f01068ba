package smp

// Version is the module version, populated at build time via ldflags.
var Version = "v0.1.0-dev"

// WireVersion is the version byte carried by every encoded message.
const WireVersion uint8 = 1

// ModuleVersion returns Version.
func ModuleVersion() string {
	return Version
}
