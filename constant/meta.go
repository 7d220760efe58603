// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "mpctl"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)
