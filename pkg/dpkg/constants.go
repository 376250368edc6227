// pkg/dpkg/constants.go
package dpkg

const (
	// DefaultExtendedStatesPath is where dpkg tracks the auto-install flag
	DefaultExtendedStatesPath = "/var/lib/dpkg/extended_states"

	// DefaultStatusPath is the dpkg status database
	DefaultStatusPath = "/var/lib/dpkg/status"
)

// Stanza fields recognized by the parsers
const (
	fieldPackage       = "Package"
	fieldAutoInstalled = "Auto-Installed"
	fieldStatus        = "Status"
)

// autoStatusMarker appears in the Status line of a package that was
// installed automatically, e.g. "Status: install ok auto"
const autoStatusMarker = "auto"
