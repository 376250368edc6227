// pkg/dpkg/types.go
package dpkg

import "log"

// Config configures access to the dpkg state files
type Config struct {
	ExtendedStatesPath string      // Default: /var/lib/dpkg/extended_states
	StatusPath         string      // Default: /var/lib/dpkg/status
	Debug              bool        // Enable debug logging
	Logger             *log.Logger // Custom logger (optional)
}

// StateDB reads the dpkg state files. All reads are best-effort: a
// missing or unreadable file contributes an empty set, never an error.
type StateDB struct {
	config *Config
	logger *log.Logger
}

// stanzaState tracks the fields of the stanza currently being parsed.
// It is reset at every Package line.
type stanzaState struct {
	pkg  string
	auto bool
}
