// pkg/dpkg/statedb.go
package dpkg

import (
	"io"
	"log"
	"os"
)

// NewStateDB creates a read-only view of the dpkg state files
func NewStateDB(cfg *Config) *StateDB {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.ExtendedStatesPath == "" {
		cfg.ExtendedStatesPath = DefaultExtendedStatesPath
	}
	if cfg.StatusPath == "" {
		cfg.StatusPath = DefaultStatusPath
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[dpkg] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &StateDB{
		config: cfg,
		logger: logger,
	}
}

// ManualPackages returns the packages the extended_states file flags as
// manually installed. A missing or unreadable file yields an empty set;
// failures are logged, never returned.
func (db *StateDB) ManualPackages() map[string]struct{} {
	return db.parseFile(db.config.ExtendedStatesPath, ParseExtendedStates)
}

// AutoPackages returns the packages the status file flags as automatically
// installed, under the same best-effort contract as ManualPackages.
func (db *StateDB) AutoPackages() map[string]struct{} {
	return db.parseFile(db.config.StatusPath, ParseStatus)
}

func (db *StateDB) parseFile(path string, parse func(io.Reader) (map[string]struct{}, error)) map[string]struct{} {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			db.logger.Printf("Error reading %s: %v", path, err)
		}
		return map[string]struct{}{}
	}
	defer f.Close()

	packages, err := parse(f)
	if err != nil {
		db.logger.Printf("Error reading %s: %v", path, err)
		return map[string]struct{}{}
	}

	return packages
}
