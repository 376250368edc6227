// mypkgs.go
package mypkgs

import (
	"fmt"
	"io"
	"sort"

	"github.com/arc-language/mypkgs/pkg/apt"
	"github.com/arc-language/mypkgs/pkg/dpkg"
)

// NoPackagesMessage is printed when no manually installed packages are found
const NoPackagesMessage = "No manually installed packages found."

// Manager combines the dpkg state files and the APT history logs into a
// single view of which packages a user installed by hand
type Manager struct {
	config  *Config
	states  *dpkg.StateDB
	history *apt.HistoryScanner
}

// NewManager creates a manager over the configured input files
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	states := dpkg.NewStateDB(&dpkg.Config{
		ExtendedStatesPath: cfg.ExtendedStatesPath,
		StatusPath:         cfg.StatusPath,
		Debug:              cfg.Debug,
		Logger:             cfg.Logger,
	})

	history := apt.NewHistoryScanner(&apt.Config{
		HistoryLogGlob: cfg.HistoryLogGlob,
		Debug:          cfg.Debug,
		Logger:         cfg.Logger,
	})

	return &Manager{
		config:  cfg,
		states:  states,
		history: history,
	}
}

// Collect runs the full pipeline and returns the manually installed
// package names in lexicographic order. It never fails: any unreadable
// input contributes an empty set.
func (m *Manager) Collect() []string {
	manual := m.states.ManualPackages()
	logged := m.history.Scan()
	auto := m.states.AutoPackages()

	result := Reconcile(manual, logged, auto)

	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Reconcile computes (manual ∪ logged) \ auto. The inputs are never
// mutated; the result is always a fresh set.
func Reconcile(manual, logged, auto map[string]struct{}) map[string]struct{} {
	result := make(map[string]struct{}, len(manual)+len(logged))

	for name := range manual {
		result[name] = struct{}{}
	}
	for name := range logged {
		result[name] = struct{}{}
	}
	for name := range auto {
		delete(result, name)
	}

	return result
}

// Report writes the sorted package list to w, one name per line, or the
// fixed not-found message when the list is empty
func (m *Manager) Report(w io.Writer) error {
	names := m.Collect()

	if len(names) == 0 {
		_, err := fmt.Fprintln(w, NoPackagesMessage)
		return err
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	return nil
}
