// pkg/dpkg/parser.go
package dpkg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseExtendedStates parses a dpkg extended_states file and returns the
// names of packages not flagged as automatically installed. A stanza with
// no Auto-Installed line counts as manual.
func ParseExtendedStates(r io.Reader) (map[string]struct{}, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	manual := make(map[string]struct{})
	var current stanzaState

	flush := func() {
		if current.pkg != "" && !current.auto {
			manual[current.pkg] = struct{}{}
		}
		current = stanzaState{}
	}

	for scanner.Scan() {
		line := scanner.Text()

		// Empty line indicates end of stanza
		if line == "" {
			flush()
			continue
		}

		// Continuation line (starts with space or tab)
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}

		// Parse field: value
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch field {
		case fieldPackage:
			flush()
			current.pkg = value
		case fieldAutoInstalled:
			current.auto = value == "yes"
		}
	}

	// Don't forget the last stanza
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning extended states: %w", err)
	}

	return manual, nil
}

// ParseStatus parses a dpkg status file and returns the names of packages
// whose Status line carries the auto-install marker.
func ParseStatus(r io.Reader) (map[string]struct{}, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	auto := make(map[string]struct{})
	var currentPkg string

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			currentPkg = ""
			continue
		}

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch field {
		case fieldPackage:
			currentPkg = value
		case fieldStatus:
			if currentPkg != "" && strings.Contains(value, autoStatusMarker) {
				auto[currentPkg] = struct{}{}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning status file: %w", err)
	}

	return auto, nil
}
