// pkg/apt/history.go
package apt

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ulikunitz/xz"
)

// installPattern matches "install" followed by a comma-separated list of
// package tokens, each with an optional =version suffix
var installPattern = regexp.MustCompile(
	`install\s+(?P<packages>([a-z0-9._+-]+(?:=[0-9.:~-]+)?)(,\s*[a-z0-9._+-]+(?:=[0-9.:~-]+)?)*)`,
)

// packageNamePattern extracts the bare package name from a list token
var packageNamePattern = regexp.MustCompile(`^([a-z0-9._+-]+)(?:=[0-9.:~-]+)?`)

// Config configures the history log scanner
type Config struct {
	HistoryLogGlob string      // Default: /var/log/apt/history.log*
	Debug          bool        // Enable debug logging
	Logger         *log.Logger // Custom logger (optional)
}

// HistoryScanner recovers package names from past APT install actions.
// It is best-effort by contract: unreadable or corrupt log files are
// skipped and never abort a scan.
type HistoryScanner struct {
	config *Config
	logger *log.Logger
}

// NewHistoryScanner creates a scanner over the APT history logs
func NewHistoryScanner(cfg *Config) *HistoryScanner {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.HistoryLogGlob == "" {
		cfg.HistoryLogGlob = DefaultHistoryLogGlob
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[apt] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &HistoryScanner{
		config: cfg,
		logger: logger,
	}
}

// Scan reads every log file matching the glob and returns the union of
// package names found in install entries
func (s *HistoryScanner) Scan() map[string]struct{} {
	packages := make(map[string]struct{})

	logFiles, err := filepath.Glob(s.config.HistoryLogGlob)
	if err != nil {
		s.logger.Printf("Bad history log pattern %q: %v", s.config.HistoryLogGlob, err)
		return packages
	}

	for _, logFile := range logFiles {
		if err := s.scanFile(logFile, packages); err != nil {
			s.logger.Printf("Skipping history log %s: %v", logFile, err)
		}
	}

	return packages
}

func (s *HistoryScanner) scanFile(path string, packages map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := decompress(f, path)
	if err != nil {
		return err
	}

	for name := range ParseHistoryLog(r) {
		packages[name] = struct{}{}
	}
	return nil
}

// decompress wraps f according to the file's compression suffix.
// Rotated logs may be gzip, xz, or bzip2 depending on logrotate config.
func decompress(f *os.File, path string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(path, ".xz"):
		return xz.NewReader(f)
	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(f), nil
	default:
		return f, nil
	}
}

// ParseHistoryLog scans one history log stream for install entries and
// returns the package names they mention, version suffixes stripped.
// A corrupt stream yields whatever was parsed before the damage.
func ParseHistoryLog(r io.Reader) map[string]struct{} {
	packages := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, installMarker) {
			continue
		}

		match := installPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		// Group 1 is the full comma-separated package list
		for _, entry := range strings.Split(match[1], ", ") {
			nameMatch := packageNamePattern.FindStringSubmatch(entry)
			if nameMatch == nil {
				continue
			}
			// A lone "." can match the token pattern but is not a package
			if name := nameMatch[1]; name != "." {
				packages[name] = struct{}{}
			}
		}
	}

	// Scan errors (e.g. a truncated compressed stream) are deliberately
	// swallowed: history parsing is best-effort.
	return packages
}
