package mypkgs

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestReconcile tests the (manual ∪ logged) \ auto set algebra.
func TestReconcile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		manual   []string
		logged   []string
		auto     []string
		expected []string
	}{
		{
			name:     "union minus auto",
			manual:   []string{"curl", "vim"},
			logged:   []string{"vim", "wget"},
			auto:     []string{"wget"},
			expected: []string{"curl", "vim"},
		},
		{
			name:     "auto wins over both sources",
			manual:   []string{"libssl1.1"},
			logged:   []string{"libssl1.1"},
			auto:     []string{"libssl1.1"},
			expected: []string{},
		},
		{
			name:     "all empty",
			expected: []string{},
		},
		{
			name:     "logs only",
			logged:   []string{"jq"},
			expected: []string{"jq"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Reconcile(toSet(tc.manual), toSet(tc.logged), toSet(tc.auto))
			if !reflect.DeepEqual(result, toSet(tc.expected)) {
				t.Errorf("got %v, expected %v", result, tc.expected)
			}
		})
	}
}

// TestReconcileDoesNotMutateInputs tests that the three input sets survive
// reconciliation untouched.
func TestReconcileDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	manual := toSet([]string{"curl", "wget"})
	logged := toSet([]string{"vim"})
	auto := toSet([]string{"wget", "vim"})

	Reconcile(manual, logged, auto)

	if !reflect.DeepEqual(manual, toSet([]string{"curl", "wget"})) {
		t.Errorf("manual set mutated: %v", manual)
	}
	if !reflect.DeepEqual(logged, toSet([]string{"vim"})) {
		t.Errorf("logged set mutated: %v", logged)
	}
	if !reflect.DeepEqual(auto, toSet([]string{"wget", "vim"})) {
		t.Errorf("auto set mutated: %v", auto)
	}
}

// TestCollectExtendedStatesAndStatus covers the extended-states-driven
// scenario: curl is manual, libssl1.1 is auto in both files, no logs.
func TestCollectExtendedStatesAndStatus(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "extended_states",
		"Package: curl\nArchitecture: amd64\n\n"+
			"Package: libssl1.1\nArchitecture: amd64\nAuto-Installed: yes\n")
	writeFixture(t, dir, "status",
		"Package: libssl1.1\nStatus: install ok auto\n")

	mgr := NewManager(fixtureConfig(dir))

	got := mgr.Collect()
	if !reflect.DeepEqual(got, []string{"curl"}) {
		t.Errorf("Collect() = %v, expected [curl]", got)
	}
}

// TestCollectLogsOnly covers the logs-driven scenario: no state files at
// all, one history line naming two packages.
func TestCollectLogsOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "history.log",
		"Commandline: apt install vim, vim-common=2:8.2\n")

	mgr := NewManager(fixtureConfig(dir))

	got := mgr.Collect()
	if !reflect.DeepEqual(got, []string{"vim", "vim-common"}) {
		t.Errorf("Collect() = %v, expected [vim vim-common]", got)
	}
}

// TestCollectIdempotent tests that two runs over unchanged inputs agree.
func TestCollectIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "extended_states", "Package: curl\n")
	writeFixture(t, dir, "history.log", "Commandline: apt install wget\n")

	mgr := NewManager(fixtureConfig(dir))

	first := mgr.Collect()
	second := mgr.Collect()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs disagree: %v vs %v", first, second)
	}
}

// TestReportEmpty tests the fixed message when every source is absent.
func TestReportEmpty(t *testing.T) {
	t.Parallel()

	mgr := NewManager(fixtureConfig(t.TempDir()))

	var buf bytes.Buffer
	if err := mgr.Report(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != NoPackagesMessage+"\n" {
		t.Errorf("got %q, expected %q", got, NoPackagesMessage+"\n")
	}
}

// TestReportSorted tests one-name-per-line lexicographic output.
func TestReportSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "extended_states",
		"Package: wget\n\nPackage: curl\n\nPackage: jq\n")

	mgr := NewManager(fixtureConfig(dir))

	var buf bytes.Buffer
	if err := mgr.Report(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "curl\njq\nwget\n" {
		t.Errorf("got %q, expected %q", got, "curl\njq\nwget\n")
	}
}

// TestConfigRebase tests re-rooting the input paths for image inspection.
func TestConfigRebase(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Rebase("/mnt/image")

	if cfg.StatusPath != "/mnt/image/var/lib/dpkg/status" {
		t.Errorf("StatusPath = %q", cfg.StatusPath)
	}
	if cfg.ExtendedStatesPath != "/mnt/image/var/lib/dpkg/extended_states" {
		t.Errorf("ExtendedStatesPath = %q", cfg.ExtendedStatesPath)
	}
	if cfg.HistoryLogGlob != "/mnt/image/var/log/apt/history.log*" {
		t.Errorf("HistoryLogGlob = %q", cfg.HistoryLogGlob)
	}
}

// TestLoadConfigOverrides tests that a YAML file overrides individual paths.
func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "status_path: /tmp/status\nhistory_log_glob: /tmp/history.log*\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StatusPath != "/tmp/status" {
		t.Errorf("StatusPath = %q", cfg.StatusPath)
	}
	if cfg.HistoryLogGlob != "/tmp/history.log*" {
		t.Errorf("HistoryLogGlob = %q", cfg.HistoryLogGlob)
	}
	// Unset keys keep their defaults
	if cfg.ExtendedStatesPath != "/var/lib/dpkg/extended_states" {
		t.Errorf("ExtendedStatesPath = %q", cfg.ExtendedStatesPath)
	}
}

func fixtureConfig(dir string) *Config {
	return &Config{
		ExtendedStatesPath: filepath.Join(dir, "extended_states"),
		StatusPath:         filepath.Join(dir, "status"),
		HistoryLogGlob:     filepath.Join(dir, "history.log*"),
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
