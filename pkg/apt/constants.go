// pkg/apt/constants.go
package apt

// DefaultHistoryLogGlob matches the APT history log and its rotated
// siblings, compressed or not
const DefaultHistoryLogGlob = "/var/log/apt/history.log*"

// installMarker is the phrase a history line must contain before the
// package list is extracted from it
const installMarker = " install "
