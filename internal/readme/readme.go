package readme

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// StartMarker and EndMarker delimit the managed region of the README.
	StartMarker = "<!-- LEETCODE_STATS_START -->"
	EndMarker   = "<!-- LEETCODE_STATS_END -->"
)

// ErrMarkersNotFound is returned when the target file does not contain the
// marker pair, or the end marker precedes the start marker.
var ErrMarkersNotFound = errors.New("stats markers not found")

// Splice returns content with the region between StartMarker and EndMarker
// replaced by block. The markers themselves and everything outside them are
// preserved unchanged.
func Splice(content, block string) (string, error) {
	start := strings.Index(content, StartMarker)
	if start < 0 {
		return "", fmt.Errorf("%s: %w", StartMarker, ErrMarkersNotFound)
	}

	interior := start + len(StartMarker)
	end := strings.Index(content[interior:], EndMarker)
	if end < 0 {
		return "", fmt.Errorf("%s: %w", EndMarker, ErrMarkersNotFound)
	}

	var b strings.Builder
	b.WriteString(content[:interior])
	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString(content[interior+end:])
	return b.String(), nil
}

// UpdateFile replaces the managed region of the file at path with block.
// The file is read and validated before anything is written, so a missing
// file or missing markers leave it untouched. Writing an unchanged result
// is skipped entirely.
func UpdateFile(path, block string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, err := Splice(string(content), block)
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	if updated == string(content) {
		return nil // already current
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
