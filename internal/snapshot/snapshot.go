// Package snapshot persists the last successfully fetched stats in the
// config directory so consecutive runs can report solve-count deltas.
// It is best-effort only; callers ignore its errors on the success path.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/leetcode"
)

const fileName = "last-stats.json"

// Snapshot holds the stats from the previous successful run.
type Snapshot struct {
	Stats   *leetcode.Stats `json:"stats"`
	TakenAt time.Time       `json:"taken_at"`
}

// Load reads the snapshot from the config directory.
// Returns nil, nil if the snapshot file does not exist (first run).
func Load(configDir string) (*Snapshot, error) {
	path := filepath.Join(configDir, fileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stats snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing stats snapshot: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot to the config directory.
func Save(configDir string, stats *leetcode.Stats) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(Snapshot{Stats: stats, TakenAt: time.Now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats snapshot: %w", err)
	}

	path := filepath.Join(configDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing stats snapshot: %w", err)
	}
	return nil
}

// SolvedDelta returns the change in total solved count since the previous
// snapshot. ok is false when there is no usable previous snapshot.
func SolvedDelta(prev *Snapshot, current *leetcode.Stats) (delta int, ok bool) {
	if prev == nil || prev.Stats == nil || current == nil {
		return 0, false
	}
	return current.TotalSolved - prev.Stats.TotalSolved, true
}
