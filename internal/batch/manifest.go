package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest summarizes a batch run for downstream tooling.
type Manifest struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Frames  int      `json:"frames"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// WriteManifest writes a JSON summary of the run, usually next to the
// frames.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Frames:  len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Error != "" {
			m.Failed++
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
