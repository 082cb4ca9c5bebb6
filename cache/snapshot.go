package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lexishift/lexishift"
)

// Snapshot is the JSON structure for cache export and import, used to seed
// a fresh cache from a previous batch run.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []SnapshotEntry   `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SnapshotEntry is a single cached result.
type SnapshotEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Export writes the cache contents to w as a snapshot. Only backends that
// can enumerate their entries are exportable.
func Export(c lexishift.TranslationCache, w io.Writer, metadata map[string]string) error {
	entries, err := allEntries(c)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
		Metadata:   metadata,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func ExportToFile(c lexishift.TranslationCache, path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return Export(c, f, metadata)
}

// ImportResult reports what an import did.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}

// Import loads snapshot entries from r into the cache. Entries that fail to
// store are counted, not fatal.
func Import(c lexishift.TranslationCache, r io.Reader) (*ImportResult, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	result := &ImportResult{
		Version:  snap.Version,
		Metadata: snap.Metadata,
	}
	for _, e := range snap.Entries {
		if err := c.Set(e.Key, e.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportFromFile imports snapshot entries from a file.
// The path is provided by the caller and is intentionally user-controlled.
func ImportFromFile(c lexishift.TranslationCache, path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Import(c, f)
}

// allEntries enumerates the cache's entries per backend type.
func allEntries(c lexishift.TranslationCache) ([]SnapshotEntry, error) {
	var data map[string]string
	switch backend := c.(type) {
	case *Memory:
		data = backend.Entries()
	case *Redis:
		var err error
		data, err = backend.Entries()
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cache type %T does not support export", c)
	}

	entries := make([]SnapshotEntry, 0, len(data))
	for key, value := range data {
		entries = append(entries, SnapshotEntry{Key: key, Value: value})
	}
	return entries, nil
}
