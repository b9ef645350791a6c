// Package history persists launch attempts. SQLite is the primary backend;
// a JSON-lines file serves when SQLite cannot be opened or is not wanted.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/pkg/filesystem"
	"github.com/doeshing/termdrop/internal/ports"
)

// maxRecords bounds the number of launch records kept by either backend.
const maxRecords = 1000

// DefaultDir is ~/.termdrop/history.
func DefaultDir() string {
	return filepath.Join(filesystem.StateDir(), "history")
}

// Open returns the repository for backend under dir, falling back to the
// file store when SQLite cannot be opened.
func Open(backend, dir string, logger ports.Logger) ports.HistoryRepository {
	if !strings.EqualFold(strings.TrimSpace(backend), domain.HistoryBackendFile) {
		store, err := NewSQLiteStore(filepath.Join(dir, "history.db"))
		if err == nil {
			return store
		}
		if logger != nil {
			logger.Warn("sqlite history unavailable, using file store", map[string]interface{}{"error": err.Error()})
		}
	}
	return NewFileStore(filepath.Join(dir, "history.jsonl"))
}

// Export writes every record, newest first, to dest as JSON lines.
func Export(repo ports.HistoryRepository, dest string) error {
	records, err := repo.Records(0)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// recentDirectories folds records into one entry per directory, counting
// successful launches only, most recently used first.
func recentDirectories(records []domain.LaunchRecord, limit int) []domain.DirectoryEntry {
	index := map[string]int{}
	var out []domain.DirectoryEntry
	for _, rec := range records {
		if rec.Outcome != domain.OutcomeSuccess || rec.Directory == "" {
			continue
		}
		i, ok := index[rec.Directory]
		if !ok {
			index[rec.Directory] = len(out)
			out = append(out, domain.DirectoryEntry{Path: rec.Directory})
			i = len(out) - 1
		}
		entry := &out[i]
		entry.UsageCount++
		if rec.Timestamp.After(entry.LastUsed) || entry.LastUsed.IsZero() {
			entry.LastUsed = rec.Timestamp
			entry.LastCommand = rec.Command
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].LastUsed.After(out[b].LastUsed) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
