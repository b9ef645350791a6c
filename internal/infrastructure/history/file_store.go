package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// FileStore appends history records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a history store backed by the jsonl file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(record domain.LaunchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return err
	}
	data, err := json.Marshal(record)
	if err != nil {
		file.Close()
		return err
	}
	data = append(data, '\n')
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return f.prune()
}

// prune rewrites the file when it holds more than maxRecords lines.
func (f *FileStore) prune() error {
	records, err := f.load()
	if err != nil || len(records) <= maxRecords {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range records[len(records)-maxRecords:] {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), domain.SecureFilePermissions); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Records returns entries newest first (best-effort: bad lines are skipped).
func (f *FileStore) Records(limit int) ([]domain.LaunchRecord, error) {
	f.mu.Lock()
	records, err := f.load()
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// RecentDirectories derives the recent-directory list from the records.
func (f *FileStore) RecentDirectories(limit int) ([]domain.DirectoryEntry, error) {
	records, err := f.Records(0)
	if err != nil {
		return nil, err
	}
	return recentDirectories(records, limit), nil
}

// load reads records in file (oldest first) order.
func (f *FileStore) load() ([]domain.LaunchRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.LaunchRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.LaunchRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
