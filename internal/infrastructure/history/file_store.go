package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// FileStore appends assessment records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the jsonl file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(record domain.AssessmentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SecureFilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Records loads entries newest first, filtered by search and capped at limit.
func (f *FileStore) Records(limit int, search string) ([]domain.AssessmentRecord, error) {
	f.mu.Lock()
	all, err := f.load()
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })

	needle := strings.ToLower(search)
	var records []domain.AssessmentRecord
	for _, rec := range all {
		if needle != "" && !matches(rec, needle) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

// PruneOlderThan rewrites the file without entries older than days.
func (f *FileStore) PruneOlderThan(days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	all, err := f.load()
	if err != nil {
		return err
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	var buf bytes.Buffer
	for _, rec := range all {
		if rec.Timestamp.Before(cutoff) {
			continue
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		buf.Write(append(data, '\n'))
	}
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), domain.SecureFilePermissions)
}

// ExportJSON copies the history to dest as jsonl.
func (f *FileStore) ExportJSON(dest string) error {
	records, err := f.Records(0, "")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		buf.Write(append(data, '\n'))
	}
	return os.WriteFile(dest, buf.Bytes(), domain.SecureFilePermissions)
}

func (f *FileStore) load() ([]domain.AssessmentRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.AssessmentRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.AssessmentRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func matches(rec domain.AssessmentRecord, needle string) bool {
	for _, field := range []string{rec.Input, rec.Outcome, rec.Level} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

var _ ports.HistoryRepository = (*FileStore)(nil)
