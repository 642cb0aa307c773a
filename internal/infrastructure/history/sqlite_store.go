package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/pkg/filesystem"
	"github.com/doeshing/healthdesk-go/internal/ports"
)

// SQLiteStore persists assessment history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	file *FileStore
	path string
	mu   sync.Mutex
}

// timestampLayout is fixed-width UTC so text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// likeEscaper makes LIKE wildcards in search text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// DefaultPath is ~/.healthdesk/history/history.db.
func DefaultPath() string {
	return filepath.Join(filesystem.UserHomeDir(), ".healthdesk", "history", "history.db")
}

// NewSQLiteStore creates (or opens) the database at path. When the database
// cannot be opened the store degrades to a JSONL file next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = DefaultPath()
	}
	path = filesystem.ExpandPath(path)
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return degraded(path)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return degraded(path)
	}
	return store
}

func degraded(path string) *SQLiteStore {
	jsonl := strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"
	return &SQLiteStore{path: path, file: NewFileStore(jsonl)}
}

// Degraded reports whether the store fell back to the JSONL file.
func (s *SQLiteStore) Degraded() bool {
	return s.db == nil
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		kind TEXT,
		input TEXT,
		outcome TEXT,
		level TEXT
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.AssessmentRecord) error {
	if s.db == nil {
		return s.file.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO assessments
		(id, timestamp, kind, input, outcome, level)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.UTC().Format(timestampLayout),
		record.Kind,
		record.Input,
		record.Outcome,
		record.Level,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.AssessmentRecord, error) {
	if s.db == nil {
		return s.file.Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, kind, input, outcome, level FROM assessments")
	var args []interface{}
	if search != "" {
		builder.WriteString(` WHERE input LIKE ? ESCAPE '\' OR outcome LIKE ? ESCAPE '\' OR level LIKE ? ESCAPE '\'`)
		pattern := "%" + likeEscaper.Replace(search) + "%"
		args = append(args, pattern, pattern, pattern)
	}
	builder.WriteString(" ORDER BY timestamp DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.AssessmentRecord
	for rows.Next() {
		var rec domain.AssessmentRecord
		var ts, kind string
		if err := rows.Scan(&rec.ID, &ts, &kind, &rec.Input, &rec.Outcome, &rec.Level); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timestampLayout, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Kind = domain.AssessmentKind(kind)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.file.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM assessments")
	return err
}

// PruneOlderThan removes entries older than the given number of days.
func (s *SQLiteStore) PruneOlderThan(days int) error {
	if s.db == nil {
		return s.file.PruneOlderThan(days)
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(timestampLayout)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM assessments WHERE timestamp < ?", cutoff)
	return err
}

// ExportJSON writes the assessments table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path, or the JSONL path when degraded.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.file.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
