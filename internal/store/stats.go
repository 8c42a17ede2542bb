package store

import (
	"context"
	"os"
	"time"
)

// FileStats holds database file statistics.
type FileStats struct {
	DBPath      string     `json:"db_path"`
	DBSizeBytes int64      `json:"db_size_bytes"`
	Keys        int        `json:"keys"`
	LastWrite   *time.Time `json:"last_write,omitempty"`
}

// Stats returns database file statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*FileStats, error) {
	st := &FileStats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&st.Keys)

	var last string
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(updated_at) FROM records`).Scan(&last); err == nil && last != "" {
		if t, err := time.Parse(time.RFC3339, last); err == nil {
			st.LastWrite = &t
		}
	}

	return st, nil
}
