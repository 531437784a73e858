package docstore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
)

const (
	sqliteFile = "bibletext.db"
	bleveDir   = "bibletext.bleve"
)

// NewSQLiteDB opens <dataDir>/bibletext.db. A read-only handle opens the file
// immutable and never takes locks. A writable one waits on busy locks.
func NewSQLiteDB(dataDir string, readonly bool) (*sql.DB, error) {
	dbPath := filepath.Join(dataDir, sqliteFile)
	dsn := sqliteDSN(dbPath, readonly)
	slog.Info("opening SQLite DB", "dbPath", dbPath, "readonly", readonly, "driver", SQLiteDriverName)
	db, err := sql.Open(SQLiteDriverName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	return db, nil
}
