package scripture

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mahesh-hegde/bibletext/app/common"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS bibletext_scriptures (
			id TEXT PRIMARY KEY,
			start_verse TEXT NOT NULL,
			end_verse TEXT NOT NULL DEFAULT '',
			version TEXT NOT NULL,
			content_type TEXT NOT NULL,
			object_id INTEGER NOT NULL,
			start_book INTEGER NOT NULL,
			start_chapter INTEGER NOT NULL,
			start_verse_number INTEGER NOT NULL,
			end_book INTEGER,
			end_chapter INTEGER,
			end_verse_number INTEGER,
			display TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS bibletext_scriptures_owner ON bibletext_scriptures (content_type, object_id);
		CREATE INDEX IF NOT EXISTS bibletext_scriptures_order ON bibletext_scriptures (start_book, start_chapter, start_verse_number);
	`)
	if err != nil {
		return fmt.Errorf("failed to create bibletext_scriptures table: %w", err)
	}
	return nil
}

func nullable(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

// Save inserts sc, or updates the row with the same ID.
func (s *SQLiteStore) Save(ctx context.Context, sc Scripture) error {
	if sc.ID == uuid.Nil {
		return errors.New("scripture has no id")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bibletext_scriptures (
			id, start_verse, end_verse, version, content_type, object_id,
			start_book, start_chapter, start_verse_number,
			end_book, end_chapter, end_verse_number, display
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_verse = excluded.start_verse,
			end_verse = excluded.end_verse,
			version = excluded.version,
			content_type = excluded.content_type,
			object_id = excluded.object_id,
			start_book = excluded.start_book,
			start_chapter = excluded.start_chapter,
			start_verse_number = excluded.start_verse_number,
			end_book = excluded.end_book,
			end_chapter = excluded.end_chapter,
			end_verse_number = excluded.end_verse_number,
			display = excluded.display`,
		sc.ID.String(), sc.StartVerse, sc.EndVerse, sc.Version, sc.ContentType, sc.ObjectID,
		sc.StartBook, sc.StartChapter, sc.StartVerseNumber,
		nullable(sc.EndBook), nullable(sc.EndChapter), nullable(sc.EndVerseNumber), sc.Display,
	)
	return err
}

const scriptureColumns = `id, start_verse, end_verse, version, content_type, object_id,
	start_book, start_chapter, start_verse_number, end_book, end_chapter, end_verse_number, display`

const scriptureOrder = " ORDER BY start_book, start_chapter, start_verse_number, id"

func scanScripture(sc interface{ Scan(...any) error }) (Scripture, error) {
	var s Scripture
	var endBook, endChapter, endVerse sql.NullInt64
	err := sc.Scan(&s.ID, &s.StartVerse, &s.EndVerse, &s.Version, &s.ContentType, &s.ObjectID,
		&s.StartBook, &s.StartChapter, &s.StartVerseNumber, &endBook, &endChapter, &endVerse, &s.Display)
	s.EndBook, s.EndChapter, s.EndVerseNumber = int(endBook.Int64), int(endChapter.Int64), int(endVerse.Int64)
	return s, err
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]Scripture, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Scripture
	for rows.Next() {
		sc, err := scanScripture(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (Scripture, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scriptureColumns+" FROM bibletext_scriptures WHERE id = ?", id.String())
	sc, err := scanScripture(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scripture{}, fmt.Errorf("scripture %s: %w", id, common.ErrNotFound)
	}
	return sc, err
}

// ListFor returns the quotations attached to one owner, in canon order.
func (s *SQLiteStore) ListFor(ctx context.Context, contentType string, objectID int64) ([]Scripture, error) {
	return s.query(ctx,
		"SELECT "+scriptureColumns+" FROM bibletext_scriptures WHERE content_type = ? AND object_id = ?"+scriptureOrder,
		contentType, objectID)
}

func (s *SQLiteStore) List(ctx context.Context, f ListFilter) ([]Scripture, error) {
	q := "SELECT " + scriptureColumns + " FROM bibletext_scriptures WHERE 1 = 1"
	var args []any
	if f.Version != "" {
		q += " AND version = ? COLLATE NOCASE"
		args = append(args, f.Version)
	}
	if f.StartBook > 0 {
		q += " AND start_book = ?"
		args = append(args, f.StartBook)
	}
	return s.query(ctx, q+scriptureOrder, args...)
}

func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bibletext_scriptures WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("scripture %s: %w", id, common.ErrNotFound)
	}
	return nil
}
