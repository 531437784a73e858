package versetext

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

var _ Store = &SQLiteStore{}

func (s *SQLiteStore) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS bibletext_translations (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bibletext_verses (
			id INTEGER PRIMARY KEY,
			translation TEXT NOT NULL,
			book_id INTEGER NOT NULL,
			chapter_id INTEGER NOT NULL,
			verse_id INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			text TEXT NOT NULL,
			UNIQUE (translation, book_id, chapter_id, verse_id),
			UNIQUE (translation, ordinal)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create bibletext_verses table: %w", err)
	}

	// rowid of the fts table is the id of bibletext_verses
	_, err = s.db.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS bibletext_verses_fts USING fts5(
			text,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create bibletext_verses_fts table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Register(ctx context.Context, code, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bibletext_translations (code, name) VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET name = excluded.name`, code, name)
	return err
}

func (s *SQLiteStore) Translations(ctx context.Context) ([]TranslationRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT code, name FROM bibletext_translations ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TranslationRow
	for rows.Next() {
		var t TranslationRow
		if err := rows.Scan(&t.Code, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Add(ctx context.Context, translation string, vs []VerseText) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bibletext_verses (translation, book_id, chapter_id, verse_id, ordinal, text)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ftsStmt, err := tx.PrepareContext(ctx, "INSERT INTO bibletext_verses_fts (rowid, text) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer ftsStmt.Close()

	for _, v := range vs {
		res, err := stmt.ExecContext(ctx, translation, v.Book, v.Chapter, v.Verse, v.Ordinal, v.Text)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", verseID(translation, v.Coordinate()), err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		// highlight() output is served as HTML, so the indexed copy is escaped
		if _, err := ftsStmt.ExecContext(ctx, id, html.EscapeString(v.Text)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const verseColumns = "translation, book_id, chapter_id, verse_id, ordinal, text"

func scanVerse(sc interface{ Scan(...any) error }) (VerseText, error) {
	var v VerseText
	err := sc.Scan(&v.Translation, &v.Book, &v.Chapter, &v.Verse, &v.Ordinal, &v.Text)
	return v, err
}

func (s *SQLiteStore) queryVerses(ctx context.Context, query string, args ...any) ([]VerseText, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []VerseText
	for rows.Next() {
		v, err := scanVerse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Lookup(ctx context.Context, translation string, c bible.Coordinate) (VerseText, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+verseColumns+" FROM bibletext_verses WHERE translation = ? AND book_id = ? AND chapter_id = ? AND verse_id = ?",
		translation, c.Book, c.Chapter, c.Verse)
	v, err := scanVerse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return VerseText{}, notFound(translation, c)
	}
	return v, err
}

func (s *SQLiteStore) RangeByOrdinal(ctx context.Context, translation string, start, count int) ([]VerseText, error) {
	if count <= 0 {
		return nil, nil
	}
	return s.queryVerses(ctx,
		"SELECT "+verseColumns+" FROM bibletext_verses WHERE translation = ? AND ordinal >= ? AND ordinal < ? ORDER BY ordinal",
		translation, start, start+count)
}

func (s *SQLiteStore) Chapter(ctx context.Context, translation string, book, chapter int) ([]VerseText, error) {
	return s.queryVerses(ctx,
		"SELECT "+verseColumns+" FROM bibletext_verses WHERE translation = ? AND book_id = ? AND chapter_id = ? ORDER BY verse_id",
		translation, book, chapter)
}

// ftsPhrase quotes q as a single FTS5 phrase.
func ftsPhrase(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, `""`) + `"`
}

func (s *SQLiteStore) Search(ctx context.Context, translation string, params SearchParams) ([]HighlightedVerse, error) {
	q := strings.TrimSpace(params.Q)
	if q == "" {
		return nil, nil
	}
	args := []any{translation}
	bookClause := ""
	if params.Book > 0 {
		bookClause = " AND v.book_id = ?"
		args = append(args, params.Book)
	}
	limit := fmt.Sprintf(" LIMIT %d", searchLimit(params))

	var fullQuery string
	switch params.Mode {
	case SearchRegex:
		fullQuery = `SELECT ` + prefixed("v", verseColumns) + `, NULL FROM bibletext_verses AS v
			WHERE v.translation = ?` + bookClause + ` AND v.text REGEXP ? ORDER BY v.ordinal` + limit
		args = append(args, q)
	case SearchExact, SearchPrefix, "":
		ftsQuery := ftsPhrase(q)
		if params.Mode == SearchPrefix {
			ftsQuery += "*"
		}
		fullQuery = `SELECT ` + prefixed("v", verseColumns) + `, highlight(bibletext_verses_fts, 0, '<em>', '</em>')
			FROM bibletext_verses_fts JOIN bibletext_verses AS v ON bibletext_verses_fts.rowid = v.id
			WHERE v.translation = ?` + bookClause + ` AND bibletext_verses_fts MATCH ?
			ORDER BY bibletext_verses_fts.rank, v.ordinal` + limit
		args = append(args, ftsQuery)
	case SearchFuzzy:
		return nil, common.NewUserVisibleError(422, "fuzzy search is not supported with the sqlite store")
	default:
		return nil, common.NewUserVisibleError(422, "Unsupported search mode")
	}

	rows, err := s.db.QueryContext(ctx, fullQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite search failed: %w", err)
	}
	defer rows.Close()

	var out []HighlightedVerse
	for rows.Next() {
		var hv HighlightedVerse
		var hl sql.NullString
		v := &hv.VerseText
		if err := rows.Scan(&v.Translation, &v.Book, &v.Chapter, &v.Verse, &v.Ordinal, &v.Text, &hl); err != nil {
			return nil, err
		}
		if hl.Valid {
			hv.TextHl = hl.String
		} else {
			hv.TextHl = html.EscapeString(v.Text)
		}
		out = append(out, hv)
	}
	return out, rows.Err()
}

func prefixed(alias, columns string) string {
	cols := strings.Split(columns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}
