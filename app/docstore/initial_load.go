package docstore

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/config"
	"github.com/mahesh-hegde/bibletext/app/versetext"
)

// --- bleve mappings ---
func GetBleveIndexMappings() mapping.IndexMapping {
	indexMapping := mapping.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer("ascii_folding", map[string]any{
		"type":         custom.Name,
		"char_filters": []string{asciifolding.Name},
		"tokenizer":    unicode.Name,
		"token_filters": []string{
			lowercase.Name,
		},
	})
	if err != nil {
		slog.Error("error when defining index", "err", err)
		os.Exit(1)
	}

	// ----- VerseInDB mapping -----
	verseMapping := mapping.NewDocumentMapping()
	vField := mapping.NewKeywordFieldMapping()
	vField.Store = true
	vField.Index = false
	verseMapping.AddFieldMappingsAt("v", vField) // stored only

	verseMapping.AddFieldMappingsAt("_type", mapping.NewKeywordFieldMapping())
	verseMapping.AddFieldMappingsAt("translation", mapping.NewKeywordFieldMapping())
	verseMapping.AddFieldMappingsAt("book", mapping.NewNumericFieldMapping())
	verseMapping.AddFieldMappingsAt("chapter", mapping.NewNumericFieldMapping())
	verseMapping.AddFieldMappingsAt("ordinal", mapping.NewNumericFieldMapping())

	tField := mapping.NewTextFieldMapping()
	tField.Analyzer = "standard"
	verseMapping.AddFieldMappingsAt("text", tField)

	// -- text as keyword for regex search --
	tkField := mapping.NewKeywordFieldMapping()
	tkField.Store = false
	verseMapping.AddFieldMappingsAt("text_k", tkField)

	// -- text ascii folded --
	tfField := mapping.NewTextFieldMapping()
	tfField.Analyzer = "ascii_folding"
	tfField.Store = false
	verseMapping.AddFieldMappingsAt("text_f", tfField)

	// ----- TranslationInDB mapping -----
	translationMapping := mapping.NewDocumentMapping()
	translationMapping.AddFieldMappingsAt("_type", mapping.NewKeywordFieldMapping())
	translationMapping.AddFieldMappingsAt("code", mapping.NewKeywordFieldMapping())
	translationMapping.AddFieldMappingsAt("name", mapping.NewTextFieldMapping())

	indexMapping.AddDocumentMapping("verse", verseMapping)
	indexMapping.AddDocumentMapping("translation", translationMapping)
	indexMapping.TypeField = "_type"

	return indexMapping
}

// --- data loading ---
const batchSize = 1024

// loadVerseData reads a JSONL file of VerseText rows into store. Only the
// coordinate and text of each row are trusted; ordinals come from the index.
func loadVerseData(ctx context.Context, store versetext.Store, b *bible.Bible, dataFile string) error {
	file, err := os.Open(dataFile)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", dataFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	entries := make([]versetext.VerseText, 0, batchSize)
	seen := make(map[int]bool)
	skipped := 0

	for scanner.Scan() {
		var entry versetext.VerseText
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			slog.Warn("failed to unmarshal line", "err", err)
			skipped++
			continue
		}
		v, err := b.Lookup(entry.Coordinate())
		if err != nil {
			slog.Warn("skipping verse outside the canon", "translation", b.Code(), "coordinate", entry.Coordinate().String(), "err", err)
			skipped++
			continue
		}
		if seen[v.Ordinal()] {
			slog.Warn("skipping duplicate verse", "translation", b.Code(), "verse", v.String())
			skipped++
			continue
		}
		seen[v.Ordinal()] = true
		entry.Translation = b.Code()
		entry.Ordinal = v.Ordinal()
		entries = append(entries, entry)

		if len(entries) >= batchSize {
			slog.Info("ingesting verse batch", "size", len(entries))
			if err := store.Add(ctx, b.Code(), entries); err != nil {
				return fmt.Errorf("failed to execute batch: %w", err)
			}
			entries = make([]versetext.VerseText, 0, batchSize)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	if len(entries) > 0 {
		slog.Info("executing final batch", "size", len(entries))
		if err := store.Add(ctx, b.Code(), entries); err != nil {
			return fmt.Errorf("failed to execute final batch: %w", err)
		}
	}
	slog.Info("Successfully loaded data", "file", dataFile, "loaded", len(seen), "skipped", skipped)
	if missing := b.NumVerses() - len(seen); missing > 0 {
		slog.Warn("translation has verses without text", "translation", b.Code(), "missing", missing)
	}
	return nil
}

// LoadInitialData creates the schema, loads every configured translation and
// registers it in the translation table.
func LoadInitialData(ctx context.Context, store versetext.Store, conf *config.BibleTextConfig, reg *bible.TranslationRegistry) error {
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to init verse store: %w", err)
	}
	for _, t := range conf.Translations {
		b, err := reg.Get(t.Code)
		if err != nil {
			return err
		}
		if t.DataFile != "" {
			slog.Info("Loading translation", "code", b.Code())
			if err := loadVerseData(ctx, store, b, path.Join(conf.DataDir, t.DataFile)); err != nil {
				return fmt.Errorf("failed to load translation %s: %w", b.Code(), err)
			}
		}
		if err := store.Register(ctx, b.Code(), b.Name()); err != nil {
			return fmt.Errorf("failed to register translation %s: %w", b.Code(), err)
		}
	}
	return nil
}

// DocStore holds the opened stores. Verse text lives in the configured kind
// of store; quotations always live in SQLite.
type DocStore struct {
	Verses versetext.Store
	DB     *sql.DB
	index  bleve.Index
}

func (d *DocStore) Close() error {
	var errs []error
	if d.index != nil {
		errs = append(errs, d.index.Close())
	}
	if d.DB != nil {
		errs = append(errs, d.DB.Close())
	}
	return errors.Join(errs...)
}

func initBleve(ctx context.Context, dataDir string, conf *config.BibleTextConfig, reg *bible.TranslationRegistry) (bleve.Index, error) {
	dbPath := filepath.Join(dataDir, bleveDir)
	_, err := os.Stat(dbPath)

	if errors.Is(err, os.ErrNotExist) {
		slog.Info("Creating new bleve index", "path", dbPath)
		index, err := bleve.New(dbPath, GetBleveIndexMappings())
		if err != nil {
			return nil, fmt.Errorf("failed to create new bleve index: %w", err)
		}
		slog.Info("Loading initial data into the index...")
		if err := LoadInitialData(ctx, versetext.NewBleveStore(index, conf.Fuzziness), conf, reg); err != nil {
			index.Close()
			// Cleanup created index on load failure
			os.RemoveAll(dbPath)
			return nil, fmt.Errorf("failed to load data: %w", err)
		}
		slog.Info("Initial data loaded successfully.")
		if err := index.Close(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open bleve index: %w", err)
	}
	index, err := bleve.OpenUsing(dbPath, map[string]any{"read_only": true})
	if err != nil {
		return nil, err
	}
	slog.Info("Opened existing bleve index", "path", dbPath)
	return index, nil
}

func initSQLite(ctx context.Context, dataDir string, conf *config.BibleTextConfig, reg *bible.TranslationRegistry, loadVerses bool) (*sql.DB, error) {
	dbPath := filepath.Join(dataDir, sqliteFile)
	_, statErr := os.Stat(dbPath)
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("error checking sqlite db: %w", statErr)
	}
	db, err := NewSQLiteDB(dataDir, false)
	if err != nil {
		return nil, fmt.Errorf("error creating sqlite db: %w", err)
	}
	if !loadVerses || statErr == nil {
		return db, nil
	}

	store := versetext.NewSQLiteStore(db)
	if err := LoadInitialData(ctx, store, conf, reg); err != nil {
		db.Close()
		os.Remove(dbPath)
		return nil, fmt.Errorf("error loading initial data into sqlite: %w", err)
	}
	slog.Info("Optimizing FTS indexes")
	if _, err := db.Exec("INSERT INTO bibletext_verses_fts(bibletext_verses_fts) VALUES('optimize')"); err != nil {
		slog.Warn("failed to optimize verse fts", "err", err)
	}
	return db, nil
}

// InitStore opens the store of the given kind under dataDir, loading the
// configured data on first run.
func InitStore(kind, dataDir string, conf *config.BibleTextConfig, reg *bible.TranslationRegistry) (*DocStore, error) {
	ctx := context.Background()
	switch kind {
	case "bleve":
		index, err := initBleve(ctx, dataDir, conf, reg)
		if err != nil {
			return nil, err
		}
		db, err := initSQLite(ctx, dataDir, conf, reg, false)
		if err != nil {
			index.Close()
			return nil, err
		}
		return &DocStore{Verses: versetext.NewBleveStore(index, conf.Fuzziness), DB: db, index: index}, nil
	case "sqlite":
		db, err := initSQLite(ctx, dataDir, conf, reg, true)
		if err != nil {
			return nil, err
		}
		return &DocStore{Verses: versetext.NewSQLiteStore(db), DB: db}, nil
	}
	return nil, fmt.Errorf("unknown store: %s", kind)
}
