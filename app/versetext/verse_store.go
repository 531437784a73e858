// Package versetext stores and retrieves the text of verses. The reference
// model never holds text; it hands coordinates and ordinals to a Store.
package versetext

import (
	"context"
	"fmt"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
)

// ErrNotFound is returned when a store has no row for a coordinate.
var ErrNotFound = common.ErrNotFound

type VerseText struct {
	Translation string `json:"translation"`
	Book        int    `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	// Ordinal is the omission-aware position in the translation, Genesis 1:1 = 1.
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

func (v VerseText) Coordinate() bible.Coordinate {
	return bible.Coordinate{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse}
}

// ID is the store key, e.g. "KJV:43:3:16".
func (v VerseText) ID() string {
	return verseID(v.Translation, v.Coordinate())
}

func verseID(translation string, c bible.Coordinate) string {
	return fmt.Sprintf("%s:%d:%d:%d", translation, c.Book, c.Chapter, c.Verse)
}

type TranslationRow struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type SearchMode string

const (
	SearchExact  SearchMode = "exact"
	SearchPrefix SearchMode = "prefix"
	SearchFuzzy  SearchMode = "fuzzy"
	SearchRegex  SearchMode = "regex"
)

type SearchParams struct {
	Q    string     `query:"q"`
	Mode SearchMode `query:"mode"`
	// Book restricts results to one book ordinal when non-zero.
	Book  int `query:"book"`
	Limit int `query:"limit"`
}

const DefaultSearchLimit = 100

type HighlightedVerse struct {
	VerseText
	// TextHl is HTML with matches wrapped in <em> or <mark>.
	TextHl string `json:"text_hl,omitempty"`
}

type Store interface {
	Init() error
	// Register makes a translation discoverable. Registering twice updates the name.
	Register(ctx context.Context, code, name string) error
	Translations(ctx context.Context) ([]TranslationRow, error)
	Add(ctx context.Context, translation string, vs []VerseText) error
	// Lookup fails with an error wrapping ErrNotFound when the row is absent.
	Lookup(ctx context.Context, translation string, c bible.Coordinate) (VerseText, error)
	// RangeByOrdinal returns up to count rows starting at ordinal start, in order.
	RangeByOrdinal(ctx context.Context, translation string, start, count int) ([]VerseText, error)
	Chapter(ctx context.Context, translation string, book, chapter int) ([]VerseText, error)
	Search(ctx context.Context, translation string, params SearchParams) ([]HighlightedVerse, error)
}

func notFound(translation string, c bible.Coordinate) error {
	return fmt.Errorf("verse %s: %w", verseID(translation, c), ErrNotFound)
}

func searchLimit(params SearchParams) int {
	if params.Limit <= 0 || params.Limit > DefaultSearchLimit {
		return DefaultSearchLimit
	}
	return params.Limit
}
