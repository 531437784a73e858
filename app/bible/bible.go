// Package bible is the immutable hierarchical index of a translation:
// books, chapters and verses, with navigation, ordering and ordinals.
//
// Every element handle (Book, Chapter, Verse) is a small value holding a
// pointer to its Bible and an offset into flat arrays built once by New.
// The zero value of a handle means "absent" and is what Next/Prev return
// past either end.
package bible

import (
	"fmt"

	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
)

// Info carries the descriptive fields of a translation.
type Info struct {
	Code     string
	Name     string
	Language string
	// ChapterText and PsalmText are fmt templates taking the chapter number.
	ChapterText string
	PsalmText   string

	// Front matter, in Markdown.
	Introduction string
	Preface      string
	TitlePage    string
}

const (
	DefaultChapterText = "Chapter %d"
	DefaultPsalmText   = "Psalm %d"
	psalmsOrdinal      = 19
)

type bookEntry struct {
	def          canon.BookDefinition
	firstChapter int
	numChapters  int
	firstVerse   int
	numVerses    int
}

type chapterEntry struct {
	book       int
	number     int
	firstVerse int
	numVerses  int
	// declared verse count, omissions included
	declared int
}

type verseEntry struct {
	chapter int
	number  int
}

type Bible struct {
	info     Info
	books    []bookEntry
	chapters []chapterEntry
	verses   []verseEntry
	names    map[string]int
}

// New builds the index for one translation from its canon definitions.
func New(info Info, defs []canon.BookDefinition) (*Bible, error) {
	if info.Code == "" {
		return nil, &common.ConfigurationError{Message: "translation code is empty"}
	}
	defs = canon.Clone(defs)
	if err := canon.Validate(info.Code, defs); err != nil {
		return nil, err
	}
	if info.Name == "" {
		info.Name = info.Code
	}
	if info.ChapterText == "" {
		info.ChapterText = DefaultChapterText
	}
	if info.PsalmText == "" {
		info.PsalmText = DefaultPsalmText
	}

	b := &Bible{
		info:  info,
		books: make([]bookEntry, len(defs)),
		names: make(map[string]int),
	}
	for bi, def := range defs {
		be := bookEntry{
			def:          def,
			firstChapter: len(b.chapters),
			numChapters:  len(def.VerseCounts),
			firstVerse:   len(b.verses),
		}
		for ci, count := range def.VerseCounts {
			ce := chapterEntry{
				book:       bi,
				number:     ci + 1,
				firstVerse: len(b.verses),
				declared:   count,
			}
			for v := 1; v <= count; v++ {
				if def.IsOmitted(ci+1, v) {
					continue
				}
				b.verses = append(b.verses, verseEntry{chapter: len(b.chapters), number: v})
			}
			ce.numVerses = len(b.verses) - ce.firstVerse
			b.chapters = append(b.chapters, ce)
		}
		be.numVerses = len(b.verses) - be.firstVerse
		b.books[bi] = be
		b.indexNames(bi, def)
	}
	return b, nil
}

func (b *Bible) indexNames(bi int, def canon.BookDefinition) {
	keys := []string{def.Name, def.ShortName, def.AltName, def.OSIS}
	keys = append(keys, def.Abbreviations...)
	for _, k := range keys {
		for _, folded := range []string{common.FoldName(k), common.CompactName(k)} {
			if folded == "" {
				continue
			}
			// first book in canon order keeps a contested key
			if _, taken := b.names[folded]; !taken {
				b.names[folded] = bi
			}
		}
	}
}

func (b *Bible) Code() string     { return b.info.Code }
func (b *Bible) Name() string     { return b.info.Name }
func (b *Bible) Language() string { return b.info.Language }
func (b *Bible) Info() Info       { return b.info }
func (b *Bible) String() string   { return b.info.Name }

func (b *Bible) NumBooks() int    { return len(b.books) }
func (b *Bible) NumChapters() int { return len(b.chapters) }
func (b *Bible) NumVerses() int   { return len(b.verses) }

// Book returns the n-th book. Negative n counts from the end.
func (b *Bible) Book(n int) (Book, error) {
	i, err := resolveIndex("book", n, len(b.books))
	if err != nil {
		return Book{}, err
	}
	return Book{b, i}, nil
}

// Books slices the book list.
func (b *Bible) Books(span Span) ([]Book, error) {
	idx, err := span.indices(len(b.books))
	if err != nil {
		return nil, err
	}
	out := make([]Book, len(idx))
	for k, i := range idx {
		out[k] = Book{b, i}
	}
	return out, nil
}

func (b *Bible) AllBooks() []Book {
	out := make([]Book, len(b.books))
	for i := range b.books {
		out[i] = Book{b, i}
	}
	return out
}

func (b *Bible) testament(t canon.Testament) []Book {
	var out []Book
	for i, be := range b.books {
		if be.def.Testament == t {
			out = append(out, Book{b, i})
		}
	}
	return out
}

func (b *Bible) OldTestament() []Book { return b.testament(canon.OldTestament) }
func (b *Bible) NewTestament() []Book { return b.testament(canon.NewTestament) }

func (b *Bible) FirstVerse() Verse { return Verse{b, 0} }
func (b *Bible) LastVerse() Verse  { return Verse{b, len(b.verses) - 1} }

// VerseByOrdinal is the inverse of Verse.Ordinal.
func (b *Bible) VerseByOrdinal(n int) (Verse, error) {
	if n < 1 || n > len(b.verses) {
		return Verse{}, &common.IndexError{Kind: "ordinal", Index: n, Len: len(b.verses)}
	}
	return Verse{b, n - 1}, nil
}

// Lookup resolves a coordinate, reporting which part is out of range.
func (b *Bible) Lookup(c Coordinate) (Verse, error) {
	book, err := b.Book(c.Book)
	if err != nil || c.Book < 1 {
		return Verse{}, &common.ReferenceRangeError{Book: b.info.Code, Field: "book", Number: c.Book, Max: len(b.books)}
	}
	ch, err := book.ChapterByNumber(c.Chapter)
	if err != nil {
		return Verse{}, err
	}
	return ch.VerseByNumber(c.Verse)
}

// Coordinate is the canonical (book, chapter, verse) triple. Verse numbers are
// canonical numbers, not logical positions.
type Coordinate struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Book != o.Book:
		return sign(c.Book - o.Book)
	case c.Chapter != o.Chapter:
		return sign(c.Chapter - o.Chapter)
	default:
		return sign(c.Verse - o.Verse)
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Book, c.Chapter, c.Verse)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func compareHandles(a, b *Bible, ca, cb Coordinate) (int, error) {
	if a != b {
		return 0, common.ErrTranslationMismatch
	}
	return ca.Compare(cb), nil
}

// resolveIndex maps a 1-based (or negative, from-the-end) logical index to an offset.
func resolveIndex(kind string, n, length int) (int, error) {
	switch {
	case n > 0 && n <= length:
		return n - 1, nil
	case n < 0 && -n <= length:
		return length + n, nil
	}
	return 0, &common.IndexError{Kind: kind, Index: n, Len: length}
}
