package bible

import (
	"fmt"

	"github.com/mahesh-hegde/bibletext/app/common"
)

// Chapter is a handle to one chapter of a Bible.
type Chapter struct {
	b *Bible
	i int
}

func (c Chapter) entry() *chapterEntry { return &c.b.chapters[c.i] }

func (c Chapter) IsZero() bool  { return c.b == nil }
func (c Chapter) Bible() *Bible { return c.b }
func (c Chapter) Book() Book    { return Book{c.b, c.entry().book} }
func (c Chapter) Number() int   { return c.entry().number }

// NumVerses counts present verses only.
func (c Chapter) NumVerses() int { return c.entry().numVerses }

// DeclaredVerses is the canon verse count, omitted verses included.
func (c Chapter) DeclaredVerses() int { return c.entry().declared }

func (c Chapter) Coordinate() Coordinate {
	return Coordinate{Book: c.entry().book + 1, Chapter: c.Number()}
}

// Name is the display heading: "Chapter 3", or "Psalm 23" in Psalms.
func (c Chapter) Name() string {
	tmpl := c.b.info.ChapterText
	if c.entry().book+1 == psalmsOrdinal {
		tmpl = c.b.info.PsalmText
	}
	return fmt.Sprintf(tmpl, c.Number())
}

// String is the short book name, followed by the number unless the book has one chapter.
func (c Chapter) String() string {
	if c.IsZero() {
		return ""
	}
	book := c.Book()
	if book.HasOneChapter() {
		return book.ShortName()
	}
	return fmt.Sprintf("%s %d", book.ShortName(), c.Number())
}

// Verse returns the n-th present verse. Negative n counts from the end.
func (c Chapter) Verse(n int) (Verse, error) {
	e := c.entry()
	i, err := resolveIndex("verse", n, e.numVerses)
	if err != nil {
		return Verse{}, err
	}
	return Verse{c.b, e.firstVerse + i}, nil
}

// VerseByNumber looks a verse up by its canonical number.
// Omitted verses fail with an error wrapping common.ErrOmitted.
func (c Chapter) VerseByNumber(num int) (Verse, error) {
	e := c.entry()
	book := c.Book()
	if num < 1 || num > e.declared {
		return Verse{}, &common.ReferenceRangeError{Book: book.Name(), Field: "verse", Number: num, Max: e.declared}
	}
	// verses are stored in number order, so the target is at or before num-1
	for i := min(num-1, e.numVerses-1); i >= 0; i-- {
		v := c.b.verses[e.firstVerse+i]
		if v.number == num {
			return Verse{c.b, e.firstVerse + i}, nil
		}
		if v.number < num {
			break
		}
	}
	return Verse{}, &common.ReferenceRangeError{
		Book: fmt.Sprintf("%s %d", book.Name(), c.Number()), Field: "verse", Number: num, Max: e.declared, Err: common.ErrOmitted,
	}
}

func (c Chapter) Verses(span Span) ([]Verse, error) {
	e := c.entry()
	idx, err := span.indices(e.numVerses)
	if err != nil {
		return nil, err
	}
	out := make([]Verse, len(idx))
	for n, i := range idx {
		out[n] = Verse{c.b, e.firstVerse + i}
	}
	return out, nil
}

func (c Chapter) FirstVerse() Verse { return Verse{c.b, c.entry().firstVerse} }
func (c Chapter) LastVerse() Verse {
	e := c.entry()
	return Verse{c.b, e.firstVerse + e.numVerses - 1}
}

// Next crosses into the following book after a book's last chapter.
func (c Chapter) Next() (Chapter, bool) {
	if c.IsZero() || c.i+1 >= len(c.b.chapters) {
		return Chapter{}, false
	}
	return Chapter{c.b, c.i + 1}, true
}

func (c Chapter) Prev() (Chapter, bool) {
	if c.IsZero() || c.i == 0 {
		return Chapter{}, false
	}
	return Chapter{c.b, c.i - 1}, true
}

func (c Chapter) Equal(o Chapter) bool { return c.b == o.b && c.i == o.i }

func (c Chapter) Compare(o Chapter) (int, error) {
	if c.b != o.b {
		return 0, common.ErrTranslationMismatch
	}
	return c.Coordinate().Compare(o.Coordinate()), nil
}

// Less panics on a translation mismatch, like Book.Less.
func (c Chapter) Less(o Chapter) bool {
	return mustCompare(c.Compare(o)) < 0
}
