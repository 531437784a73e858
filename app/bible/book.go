package bible

import (
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
)

// Book is a handle to one book of a Bible.
type Book struct {
	b *Bible
	i int
}

func (k Book) entry() *bookEntry { return &k.b.books[k.i] }

func (k Book) IsZero() bool  { return k.b == nil }
func (k Book) Bible() *Bible { return k.b }

// Number is the canon ordinal, starting at 1.
func (k Book) Number() int { return k.i + 1 }

func (k Book) Name() string                     { return k.entry().def.Name }
func (k Book) ShortName() string                { return k.entry().def.ShortName }
func (k Book) AltName() string                  { return k.entry().def.AltName }
func (k Book) OSIS() string                     { return k.entry().def.OSIS }
func (k Book) Testament() canon.Testament       { return k.entry().def.Testament }
func (k Book) Abbreviations() []string          { return append([]string(nil), k.entry().def.Abbreviations...) }
func (k Book) Definition() canon.BookDefinition { return k.entry().def }

func (k Book) NumChapters() int    { return k.entry().numChapters }
func (k Book) NumVerses() int      { return k.entry().numVerses }
func (k Book) HasOneChapter() bool { return k.entry().numChapters == 1 }

func (k Book) String() string {
	if k.IsZero() {
		return ""
	}
	return k.Name()
}

// Chapter returns the n-th chapter. Negative n counts from the end.
func (k Book) Chapter(n int) (Chapter, error) {
	e := k.entry()
	i, err := resolveIndex("chapter", n, e.numChapters)
	if err != nil {
		return Chapter{}, err
	}
	return Chapter{k.b, e.firstChapter + i}, nil
}

// ChapterByNumber looks a chapter up by its canonical number and reports
// a range error naming the book when it does not exist.
func (k Book) ChapterByNumber(num int) (Chapter, error) {
	e := k.entry()
	if num < 1 || num > e.numChapters {
		return Chapter{}, &common.ReferenceRangeError{Book: k.Name(), Field: "chapter", Number: num, Max: e.numChapters}
	}
	return Chapter{k.b, e.firstChapter + num - 1}, nil
}

func (k Book) Chapters(span Span) ([]Chapter, error) {
	e := k.entry()
	idx, err := span.indices(e.numChapters)
	if err != nil {
		return nil, err
	}
	out := make([]Chapter, len(idx))
	for n, i := range idx {
		out[n] = Chapter{k.b, e.firstChapter + i}
	}
	return out, nil
}

func (k Book) FirstChapter() Chapter { return Chapter{k.b, k.entry().firstChapter} }
func (k Book) LastChapter() Chapter {
	e := k.entry()
	return Chapter{k.b, e.firstChapter + e.numChapters - 1}
}

func (k Book) FirstVerse() Verse { return Verse{k.b, k.entry().firstVerse} }
func (k Book) LastVerse() Verse {
	e := k.entry()
	return Verse{k.b, e.firstVerse + e.numVerses - 1}
}

func (k Book) Next() (Book, bool) {
	if k.IsZero() || k.i+1 >= len(k.b.books) {
		return Book{}, false
	}
	return Book{k.b, k.i + 1}, true
}

func (k Book) Prev() (Book, bool) {
	if k.IsZero() || k.i == 0 {
		return Book{}, false
	}
	return Book{k.b, k.i - 1}, true
}

func (k Book) Equal(o Book) bool { return k.b == o.b && k.i == o.i }

func (k Book) Compare(o Book) (int, error) {
	return compareHandles(k.b, o.b, Coordinate{Book: k.Number()}, Coordinate{Book: o.Number()})
}

// Less panics when the books come from different translations; use Compare
// to get the error instead.
func (k Book) Less(o Book) bool {
	return mustCompare(k.Compare(o)) < 0
}
