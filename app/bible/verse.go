package bible

import "fmt"

// Verse is a handle to one present verse of a Bible.
type Verse struct {
	b *Bible
	i int
}

func (v Verse) entry() *verseEntry { return &v.b.verses[v.i] }

func (v Verse) IsZero() bool     { return v.b == nil }
func (v Verse) Bible() *Bible    { return v.b }
func (v Verse) Chapter() Chapter { return Chapter{v.b, v.entry().chapter} }
func (v Verse) Book() Book       { return v.Chapter().Book() }

// Number is the canonical verse number, which skips omitted verses.
func (v Verse) Number() int { return v.entry().number }

// Ordinal is the 1-based position in the whole Bible, omitted verses not counted.
func (v Verse) Ordinal() int { return v.i + 1 }

func (v Verse) Coordinate() Coordinate {
	ch := v.Chapter()
	return Coordinate{Book: ch.entry().book + 1, Chapter: ch.Number(), Verse: v.Number()}
}

// Name is "c:v", or just "v" in a one-chapter book.
func (v Verse) Name() string {
	ch := v.Chapter()
	if ch.Book().HasOneChapter() {
		return fmt.Sprint(v.Number())
	}
	return fmt.Sprintf("%d:%d", ch.Number(), v.Number())
}

// String is the canonical reference, e.g. "John 3:16" or "Jude 5".
func (v Verse) String() string {
	if v.IsZero() {
		return ""
	}
	return v.Book().ShortName() + " " + v.Name()
}

func (v Verse) Next() (Verse, bool) {
	if v.IsZero() || v.i+1 >= len(v.b.verses) {
		return Verse{}, false
	}
	return Verse{v.b, v.i + 1}, true
}

func (v Verse) Prev() (Verse, bool) {
	if v.IsZero() || v.i == 0 {
		return Verse{}, false
	}
	return Verse{v.b, v.i - 1}, true
}

func (v Verse) Equal(o Verse) bool { return v.b == o.b && v.i == o.i }

// Compare orders verses by coordinate. Verses of different Bibles are not comparable.
func (v Verse) Compare(o Verse) (int, error) {
	return compareHandles(v.b, o.b, v.Coordinate(), o.Coordinate())
}

// Less panics on a translation mismatch, like Book.Less.
func (v Verse) Less(o Verse) bool {
	return mustCompare(v.Compare(o)) < 0
}

func mustCompare(c int, err error) int {
	if err != nil {
		panic(err)
	}
	return c
}
