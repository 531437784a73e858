package reference

import (
	"fmt"

	"github.com/mahesh-hegde/bibletext/app/bible"
)

// Format renders a coordinate canonically: "<short name> c:v", or
// "<short name> v" for one-chapter books.
func Format(b *bible.Bible, c bible.Coordinate) (string, error) {
	v, err := b.Lookup(c)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// FormatReference renders r according to its scope.
func (p *Parser) FormatReference(r Reference) (string, error) {
	v, err := p.Verse(r)
	if err != nil {
		return "", err
	}
	switch r.Scope {
	case ScopeChapter:
		return FormatChapter(v.Chapter()), nil
	case ScopeBook:
		return v.Book().ShortName(), nil
	}
	return v.String(), nil
}

// FormatChapter renders "Genesis 1", or the bare short name for one-chapter books.
func FormatChapter(ch bible.Chapter) string {
	return ch.String()
}

// FormatRange renders the shortest canonical form of start..end:
// "John 3:16", "John 3:16-18", "Romans 1:1-2:3", "Jude 3-5",
// "Genesis 1-2" for whole chapters, and
// "Romans 1:1-1 Corinthians 2:3" across books.
func FormatRange(start, end bible.Verse) string {
	if start.Equal(end) {
		return start.String()
	}
	sb, eb := start.Book(), end.Book()
	if !sb.Equal(eb) {
		return start.String() + "-" + end.String()
	}
	sc, ec := start.Chapter(), end.Chapter()
	if sb.HasOneChapter() {
		return fmt.Sprintf("%s %d-%d", sb.ShortName(), start.Number(), end.Number())
	}
	if start.Equal(sc.FirstVerse()) && end.Equal(ec.LastVerse()) {
		if sc.Equal(ec) {
			return sc.String()
		}
		return fmt.Sprintf("%s %d-%d", sb.ShortName(), sc.Number(), ec.Number())
	}
	if sc.Equal(ec) {
		return fmt.Sprintf("%s-%d", start.String(), end.Number())
	}
	return fmt.Sprintf("%s-%s", start.String(), end.Name())
}
