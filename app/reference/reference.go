// Package reference parses textual Bible references ("Jn 3:16", "1 Cor 13",
// "Romans 1:1 - 1 Corinthians 2:3") into coordinates of a translation and
// formats coordinates back into canonical text.
package reference

import (
	"errors"
	"strings"
	"unicode"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
)

// Scope records how much of the text a reference named.
type Scope int

const (
	// ScopeVerse is an explicit verse, "John 3:16" or "Jude 5".
	ScopeVerse Scope = iota
	// ScopeChapter is whole-chapter shorthand, "Genesis 1".
	ScopeChapter
	// ScopeBook is a bare book name, "Ruth".
	ScopeBook
)

func (s Scope) String() string {
	switch s {
	case ScopeChapter:
		return "chapter"
	case ScopeBook:
		return "book"
	}
	return "verse"
}

// Reference is a parsed and validated reference. For chapter and book
// scope, Coordinate points at the first verse of the scope.
type Reference struct {
	Translation string           `json:"translation"`
	Coordinate  bible.Coordinate `json:"coordinate"`
	Scope       Scope            `json:"scope"`
}

// Parser turns text into references against the translations of a registry.
// It is immutable and safe for concurrent use.
type Parser struct {
	reg *bible.TranslationRegistry
}

func NewParser(reg *bible.TranslationRegistry) *Parser {
	return &Parser{reg: reg}
}

func (p *Parser) Registry() *bible.TranslationRegistry { return p.reg }

// normalize collapses whitespace, maps dash variants to '-' and strips a
// trailing translation code, which is returned separately.
func (p *Parser) normalize(text string) (string, string) {
	text = strings.Map(func(r rune) rune {
		switch r {
		case '‐', '‑', '‒', '–', '—', '−':
			return '-'
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
	fields := strings.Fields(text)
	if len(fields) > 1 {
		last := strings.Trim(fields[len(fields)-1], "()[]")
		if p.reg.Has(last) {
			return strings.Join(fields[:len(fields)-1], " "), last
		}
	}
	return strings.Join(fields, " "), ""
}

func (p *Parser) bibleFor(explicit, fallback string) (*bible.Bible, error) {
	if explicit != "" {
		return p.reg.Get(explicit)
	}
	return p.reg.Get(fallback)
}

// Parse reads a single reference. A translation code at the end of text
// overrides translation; an empty translation means the registry default.
func (p *Parser) Parse(text, translation string) (Reference, error) {
	clean, suffix := p.normalize(text)
	b, err := p.bibleFor(suffix, translation)
	if err != nil {
		return Reference{}, err
	}
	if clean == "" {
		return Reference{}, &common.ReferenceParseError{Input: text, Err: errors.New("empty reference")}
	}
	g, err := pointParser.ParseString("", clean)
	if err != nil {
		return Reference{}, &common.ReferenceParseError{Input: text, Err: err}
	}
	first, _, scope, err := resolvePoint(b, text, g.Book, g.Chapter)
	if err != nil {
		return Reference{}, err
	}
	return newReference(b, first, scope), nil
}

// ParseRange reads "start-end" forms. A single reference yields start == end
// for verse scope, or the first and last verse of the chapter or book scope.
// An end without a book inherits the start's book; a bare end number is a
// verse when the start named a verse and a chapter otherwise.
func (p *Parser) ParseRange(text, translation string) (start, end Reference, err error) {
	clean, suffix := p.normalize(text)
	b, err := p.bibleFor(suffix, translation)
	if err != nil {
		return Reference{}, Reference{}, err
	}
	if clean == "" {
		return Reference{}, Reference{}, &common.ReferenceParseError{Input: text, Err: errors.New("empty reference")}
	}
	g, err := rangeParser.ParseString("", clean)
	if err != nil {
		return Reference{}, Reference{}, &common.ReferenceParseError{Input: text, Err: err}
	}

	first, last, scope, err := resolvePoint(b, text, g.Start.Book, g.Start.Chapter)
	if err != nil {
		return Reference{}, Reference{}, err
	}
	start = newReference(b, first, scope)
	if g.End == nil {
		return start, newReference(b, last, ScopeVerse), nil
	}

	if g.End.Book != nil {
		_, endLast, _, err := resolvePoint(b, text, *g.End.Book, g.End.Chapter)
		if err != nil {
			return Reference{}, Reference{}, err
		}
		return start, newReference(b, endLast, ScopeVerse), nil
	}

	book := first.Book()
	cp := g.End.Chapter
	var endVerse bible.Verse
	switch {
	case cp.verse() != nil:
		ch, err := book.ChapterByNumber(cp.chapter())
		if err != nil {
			return Reference{}, Reference{}, err
		}
		if endVerse, err = ch.VerseByNumber(*cp.verse()); err != nil {
			return Reference{}, Reference{}, err
		}
	case scope == ScopeVerse:
		if endVerse, err = first.Chapter().VerseByNumber(cp.chapter()); err != nil {
			return Reference{}, Reference{}, err
		}
	default:
		ch, err := book.ChapterByNumber(cp.chapter())
		if err != nil {
			return Reference{}, Reference{}, err
		}
		endVerse = ch.LastVerse()
	}
	return start, newReference(b, endVerse, ScopeVerse), nil
}

func newReference(b *bible.Bible, v bible.Verse, scope Scope) Reference {
	return Reference{Translation: b.Code(), Coordinate: v.Coordinate(), Scope: scope}
}

// resolvePoint validates one parsed point and returns the first and last
// verse it covers.
func resolvePoint(b *bible.Bible, input, bookToken string, cp *chapterPart) (first, last bible.Verse, scope Scope, err error) {
	book, err := b.FindBook(bookToken)
	if err != nil {
		var pe *common.ReferenceParseError
		if errors.As(err, &pe) {
			pe.Input = input
		}
		return first, last, scope, err
	}
	if cp == nil {
		return book.FirstVerse(), book.LastVerse(), ScopeBook, nil
	}

	chapterNum, verseNum := cp.chapter(), cp.verse()
	if verseNum == nil && book.HasOneChapter() {
		// "Jude 5" is verse 5 of the only chapter
		n := chapterNum
		chapterNum, verseNum = 1, &n
	}
	ch, err := book.ChapterByNumber(chapterNum)
	if err != nil {
		return first, last, scope, err
	}
	if verseNum == nil {
		return ch.FirstVerse(), ch.LastVerse(), ScopeChapter, nil
	}
	v, err := ch.VerseByNumber(*verseNum)
	if err != nil {
		return first, last, scope, err
	}
	return v, v, ScopeVerse, nil
}

// Verse resolves r to a verse handle of its translation.
func (p *Parser) Verse(r Reference) (bible.Verse, error) {
	b, err := p.reg.Get(r.Translation)
	if err != nil {
		return bible.Verse{}, err
	}
	return b.Lookup(r.Coordinate)
}

// Bounds returns the first and last verse covered by r, honoring its scope.
func (p *Parser) Bounds(r Reference) (first, last bible.Verse, err error) {
	first, err = p.Verse(r)
	if err != nil {
		return first, last, err
	}
	switch r.Scope {
	case ScopeChapter:
		return first, first.Chapter().LastVerse(), nil
	case ScopeBook:
		return first, first.Book().LastVerse(), nil
	}
	return first, first, nil
}
