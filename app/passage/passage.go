// Package passage resolves pairs of references into contiguous runs of verses.
package passage

import (
	"errors"
	"iter"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/reference"
)

// Passage is the inclusive run Start..End of one Bible. It does not copy verses.
type Passage struct {
	start bible.Verse
	end   bible.Verse
}

func (p Passage) Start() bible.Verse  { return p.start }
func (p Passage) End() bible.Verse    { return p.end }
func (p Passage) Bible() *bible.Bible { return p.start.Bible() }
func (p Passage) IsZero() bool        { return p.start.IsZero() }

func (p Passage) StartOrdinal() int { return p.start.Ordinal() }
func (p Passage) EndOrdinal() int   { return p.end.Ordinal() }

// Len counts the verses without walking them.
func (p Passage) Len() int {
	if p.IsZero() {
		return 0
	}
	return p.end.Ordinal() - p.start.Ordinal() + 1
}

// All walks the passage in order. Each call starts over.
func (p Passage) All() iter.Seq[bible.Verse] {
	return func(yield func(bible.Verse) bool) {
		if p.IsZero() {
			return
		}
		for v := p.start; ; {
			if !yield(v) || v.Equal(p.end) {
				return
			}
			next, ok := v.Next()
			if !ok {
				return
			}
			v = next
		}
	}
}

func (p Passage) Verses() []bible.Verse {
	out := make([]bible.Verse, 0, p.Len())
	for v := range p.All() {
		out = append(out, v)
	}
	return out
}

func (p Passage) Coordinates() []bible.Coordinate {
	out := make([]bible.Coordinate, 0, p.Len())
	for v := range p.All() {
		out = append(out, v.Coordinate())
	}
	return out
}

// Contains reports whether v belongs to the same Bible and falls inside the passage.
func (p Passage) Contains(v bible.Verse) bool {
	if p.IsZero() || v.Bible() != p.Bible() {
		return false
	}
	n := v.Ordinal()
	return n >= p.start.Ordinal() && n <= p.end.Ordinal()
}

// Chapters lists every chapter the passage touches, in order.
func (p Passage) Chapters() []bible.Chapter {
	if p.IsZero() {
		return nil
	}
	var out []bible.Chapter
	last := p.end.Chapter()
	for ch := p.start.Chapter(); ; {
		out = append(out, ch)
		if ch.Equal(last) {
			return out
		}
		next, ok := ch.Next()
		if !ok {
			return out
		}
		ch = next
	}
}

func (p Passage) String() string {
	if p.IsZero() {
		return ""
	}
	return reference.FormatRange(p.start, p.end)
}

// New builds a passage from two verses of the same Bible.
func New(start, end bible.Verse) (Passage, error) {
	c, err := start.Compare(end)
	if err != nil {
		return Passage{}, &common.PassageRangeError{Start: start.String(), End: end.String(), Err: err}
	}
	if c > 0 {
		return Passage{}, &common.PassageRangeError{Start: start.String(), End: end.String()}
	}
	return Passage{start: start, end: end}, nil
}

// Resolver turns references into passages.
type Resolver struct {
	reg    *bible.TranslationRegistry
	parser *reference.Parser
}

func NewResolver(reg *bible.TranslationRegistry, parser *reference.Parser) *Resolver {
	return &Resolver{reg: reg, parser: parser}
}

func wrap(start, end string, err error) error {
	var pre *common.PassageRangeError
	if errors.As(err, &pre) {
		return err
	}
	return &common.PassageRangeError{Start: start, End: end, Err: err}
}

// Resolve parses both ends in translation. An empty endText selects the
// whole scope of the start: a single verse, a chapter or a book.
func (r *Resolver) Resolve(startText, endText, translation string) (Passage, error) {
	startRef, err := r.parser.Parse(startText, translation)
	if err != nil {
		return Passage{}, wrap(startText, endText, err)
	}
	first, last, err := r.parser.Bounds(startRef)
	if err != nil {
		return Passage{}, wrap(startText, endText, err)
	}
	if endText != "" {
		// the end follows the start's translation
		endRef, err := r.parser.Parse(endText, startRef.Translation)
		if err != nil {
			return Passage{}, wrap(startText, endText, err)
		}
		if endRef.Translation != startRef.Translation {
			return Passage{}, wrap(startText, endText, common.ErrTranslationMismatch)
		}
		if _, last, err = r.parser.Bounds(endRef); err != nil {
			return Passage{}, wrap(startText, endText, err)
		}
	}
	p, err := New(first, last)
	if err != nil {
		return Passage{}, wrap(startText, endText, err)
	}
	return p, nil
}

// ResolveRange resolves a single "start-end" text such as "Romans 1:1-2:3".
func (r *Resolver) ResolveRange(text, translation string) (Passage, error) {
	startRef, endRef, err := r.parser.ParseRange(text, translation)
	if err != nil {
		return Passage{}, wrap(text, "", err)
	}
	first, err := r.parser.Verse(startRef)
	if err != nil {
		return Passage{}, wrap(text, "", err)
	}
	last, err := r.parser.Verse(endRef)
	if err != nil {
		return Passage{}, wrap(text, "", err)
	}
	p, err := New(first, last)
	if err != nil {
		return Passage{}, wrap(first.String(), last.String(), err)
	}
	return p, nil
}

// ResolveCoordinates builds a passage from raw coordinates of b.
func (r *Resolver) ResolveCoordinates(b *bible.Bible, start, end bible.Coordinate) (Passage, error) {
	first, err := b.Lookup(start)
	if err != nil {
		return Passage{}, wrap(start.String(), end.String(), err)
	}
	last, err := b.Lookup(end)
	if err != nil {
		return Passage{}, wrap(start.String(), end.String(), err)
	}
	return New(first, last)
}

// ResolveOrdinals builds a passage from global ordinals of b.
func (r *Resolver) ResolveOrdinals(b *bible.Bible, start, end int) (Passage, error) {
	first, err := b.VerseByOrdinal(start)
	if err != nil {
		return Passage{}, wrap("", "", err)
	}
	last, err := b.VerseByOrdinal(end)
	if err != nil {
		return Passage{}, wrap(first.String(), "", err)
	}
	return New(first, last)
}

func (r *Resolver) Registry() *bible.TranslationRegistry { return r.reg }
func (r *Resolver) Parser() *reference.Parser            { return r.parser }
