package versetext

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
)

// VerseData is a single verse with its text and neighbours.
type VerseData struct {
	Verse bible.Verse
	Text  VerseText
	// Prev and Next are zero at either end of the Bible.
	Prev bible.Verse
	Next bible.Verse
}

type ChapterData struct {
	Chapter bible.Chapter
	Verses  []VerseText
	Prev    bible.Chapter
	Next    bible.Chapter
}

type PassageData struct {
	Passage passage.Passage
	Verses  []VerseText
	// Missing counts verses of the passage the store has no text for.
	Missing int
}

type SearchData struct {
	Bible   *bible.Bible
	Results []HighlightedVerse
	Search  SearchParams
}

// Service joins the reference model to a Store.
type Service struct {
	store    Store
	resolver *passage.Resolver
}

func NewService(store Store, resolver *passage.Resolver) *Service {
	return &Service{store: store, resolver: resolver}
}

func (s *Service) Store() Store                         { return s.store }
func (s *Service) Resolver() *passage.Resolver          { return s.resolver }
func (s *Service) Parser() *reference.Parser            { return s.resolver.Parser() }
func (s *Service) Registry() *bible.TranslationRegistry { return s.resolver.Registry() }

// Neighbours returns the previous and next verse, crossing chapter and book
// boundaries. Either is zero at the ends of the Bible.
func (s *Service) Neighbours(v bible.Verse) (prev, next bible.Verse) {
	prev, _ = v.Prev()
	next, _ = v.Next()
	return prev, next
}

// Verse fetches the text of the first verse of ref.
func (s *Service) Verse(ctx context.Context, ref reference.Reference) (*VerseData, error) {
	v, err := s.Parser().Verse(ref)
	if err != nil {
		return nil, err
	}
	return s.VerseAt(ctx, v)
}

func (s *Service) VerseAt(ctx context.Context, v bible.Verse) (*VerseData, error) {
	text, err := s.store.Lookup(ctx, v.Bible().Code(), v.Coordinate())
	if err != nil {
		return nil, err
	}
	prev, next := s.Neighbours(v)
	return &VerseData{Verse: v, Text: text, Prev: prev, Next: next}, nil
}

// Passage fetches the text of p with a single ordinal range query.
func (s *Service) Passage(ctx context.Context, p passage.Passage) ([]VerseText, error) {
	if p.IsZero() {
		return nil, nil
	}
	return s.store.RangeByOrdinal(ctx, p.Bible().Code(), p.StartOrdinal(), p.Len())
}

// Lookup resolves a range text such as "Romans 1:1-2:3" and fetches its text.
func (s *Service) Lookup(ctx context.Context, text, translation string) (*PassageData, error) {
	p, err := s.resolver.ResolveRange(text, translation)
	if err != nil {
		return nil, err
	}
	vs, err := s.Passage(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", p, err)
	}
	missing := p.Len() - len(vs)
	if missing > 0 {
		slog.Warn("store is missing verses of passage", "passage", p.String(), "translation", p.Bible().Code(), "missing", missing)
	}
	return &PassageData{Passage: p, Verses: vs, Missing: missing}, nil
}

func (s *Service) Chapter(ctx context.Context, ch bible.Chapter) (*ChapterData, error) {
	c := ch.Coordinate()
	vs, err := s.store.Chapter(ctx, ch.Bible().Code(), c.Book, c.Chapter)
	if err != nil {
		return nil, err
	}
	prev, _ := ch.Prev()
	next, _ := ch.Next()
	return &ChapterData{Chapter: ch, Verses: vs, Prev: prev, Next: next}, nil
}

func (s *Service) Search(ctx context.Context, translation string, params SearchParams) (*SearchData, error) {
	b, err := s.Registry().Get(translation)
	if err != nil {
		return nil, err
	}
	if params.Mode == "" {
		params.Mode = SearchExact
	}
	results, err := s.store.Search(ctx, b.Code(), params)
	if err != nil {
		var uve *common.UserVisibleError
		if errors.As(err, &uve) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	return &SearchData{Bible: b, Results: results, Search: params}, nil
}
