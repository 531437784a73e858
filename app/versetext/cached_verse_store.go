package versetext

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/patrickmn/go-cache"
)

// CachedStore memoizes reads of another Store. Any write flushes the cache.
// Slices are copied in and out, so callers may modify what they get.
type CachedStore struct {
	Store
	c *cache.Cache
}

var _ Store = &CachedStore{}

func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	return &CachedStore{Store: inner, c: cache.New(ttl, 2*ttl)}
}

func (s *CachedStore) Register(ctx context.Context, code, name string) error {
	defer s.c.Flush()
	return s.Store.Register(ctx, code, name)
}

func (s *CachedStore) Add(ctx context.Context, translation string, vs []VerseText) error {
	defer s.c.Flush()
	return s.Store.Add(ctx, translation, vs)
}

func (s *CachedStore) Translations(ctx context.Context) ([]TranslationRow, error) {
	const key = "translations"
	if v, ok := s.c.Get(key); ok {
		return slices.Clone(v.([]TranslationRow)), nil
	}
	ts, err := s.Store.Translations(ctx)
	if err != nil {
		return nil, err
	}
	s.c.SetDefault(key, slices.Clone(ts))
	return ts, nil
}

func (s *CachedStore) Lookup(ctx context.Context, translation string, c bible.Coordinate) (VerseText, error) {
	key := "v:" + verseID(translation, c)
	if v, ok := s.c.Get(key); ok {
		return v.(VerseText), nil
	}
	v, err := s.Store.Lookup(ctx, translation, c)
	if err != nil {
		return v, err
	}
	s.c.SetDefault(key, v)
	return v, nil
}

func (s *CachedStore) RangeByOrdinal(ctx context.Context, translation string, start, count int) ([]VerseText, error) {
	key := fmt.Sprintf("r:%s:%d:%d", translation, start, count)
	if v, ok := s.c.Get(key); ok {
		return slices.Clone(v.([]VerseText)), nil
	}
	vs, err := s.Store.RangeByOrdinal(ctx, translation, start, count)
	if err != nil {
		return nil, err
	}
	s.c.SetDefault(key, slices.Clone(vs))
	return vs, nil
}

func (s *CachedStore) Chapter(ctx context.Context, translation string, book, chapter int) ([]VerseText, error) {
	key := fmt.Sprintf("c:%s:%d:%d", translation, book, chapter)
	if v, ok := s.c.Get(key); ok {
		return slices.Clone(v.([]VerseText)), nil
	}
	vs, err := s.Store.Chapter(ctx, translation, book, chapter)
	if err != nil {
		return nil, err
	}
	s.c.SetDefault(key, slices.Clone(vs))
	return vs, nil
}

// ItemCount is the number of cached entries.
func (s *CachedStore) ItemCount() int {
	return s.c.ItemCount()
}
