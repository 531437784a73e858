package versetext_test

import (
	"context"
	"testing"
	"time"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	versetext.Store
	lookups, ranges, chapters int
}

func (c *countingStore) Lookup(ctx context.Context, translation string, co bible.Coordinate) (versetext.VerseText, error) {
	c.lookups++
	return c.Store.Lookup(ctx, translation, co)
}

func (c *countingStore) RangeByOrdinal(ctx context.Context, translation string, start, count int) ([]versetext.VerseText, error) {
	c.ranges++
	return c.Store.RangeByOrdinal(ctx, translation, start, count)
}

func (c *countingStore) Chapter(ctx context.Context, translation string, book, chapter int) ([]versetext.VerseText, error) {
	c.chapters++
	return c.Store.Chapter(ctx, translation, book, chapter)
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	b := kjv(t)
	inner := &countingStore{Store: loadedStore(t, newSQLiteStore(t), b)}
	s := versetext.NewCachedStore(inner, time.Minute)

	john316 := bible.Coordinate{Book: 43, Chapter: 3, Verse: 16}
	for range 3 {
		v, err := s.Lookup(ctx, "KJV", john316)
		require.NoError(t, err)
		assert.Equal(t, "KJV:43:3:16", v.ID())
	}
	assert.Equal(t, 1, inner.lookups)

	for range 2 {
		vs, err := s.RangeByOrdinal(ctx, "KJV", 1, 3)
		require.NoError(t, err)
		assert.Len(t, vs, 3)
		vs, err = s.Chapter(ctx, "KJV", 43, 3)
		require.NoError(t, err)
		assert.Len(t, vs, 3)
	}
	assert.Equal(t, 1, inner.ranges)
	assert.Equal(t, 1, inner.chapters)
	assert.Equal(t, 3, s.ItemCount())

	// misses are not cached
	missing := bible.Coordinate{Book: 43, Chapter: 3, Verse: 19}
	for range 2 {
		_, err := s.Lookup(ctx, "KJV", missing)
		assert.ErrorIs(t, err, versetext.ErrNotFound)
	}
	assert.Equal(t, 3, inner.lookups)

	// writes invalidate
	v, _ := b.Lookup(missing)
	require.NoError(t, s.Add(ctx, "KJV", []versetext.VerseText{{
		Translation: "KJV", Book: 43, Chapter: 3, Verse: 19, Ordinal: v.Ordinal(),
		Text: "And this is the condemnation, that light is come into the world,",
	}}))
	assert.Equal(t, 0, s.ItemCount())

	got, err := s.Lookup(ctx, "KJV", missing)
	require.NoError(t, err)
	assert.Contains(t, got.Text, "condemnation")

	vs, err := s.Chapter(ctx, "KJV", 43, 3)
	require.NoError(t, err)
	assert.Len(t, vs, 4)
	assert.Equal(t, 2, inner.chapters)
}

func TestCachedStoreTranslations(t *testing.T) {
	ctx := context.Background()
	s := versetext.NewCachedStore(newSQLiteStore(t), time.Minute)
	require.NoError(t, s.Init())
	require.NoError(t, s.Register(ctx, "KJV", "King James Version"))

	ts, err := s.Translations(ctx)
	require.NoError(t, err)
	assert.Len(t, ts, 1)

	require.NoError(t, s.Register(ctx, "NIV", "New International Version"))
	ts, err = s.Translations(ctx)
	require.NoError(t, err)
	assert.Len(t, ts, 2)
}

func TestCachedStoreCopiesSlices(t *testing.T) {
	ctx := context.Background()
	s := versetext.NewCachedStore(loadedStore(t, newSQLiteStore(t), kjv(t)), time.Minute)

	vs, err := s.Chapter(ctx, "KJV", 43, 3)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	vs[0].Text = "changed"

	vs, err = s.Chapter(ctx, "KJV", 43, 3)
	require.NoError(t, err)
	assert.Contains(t, vs[0].Text, "For God so loved")
	vs[0].Text = "changed again"

	vs, err = s.RangeByOrdinal(ctx, "KJV", 1, 1)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	vs[0].Text = "changed"

	vs, err = s.RangeByOrdinal(ctx, "KJV", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "In the beginning God created the heaven and the earth.", vs[0].Text)

	vs, err = s.Chapter(ctx, "KJV", 43, 3)
	require.NoError(t, err)
	assert.Contains(t, vs[0].Text, "For God so loved")
}
