package versetext_test

import (
	"context"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/docstore"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/stretchr/testify/require"
)

var sampleVerses = []struct {
	c    bible.Coordinate
	text string
}{
	{bible.Coordinate{Book: 1, Chapter: 1, Verse: 1}, "In the beginning God created the heaven and the earth."},
	{bible.Coordinate{Book: 1, Chapter: 1, Verse: 2}, "And the earth was without form, and void; and darkness was upon the face of the deep. And the Spirit of God moved upon the face of the waters."},
	{bible.Coordinate{Book: 1, Chapter: 1, Verse: 3}, "And God said, Let there be light: and there was light."},
	{bible.Coordinate{Book: 43, Chapter: 3, Verse: 16}, "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
	{bible.Coordinate{Book: 43, Chapter: 3, Verse: 17}, "For God sent not his Son into the world to condemn the world; but that the world through him might be saved."},
	{bible.Coordinate{Book: 43, Chapter: 3, Verse: 18}, "He that believeth on him is not condemned: but he that believeth not is condemned already, because he hath not believed in the name of the only begotten Son of God."},
	{bible.Coordinate{Book: 45, Chapter: 16, Verse: 25}, "Now to him that is of power to stablish you according to my gospel,"},
	{bible.Coordinate{Book: 45, Chapter: 16, Verse: 26}, "But now is made manifest, and by the scriptures of the prophets,"},
	{bible.Coordinate{Book: 45, Chapter: 16, Verse: 27}, "To God only wise, be glory through Jesus Christ for ever. Amen."},
	{bible.Coordinate{Book: 46, Chapter: 1, Verse: 1}, "Paul, called to be an apostle of Jesus Christ through the will of God,"},
	{bible.Coordinate{Book: 46, Chapter: 1, Verse: 2}, "Unto the church of God which is at Corinth,"},
	{bible.Coordinate{Book: 66, Chapter: 22, Verse: 21}, "The grace of our Lord Jesus Christ be with you all. Amen."},
}

func kjv(t testing.TB) *bible.Bible {
	t.Helper()
	defs, err := canon.Load("KJV")
	require.NoError(t, err)
	b, err := bible.New(bible.Info{Code: "KJV", Name: "King James Version"}, defs)
	require.NoError(t, err)
	return b
}

func sampleTexts(t testing.TB, b *bible.Bible) []versetext.VerseText {
	t.Helper()
	out := make([]versetext.VerseText, 0, len(sampleVerses))
	for _, s := range sampleVerses {
		v, err := b.Lookup(s.c)
		require.NoError(t, err)
		out = append(out, versetext.VerseText{
			Translation: b.Code(),
			Book:        s.c.Book,
			Chapter:     s.c.Chapter,
			Verse:       s.c.Verse,
			Ordinal:     v.Ordinal(),
			Text:        s.text,
		})
	}
	return out
}

func newSQLiteStore(t testing.TB) versetext.Store {
	t.Helper()
	db, err := docstore.NewSQLiteDB(t.TempDir(), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return versetext.NewSQLiteStore(db)
}

func newBleveStore(t testing.TB) versetext.Store {
	t.Helper()
	idx, err := bleve.NewMemOnly(docstore.GetBleveIndexMappings())
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return versetext.NewBleveStore(idx, 1)
}

// loadedStore returns an initialized store with the sample verses of b.
func loadedStore(t testing.TB, s versetext.Store, b *bible.Bible) versetext.Store {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Init())
	require.NoError(t, s.Register(ctx, b.Code(), b.Name()))
	require.NoError(t, s.Add(ctx, b.Code(), sampleTexts(t, b)))
	return s
}

func newService(t testing.TB, s versetext.Store, b *bible.Bible) *versetext.Service {
	t.Helper()
	reg, err := bible.NewTranslationRegistry(b)
	require.NoError(t, err)
	return versetext.NewService(s, passage.NewResolver(reg, reference.NewParser(reg)))
}
