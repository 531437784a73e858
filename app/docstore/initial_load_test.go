package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/config"
	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kjvJSONL = `{"book":1,"chapter":1,"verse":1,"text":"In the beginning God created the heaven and the earth."}
{"book":1,"chapter":1,"verse":2,"ordinal":999,"text":"And the earth was without form, and void."}
not json
{"book":1,"chapter":1,"verse":99,"text":"Out of range"}
{"book":70,"chapter":1,"verse":1,"text":"No such book"}
{"book":1,"chapter":1,"verse":1,"text":"Duplicate"}
{"book":43,"chapter":3,"verse":16,"text":"For God so loved the world"}
`

func setup(t *testing.T) (string, *config.BibleTextConfig, *bible.TranslationRegistry) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kjv.jsonl"), []byte(kjvJSONL), 0o644))
	conf := &config.BibleTextConfig{
		DataDir: dir,
		Translations: []config.TranslationDefn{
			{Code: "KJV", Name: "King James Version", DataFile: "kjv.jsonl"},
			{Code: "NIV", Name: "New International Version"},
		},
	}
	reg, err := conf.BuildRegistry(canon.Builtin())
	require.NoError(t, err)
	return dir, conf, reg
}

func TestInitStore(t *testing.T) {
	for _, kind := range []string{"sqlite", "bleve"} {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			dir, conf, reg := setup(t)

			ds, err := InitStore(kind, dir, conf, reg)
			require.NoError(t, err)

			v, err := ds.Verses.Lookup(ctx, "KJV", bible.Coordinate{Book: 1, Chapter: 1, Verse: 2})
			require.NoError(t, err)
			// ordinals in the data file are recomputed
			assert.Equal(t, 2, v.Ordinal)

			v, err = ds.Verses.Lookup(ctx, "KJV", bible.Coordinate{Book: 1, Chapter: 1, Verse: 1})
			require.NoError(t, err)
			assert.Contains(t, v.Text, "In the beginning")

			john, err := reg.MustGet("KJV").Lookup(bible.Coordinate{Book: 43, Chapter: 3, Verse: 16})
			require.NoError(t, err)
			vs, err := ds.Verses.RangeByOrdinal(ctx, "KJV", john.Ordinal(), 1)
			require.NoError(t, err)
			require.Len(t, vs, 1)
			assert.Equal(t, "KJV:43:3:16", vs[0].ID())

			_, err = ds.Verses.Lookup(ctx, "KJV", bible.Coordinate{Book: 1, Chapter: 1, Verse: 99})
			assert.ErrorIs(t, err, versetext.ErrNotFound)

			ts, err := ds.Verses.Translations(ctx)
			require.NoError(t, err)
			assert.Equal(t, []versetext.TranslationRow{
				{Code: "KJV", Name: "King James Version"},
				{Code: "NIV", Name: "New International Version"},
			}, ts)
			require.NoError(t, ds.Close())

			// a second start reuses the existing store
			ds, err = InitStore(kind, dir, conf, reg)
			require.NoError(t, err)
			defer ds.Close()
			vs, err = ds.Verses.Chapter(ctx, "KJV", 1, 1)
			require.NoError(t, err)
			assert.Len(t, vs, 2)
		})
	}
}

func TestInitStoreUnknownKind(t *testing.T) {
	dir, conf, reg := setup(t)
	_, err := InitStore("postgres", dir, conf, reg)
	assert.ErrorContains(t, err, "unknown store")
}

func TestInitStoreMissingDataFile(t *testing.T) {
	dir, conf, reg := setup(t)
	conf.Translations[0].DataFile = "missing.jsonl"
	_, err := InitStore("sqlite", dir, conf, reg)
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, sqliteFile))
	assert.True(t, os.IsNotExist(statErr), "failed load removes the database")
}

func TestMatchRegexp(t *testing.T) {
	tests := []struct {
		re, s string
		want  bool
	}{
		{"begotten Son", "his only begotten Son", true},
		{"^his", "his only begotten Son", true},
		{"^Son", "his only begotten Son", false},
		{"only.begotten", "only\nbegotten", true},
	}
	for _, tt := range tests {
		t.Run(tt.re, func(t *testing.T) {
			got, err := matchRegexp(tt.re, tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := matchRegexp("(", "x")
	assert.Error(t, err)
}
