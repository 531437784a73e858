package scripture

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/docstore"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, versetext.Store) {
	t.Helper()
	var bibles []*bible.Bible
	for _, code := range []string{"KJV", "NIV"} {
		defs, err := canon.Load(code)
		require.NoError(t, err)
		b, err := bible.New(bible.Info{Code: code}, defs)
		require.NoError(t, err)
		bibles = append(bibles, b)
	}
	reg, err := bible.NewTranslationRegistry(bibles...)
	require.NoError(t, err)

	db, err := docstore.NewSQLiteDB(t.TempDir(), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	verses := versetext.NewSQLiteStore(db)
	require.NoError(t, verses.Init())
	store := NewSQLiteStore(db)
	require.NoError(t, store.Init())

	vs := versetext.NewService(verses, passage.NewResolver(reg, reference.NewParser(reg)))
	return NewService(store, vs), verses
}

func fields(errs []common.FieldError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestCleanVerseField(t *testing.T) {
	s, _ := newTestService(t)
	tests := []struct {
		in, translation string
		want            string
		wantErr         bool
	}{
		{"jn 3.16", "KJV", "John 3:16", false},
		{"  Romans   1:1 ", "KJV", "Romans 1:1", false},
		{"Jude 5", "KJV", "Jude 5", false},
		{"1 cor 13:4 NIV", "KJV", "1 Corinthians 13:4", false},
		{"John 5:4", "NIV", "", true},
		{"John 3", "KJV", "", true},
		{"Ruth", "KJV", "", true},
		{"Frobnicate 1:1", "KJV", "", true},
		{"", "KJV", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in+"/"+tt.translation, func(t *testing.T) {
			got, err := s.CleanVerseField(tt.in, tt.translation)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	s, _ := newTestService(t)
	tests := []struct {
		name       string
		form       Form
		wantFields []string
	}{
		{"single verse", Form{StartVerse: "jn 3.16", Version: "kjv", ContentType: "sermon", ObjectID: 1}, nil},
		{"passage", Form{StartVerse: "John 3:16", EndVerse: "John 3:18", Version: "KJV", ContentType: "sermon", ObjectID: 1}, nil},
		{"same start and end", Form{StartVerse: "John 3:16", EndVerse: "John 3:16", Version: "KJV", ContentType: "sermon"}, nil},
		{"omitted in version", Form{StartVerse: "John 5:4", Version: "NIV", ContentType: "sermon"}, []string{"start_verse"}},
		{"missing version", Form{StartVerse: "John 3:16", ContentType: "sermon"}, []string{"version"}},
		{"unknown version", Form{StartVerse: "Frobnicate", Version: "ESV", ContentType: "sermon"}, []string{"version"}},
		{"end before start", Form{StartVerse: "John 3:18", EndVerse: "John 3:16", Version: "KJV", ContentType: "sermon"}, []string{"end_verse"}},
		{"every field", Form{StartVerse: "John 3", EndVerse: "John 99:1", Version: "KJV", ObjectID: -1}, []string{"content_type", "object_id", "start_verse", "end_verse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := s.Validate(tt.form)
			assert.Equal(t, tt.wantFields, fields(errs))
			for _, e := range errs {
				assert.NotEmpty(t, e.Message)
			}
		})
	}

	sc, errs := s.Validate(Form{StartVerse: "jn 3.16", EndVerse: "jn 3.18", Version: "kjv", ContentType: "sermon", ObjectID: 7})
	require.Empty(t, errs)
	assert.Equal(t, Scripture{StartVerse: "John 3:16", EndVerse: "John 3:18", Version: "KJV", ContentType: "sermon", ObjectID: 7}, sc)
}

func TestPopulate(t *testing.T) {
	s, _ := newTestService(t)
	tests := []struct {
		sc      Scripture
		want    [6]int
		display string
	}{
		{Scripture{StartVerse: "John 3:16", Version: "KJV"}, [6]int{43, 3, 16, 0, 0, 0}, "John 3:16"},
		{Scripture{StartVerse: "John 3:16", EndVerse: "John 3:18", Version: "KJV"}, [6]int{43, 3, 16, 43, 3, 18}, "John 3:16-18"},
		{Scripture{StartVerse: "Romans 16:25", EndVerse: "1 Corinthians 1:2", Version: "KJV"}, [6]int{45, 16, 25, 46, 1, 2}, "Romans 16:25-1 Corinthians 1:2"},
		{Scripture{StartVerse: "Jude 3", EndVerse: "Jude 5", Version: "KJV"}, [6]int{65, 1, 3, 65, 1, 5}, "Jude 3-5"},
	}
	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			sc := tt.sc
			require.NoError(t, s.Populate(&sc))
			assert.Equal(t, tt.want, [6]int{sc.StartBook, sc.StartChapter, sc.StartVerseNumber, sc.EndBook, sc.EndChapter, sc.EndVerseNumber})
			assert.Equal(t, tt.display, sc.String())
		})
	}

	bad := Scripture{StartVerse: "John 3:99", Version: "KJV"}
	assert.ErrorIs(t, s.Populate(&bad), common.ErrReferenceRange)
}

func TestScriptureString(t *testing.T) {
	assert.Equal(t, "John 3:16", Scripture{StartVerse: "John 3:16"}.String())
	assert.Equal(t, "John 3:16 - John 3:18", Scripture{StartVerse: "John 3:16", EndVerse: "John 3:18"}.String())
	assert.Equal(t, "John 3:16-18", Scripture{StartVerse: "John 3:16", EndVerse: "John 3:18", Display: "John 3:16-18"}.String())
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	forms := []Form{
		{StartVerse: "Romans 8:28", Version: "KJV", ContentType: "sermon", ObjectID: 1},
		{StartVerse: "Genesis 1:1", EndVerse: "Genesis 1:3", Version: "KJV", ContentType: "sermon", ObjectID: 1},
		{StartVerse: "John 3:16", Version: "NIV", ContentType: "sermon", ObjectID: 1},
		{StartVerse: "John 1:1", Version: "KJV", ContentType: "post", ObjectID: 1},
	}
	var created []Scripture
	for _, f := range forms {
		sc, errs, err := s.Create(ctx, f)
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.NotEqual(t, uuid.Nil, sc.ID)
		created = append(created, sc)
	}

	got, err := s.Get(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, created[1], got)
	assert.Equal(t, "Genesis 1:1-3", got.String())

	list, err := s.ListFor(ctx, "sermon", 1)
	require.NoError(t, err)
	var displays []string
	for _, sc := range list {
		displays = append(displays, sc.String())
	}
	assert.Equal(t, []string{"Genesis 1:1-3", "John 3:16", "Romans 8:28"}, displays)

	list, err = s.List(ctx, ListFilter{Version: "kjv"})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = s.List(ctx, ListFilter{StartBook: 43})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = s.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 4)

	_, errs, err := s.Create(ctx, Form{StartVerse: "John 3", Version: "KJV", ContentType: "sermon"})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, []string{"start_verse"}, fields(errs))
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	sc, _, err := s.Create(ctx, Form{StartVerse: "John 3:16", Version: "KJV", ContentType: "sermon", ObjectID: 2})
	require.NoError(t, err)

	updated, errs, err := s.Update(ctx, sc.ID, Form{StartVerse: "John 3:16", EndVerse: "John 3:17", Version: "KJV", ContentType: "sermon", ObjectID: 2})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, sc.ID, updated.ID)

	got, err := s.Get(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "John 3:17", got.EndVerse)
	assert.Equal(t, 17, got.EndVerseNumber)

	_, _, err = s.Update(ctx, uuid.New(), Form{StartVerse: "John 3:16", Version: "KJV", ContentType: "sermon"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Delete(ctx, sc.ID))
	_, err = s.Get(ctx, sc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, sc.ID), common.ErrNotFound)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	s, verses := newTestService(t)
	require.NoError(t, verses.Add(ctx, "KJV", []versetext.VerseText{
		{Translation: "KJV", Book: 43, Chapter: 3, Verse: 16, Ordinal: 26137, Text: "For God so loved the world"},
		{Translation: "KJV", Book: 43, Chapter: 3, Verse: 17, Ordinal: 26138, Text: "For God sent not his Son"},
	}))

	sc, _, err := s.Create(ctx, Form{StartVerse: "John 3:16", EndVerse: "John 3:17", Version: "KJV", ContentType: "sermon", ObjectID: 3})
	require.NoError(t, err)

	q, err := s.Quote(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Passage.Len())
	assert.Equal(t, q.Passage.StartOrdinal(), 26137)
	require.Len(t, q.Verses, 2)
	assert.Equal(t, "For God sent not his Son", q.Verses[1].Text)
}
