package reference

import (
	"testing"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t testing.TB) *Parser {
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
	return NewParser(reg)
}

func TestParse(t *testing.T) {
	p := newParser(t)
	tests := []struct {
		input       string
		translation string
		want        bible.Coordinate
		scope       Scope
		wantTrans   string
	}{
		{"John 3:16", "", bible.Coordinate{43, 3, 16}, ScopeVerse, "KJV"},
		{"Jn 3:16", "KJV", bible.Coordinate{43, 3, 16}, ScopeVerse, "KJV"},
		{"jn. 3.16", "", bible.Coordinate{43, 3, 16}, ScopeVerse, "KJV"},
		{"  John   3:16  ", "", bible.Coordinate{43, 3, 16}, ScopeVerse, "KJV"},
		{"John 3:16 NIV", "KJV", bible.Coordinate{43, 3, 16}, ScopeVerse, "NIV"},
		{"John 3:16 (niv)", "", bible.Coordinate{43, 3, 16}, ScopeVerse, "NIV"},
		{"1 John 1:9", "", bible.Coordinate{62, 1, 9}, ScopeVerse, "KJV"},
		{"I John 1:9", "", bible.Coordinate{62, 1, 9}, ScopeVerse, "KJV"},
		{"1Jn 1:9", "", bible.Coordinate{62, 1, 9}, ScopeVerse, "KJV"},
		{"Gen.1.1", "", bible.Coordinate{1, 1, 1}, ScopeVerse, "KJV"},
		{"Song of Solomon 2:1", "", bible.Coordinate{22, 2, 1}, ScopeVerse, "KJV"},
		{"Jude 5", "", bible.Coordinate{65, 1, 5}, ScopeVerse, "KJV"},
		{"Jude 1:5", "", bible.Coordinate{65, 1, 5}, ScopeVerse, "KJV"},
		{"3 John 14", "", bible.Coordinate{64, 1, 14}, ScopeVerse, "KJV"},
		{"Genesis 1", "", bible.Coordinate{1, 1, 1}, ScopeChapter, "KJV"},
		{"Psalm 23", "", bible.Coordinate{19, 23, 1}, ScopeChapter, "KJV"},
		{"Ruth", "", bible.Coordinate{8, 1, 1}, ScopeBook, "KJV"},
		{"Revelation 22:21", "", bible.Coordinate{66, 22, 21}, ScopeVerse, "KJV"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ref, err := p.Parse(tt.input, tt.translation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.Coordinate)
			assert.Equal(t, tt.scope, ref.Scope)
			assert.Equal(t, tt.wantTrans, ref.Translation)
		})
	}
}

func TestParseErrors(t *testing.T) {
	p := newParser(t)
	tests := []struct {
		input       string
		translation string
		parseErr    bool
		field       string
		omitted     bool
	}{
		{input: "Frobnicate 1:1", parseErr: true},
		{input: "", parseErr: true},
		{input: "3:16", parseErr: true},
		{input: "John 3:16:1", parseErr: true},
		{input: "John 22:1", field: "chapter"},
		{input: "John 3:37", field: "verse"},
		{input: "John 0:1", field: "chapter"},
		{input: "Jude 26", field: "verse"},
		{input: "John 99999999999999999999:1", field: "chapter"},
		{input: "John 3:99999999999999999999", field: "verse"},
		{input: "John 5:4", translation: "NIV", field: "verse", omitted: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.Parse(tt.input, tt.translation)
			require.Error(t, err)
			if tt.parseErr {
				var pe *common.ReferenceParseError
				assert.ErrorAs(t, err, &pe)
				assert.ErrorIs(t, err, common.ErrReferenceParse)
				return
			}
			var re *common.ReferenceRangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.field, re.Field)
			assert.Equal(t, tt.omitted, re.Err != nil)
		})
	}

	_, err := p.Parse("John 3:16", "ESV")
	assert.ErrorIs(t, err, common.ErrUnknownTranslation)

	_, err = p.Parse("Frobnicate 1:1", "")
	var pe *common.ReferenceParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Frobnicate", pe.Token)
}

func TestRoundTripAllVerses(t *testing.T) {
	p := newParser(t)
	for _, code := range []string{"KJV", "NIV"} {
		b := p.Registry().MustGet(code)
		for v, ok := b.FirstVerse(), true; ok; v, ok = v.Next() {
			text, err := Format(b, v.Coordinate())
			require.NoError(t, err)
			ref, err := p.Parse(text, code)
			require.NoError(t, err, text)
			require.Equal(t, v.Coordinate(), ref.Coordinate, text)
			require.Equal(t, ScopeVerse, ref.Scope, text)
		}
	}
}

func TestFormat(t *testing.T) {
	p := newParser(t)
	kjv := p.Registry().MustGet("KJV")

	s, err := Format(kjv, bible.Coordinate{43, 3, 16})
	require.NoError(t, err)
	assert.Equal(t, "John 3:16", s)
	s, err = Format(kjv, bible.Coordinate{65, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, "Jude 5", s)
	_, err = Format(kjv, bible.Coordinate{43, 30, 1})
	assert.ErrorIs(t, err, common.ErrReferenceRange)

	for _, in := range []string{"Genesis 1", "Ruth", "John 3:16"} {
		ref, err := p.Parse(in, "")
		require.NoError(t, err)
		out, err := p.FormatReference(ref)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestParseRange(t *testing.T) {
	p := newParser(t)
	tests := []struct {
		input     string
		start     bible.Coordinate
		end       bible.Coordinate
		formatted string
	}{
		{"Romans 1:1-2:3", bible.Coordinate{45, 1, 1}, bible.Coordinate{45, 2, 3}, "Romans 1:1-2:3"},
		{"Romans 1:1 - 1 Corinthians 2:3", bible.Coordinate{45, 1, 1}, bible.Coordinate{46, 2, 3}, "Romans 1:1-1 Corinthians 2:3"},
		{"Romans 1:1 – 1 Cor 2:3", bible.Coordinate{45, 1, 1}, bible.Coordinate{46, 2, 3}, "Romans 1:1-1 Corinthians 2:3"},
		{"John 3:16-18", bible.Coordinate{43, 3, 16}, bible.Coordinate{43, 3, 18}, "John 3:16-18"},
		{"Genesis 1-2", bible.Coordinate{1, 1, 1}, bible.Coordinate{1, 2, 25}, "Genesis 1-2"},
		{"Genesis 1", bible.Coordinate{1, 1, 1}, bible.Coordinate{1, 1, 31}, "Genesis 1"},
		{"Jude 3-5", bible.Coordinate{65, 1, 3}, bible.Coordinate{65, 1, 5}, "Jude 3-5"},
		{"John 3:16", bible.Coordinate{43, 3, 16}, bible.Coordinate{43, 3, 16}, "John 3:16"},
		{"Romans 1 - 1 Corinthians", bible.Coordinate{45, 1, 1}, bible.Coordinate{46, 16, 24}, "Romans 1:1-1 Corinthians 16:24"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			start, end, err := p.ParseRange(tt.input, "KJV")
			require.NoError(t, err)
			assert.Equal(t, tt.start, start.Coordinate)
			assert.Equal(t, tt.end, end.Coordinate)

			b := p.Registry().MustGet("KJV")
			sv, err := b.Lookup(start.Coordinate)
			require.NoError(t, err)
			ev, err := b.Lookup(end.Coordinate)
			require.NoError(t, err)
			assert.Equal(t, tt.formatted, FormatRange(sv, ev))

			// formatted ranges parse back to the same bounds
			s2, e2, err := p.ParseRange(tt.formatted, "KJV")
			require.NoError(t, err)
			assert.Equal(t, tt.start, s2.Coordinate)
			assert.Equal(t, tt.end, e2.Coordinate)
		})
	}

	_, _, err := p.ParseRange("John 3:16-99", "KJV")
	var re *common.ReferenceRangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "verse", re.Field)

	_, _, err = p.ParseRange("John 3:16 - Frobnicate 1", "KJV")
	assert.ErrorIs(t, err, common.ErrReferenceParse)
}

func TestBounds(t *testing.T) {
	p := newParser(t)
	ref, err := p.Parse("Psalm 117", "")
	require.NoError(t, err)
	first, last, err := p.Bounds(ref)
	require.NoError(t, err)
	assert.Equal(t, "Psalms 117:1", first.String())
	assert.Equal(t, "Psalms 117:2", last.String())
}
