package passage

import (
	"slices"
	"testing"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/canon"
	"github.com/mahesh-hegde/bibletext/app/common"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t testing.TB) *Resolver {
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
	return NewResolver(reg, reference.NewParser(reg))
}

func TestResolve(t *testing.T) {
	r := newResolver(t)
	tests := []struct {
		start, end  string
		translation string
		length      int
		formatted   string
	}{
		{"Romans 1:1", "Romans 1:3", "", 3, "Romans 1:1-3"},
		{"John 3:16", "", "", 1, "John 3:16"},
		{"John 3:16", "John 3:16", "", 1, "John 3:16"},
		{"Genesis 1", "", "", 31, "Genesis 1"},
		{"Genesis 1", "Genesis 2", "", 56, "Genesis 1-2"},
		{"Romans 16:25", "1 Corinthians 1:2", "", 5, "Romans 16:25-1 Corinthians 1:2"},
		{"Obadiah", "", "", 21, "Obadiah 1-21"},
		{"John 5:3", "John 5:5", "NIV", 2, "John 5:3-5"},
		{"John 5:3", "John 5:5", "KJV", 3, "John 5:3-5"},
		{"Malachi 4:6", "Matthew 1:1", "", 2, "Malachi 4:6-Matthew 1:1"},
	}
	for _, tt := range tests {
		t.Run(tt.start+" "+tt.end+" "+tt.translation, func(t *testing.T) {
			p, err := r.Resolve(tt.start, tt.end, tt.translation)
			require.NoError(t, err)
			assert.Equal(t, tt.length, p.Len())
			assert.Len(t, p.Verses(), tt.length)
			assert.Equal(t, tt.formatted, p.String())
			assert.Equal(t, p.EndOrdinal()-p.StartOrdinal()+1, p.Len())
		})
	}
}

func TestResolveSelfIsOneVerse(t *testing.T) {
	r := newResolver(t)
	b := r.Registry().MustGet("KJV")
	for _, n := range []int{1, 500, 23145, 23146, 31102} {
		v, err := b.VerseByOrdinal(n)
		require.NoError(t, err)
		p, err := r.Resolve(v.String(), v.String(), "KJV")
		require.NoError(t, err)
		assert.Equal(t, 1, p.Len())
		assert.True(t, p.Start().Equal(p.End()))
	}
}

func TestResolveErrors(t *testing.T) {
	r := newResolver(t)
	tests := []struct {
		name       string
		start, end string
		cause      error
	}{
		{"end before start", "Romans 1:3", "Romans 1:1", nil},
		{"bad start book", "Frobnicate 1:1", "", common.ErrReferenceParse},
		{"bad end book", "John 1:1", "Frobnicate 1:1", common.ErrReferenceParse},
		{"bad verse", "John 3:99", "", common.ErrReferenceRange},
		{"mixed translations", "John 1:1 KJV", "John 1:2 NIV", common.ErrTranslationMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.start, tt.end, "")
			require.Error(t, err)
			var pre *common.PassageRangeError
			require.ErrorAs(t, err, &pre)
			assert.ErrorIs(t, err, common.ErrPassageRange)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestResolveRange(t *testing.T) {
	r := newResolver(t)
	p, err := r.ResolveRange("Romans 1:1-2:3", "")
	require.NoError(t, err)
	assert.Equal(t, 32+3, p.Len())
	chapters := p.Chapters()
	require.Len(t, chapters, 2)
	assert.Equal(t, "Romans 1", chapters[0].String())
	assert.Equal(t, "Romans 2", chapters[1].String())

	p, err = r.ResolveRange("Romans 16:27 - 1 Corinthians 1:1", "")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []bible.Coordinate{{45, 16, 27}, {46, 1, 1}}, p.Coordinates())

	_, err = r.ResolveRange("Romans 2:1-1:1", "")
	assert.ErrorIs(t, err, common.ErrPassageRange)
}

func TestPassageIteration(t *testing.T) {
	r := newResolver(t)
	p, err := r.ResolveRange("John 3:16-18", "")
	require.NoError(t, err)

	var names []string
	for v := range p.All() {
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"3:16", "3:17", "3:18"}, names)
	// restartable
	assert.Len(t, slices.Collect(p.All()), 3)

	for v := range p.All() {
		if v.Number() == 17 {
			break
		}
	}

	b := p.Bible()
	inside, _ := b.Lookup(bible.Coordinate{43, 3, 17})
	outside, _ := b.Lookup(bible.Coordinate{43, 3, 19})
	assert.True(t, p.Contains(inside))
	assert.False(t, p.Contains(outside))

	niv := r.Registry().MustGet("NIV")
	twin, _ := niv.Lookup(bible.Coordinate{43, 3, 17})
	assert.False(t, p.Contains(twin))
}

func TestResolveCoordinatesAndOrdinals(t *testing.T) {
	r := newResolver(t)
	b := r.Registry().MustGet("KJV")

	p, err := r.ResolveCoordinates(b, bible.Coordinate{66, 22, 20}, bible.Coordinate{66, 22, 21})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 31102, p.EndOrdinal())

	_, err = r.ResolveCoordinates(b, bible.Coordinate{66, 23, 1}, bible.Coordinate{66, 23, 2})
	assert.ErrorIs(t, err, common.ErrPassageRange)
	assert.ErrorIs(t, err, common.ErrReferenceRange)

	p, err = r.ResolveOrdinals(b, 1, 31)
	require.NoError(t, err)
	assert.Equal(t, "Genesis 1", p.String())

	_, err = r.ResolveOrdinals(b, 0, 3)
	assert.ErrorIs(t, err, common.ErrIndex)

	var zero Passage
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Verses())
	assert.Equal(t, "", zero.String())
}
