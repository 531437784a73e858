package versetext_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mahesh-hegde/bibletext/app/versetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containerOSIS = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="KJV">
    <header><work osisWork="KJV"><title>King James Version</title></work></header>
    <div type="book" osisID="John">
      <chapter osisID="John.3">
        <title type="chapter">CHAPTER 3.</title>
        <verse osisID="John.3.16">For God so <w lemma="strong:G25">loved</w> the world,<note type="study">Greek: agapao</note>
          that he gave his only begotten Son</verse>
        <verse osisID="John.3.17">For God sent not his Son into the world to condemn the world</verse>
        <verse osisID="John.3.99">No such verse</verse>
      </chapter>
    </div>
    <div type="book" osisID="Frob">
      <chapter osisID="Frob.1"><verse osisID="Frob.1.1">Unknown book</verse></chapter>
    </div>
  </osisText>
</osis>`

const milestoneOSIS = `<?xml version="1.0" encoding="UTF-8"?>
<osis>
  <osisText>
    <div type="book" osisID="Gen">
      <chapter sID="Gen.1" osisID="Gen.1"/>
      <p>
        <verse sID="Gen.1.1" osisID="Gen.1.1"/>In the beginning God created the heaven and the earth.<verse eID="Gen.1.1"/>
        <verse sID="Gen.1.2" osisID="Gen.1.2"/>And the earth was without form, and void;
      </p>
      <p>
        and darkness <note>Or, emptiness</note>was upon the face of the deep.<verse eID="Gen.1.2"/>
        <verse sID="Gen.1.3" osisID="Gen.1.3"/>And God said, Let there be light: and there was light.<verse eID="Gen.1.3"/>
      </p>
      <chapter eID="Gen.1"/>
    </div>
  </osisText>
</osis>`

func TestParseOSISContainerVerses(t *testing.T) {
	b := kjv(t)
	vs, err := versetext.ParseOSIS(strings.NewReader(containerOSIS), b)
	require.NoError(t, err)
	require.Len(t, vs, 2)

	assert.Equal(t, "KJV:43:3:16", vs[0].ID())
	assert.Equal(t, "For God so loved the world, that he gave his only begotten Son", vs[0].Text)
	john316, _ := b.Lookup(vs[0].Coordinate())
	assert.Equal(t, john316.Ordinal(), vs[0].Ordinal)

	assert.Equal(t, "KJV:43:3:17", vs[1].ID())
	assert.Equal(t, vs[0].Ordinal+1, vs[1].Ordinal)
}

func TestParseOSISMilestones(t *testing.T) {
	b := kjv(t)
	vs, err := versetext.ParseOSIS(strings.NewReader(milestoneOSIS), b)
	require.NoError(t, err)
	require.Len(t, vs, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{vs[0].Ordinal, vs[1].Ordinal, vs[2].Ordinal})
	assert.Equal(t, "In the beginning God created the heaven and the earth.", vs[0].Text)
	assert.Equal(t, "And the earth was without form, and void; and darkness was upon the face of the deep.", vs[1].Text)
	assert.Equal(t, "And God said, Let there be light: and there was light.", vs[2].Text)
}

func TestParseOSISMalformed(t *testing.T) {
	_, err := versetext.ParseOSIS(strings.NewReader(`<osis><verse osisID="Gen.1.1"></osis>`), kjv(t))
	assert.Error(t, err)
}

func TestOSISTitle(t *testing.T) {
	title, err := versetext.OSISTitle(strings.NewReader(containerOSIS))
	require.NoError(t, err)
	assert.Equal(t, "King James Version", title)
}

func TestConvertOSIS(t *testing.T) {
	b := kjv(t)
	var out bytes.Buffer
	n, err := versetext.ConvertOSIS(strings.NewReader(milestoneOSIS), &out, b)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sc := bufio.NewScanner(&out)
	var lines []versetext.VerseText
	for sc.Scan() {
		var v versetext.VerseText
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		lines = append(lines, v)
	}
	require.Len(t, lines, 3)
	assert.Equal(t, "KJV", lines[0].Translation)
	assert.Equal(t, "KJV:1:1:3", lines[2].ID())
}
