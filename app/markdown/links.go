package markdown

import (
	"fmt"
	"net/url"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/passage"
)

// URL paths of the reader pages. Books are addressed by OSIS id.

func BibleURL(b *bible.Bible) string {
	return "/" + url.PathEscape(b.Code())
}

func BookURL(bk bible.Book) string {
	return fmt.Sprintf("%s/%s", BibleURL(bk.Bible()), url.PathEscape(bk.OSIS()))
}

func ChapterURL(ch bible.Chapter) string {
	return fmt.Sprintf("%s/%d", BookURL(ch.Book()), ch.Number())
}

func VerseURL(v bible.Verse) string {
	return fmt.Sprintf("%s/%d", ChapterURL(v.Chapter()), v.Number())
}

func PassageURL(p passage.Passage) string {
	return BibleURL(p.Bible()) + "/passage?q=" + url.QueryEscape(p.String())
}
