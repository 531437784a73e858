package server

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/markdown"
	"github.com/mahesh-hegde/bibletext/app/versetext"
)

// Fragments are small templ components used from the page templates:
// {{books .OT}}, {{chapters .Book}}, {{chapter .}}, {{verse .}}, {{passage .}} and {{results .}}.

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func booksComponent(books []bible.Book) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<ul class="books">`); err != nil {
			return err
		}
		for _, bk := range books {
			if err := writef(w, `<li><a href="%s" title="%s">%s</a></li>`,
				templ.EscapeString(markdown.BookURL(bk)), templ.EscapeString(bk.AltName()), templ.EscapeString(bk.Name())); err != nil {
				return err
			}
		}
		return writef(w, `</ul>`)
	})
}

func chaptersComponent(bk bible.Book) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<ol class="chapters">`); err != nil {
			return err
		}
		chs, err := bk.Chapters(bible.All)
		if err != nil {
			return err
		}
		for _, ch := range chs {
			if err := writef(w, `<li><a href="%s">%d</a></li>`, templ.EscapeString(markdown.ChapterURL(ch)), ch.Number()); err != nil {
				return err
			}
		}
		return writef(w, `</ol>`)
	})
}

func versesComponent(b *bible.Bible, vs []versetext.VerseText) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, vt := range vs {
			v, err := b.Lookup(vt.Coordinate())
			if err != nil {
				return err
			}
			if err := writef(w, `<span class="verse" id="v%d"><a class="verse-num" href="%s">%d</a> %s</span> `,
				v.Number(), templ.EscapeString(markdown.VerseURL(v)), v.Number(), templ.EscapeString(vt.Text)); err != nil {
				return err
			}
		}
		return nil
	})
}

func chapterComponent(cd *versetext.ChapterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<section class="chapter"><h2>%s</h2><p>`, templ.EscapeString(cd.Chapter.Name())); err != nil {
			return err
		}
		if err := versesComponent(cd.Chapter.Bible(), cd.Verses).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</p></section>`)
	})
}

func verseComponent(vd *versetext.VerseData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<blockquote class="verse"><p>%s</p><cite><a href="%s">%s</a></cite></blockquote>`,
			templ.EscapeString(vd.Text.Text), templ.EscapeString(markdown.VerseURL(vd.Verse)), templ.EscapeString(vd.Verse.String()))
	})
}

func passageComponent(pd *versetext.PassageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := pd.Passage
		if err := writef(w, `<blockquote class="passage"><p>`); err != nil {
			return err
		}
		if err := versesComponent(p.Bible(), pd.Verses).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</p><cite><a href="%s">%s</a> (%s)</cite></blockquote>`,
			templ.EscapeString(markdown.PassageURL(p)), templ.EscapeString(p.String()), templ.EscapeString(p.Bible().Code()))
	})
}

func searchResultsComponent(sd *versetext.SearchData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<ol class="results">`); err != nil {
			return err
		}
		for _, hv := range sd.Results {
			v, err := sd.Bible.Lookup(hv.Coordinate())
			if err != nil {
				continue
			}
			// TextHl is already escaped by the store
			if err := writef(w, `<li><a href="%s">%s</a> %s</li>`,
				templ.EscapeString(markdown.VerseURL(v)), templ.EscapeString(v.String()), hv.TextHl); err != nil {
				return err
			}
		}
		return writef(w, `</ol>`)
	})
}

// toHTML adapts a component constructor for use in a template.FuncMap.
func toHTML[T any](component func(T) templ.Component) func(T) (template.HTML, error) {
	return func(v T) (template.HTML, error) {
		return templ.ToGoHTML(context.Background(), component(v))
	}
}

func fragmentFuncs() template.FuncMap {
	return template.FuncMap{
		"books":    toHTML(booksComponent),
		"chapters": toHTML(chaptersComponent),
		"chapter":  toHTML(chapterComponent),
		"verse":    toHTML(verseComponent),
		"passage":  toHTML(passageComponent),
		"results":  toHTML(searchResultsComponent),
	}
}
