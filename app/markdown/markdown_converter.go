// Package markdown renders the front matter of a translation. Code spans
// holding a reference, such as `John 3:16`, become links to the reader.
package markdown

import (
	"bytes"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/bible"
	"github.com/mahesh-hegde/bibletext/app/passage"
	"github.com/mahesh-hegde/bibletext/app/reference"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var translationContextKey = parser.NewContextKey()

// MarkdownConverter holds state for converting front matter.
type MarkdownConverter struct {
	resolver *passage.Resolver
	goldmark goldmark.Markdown
}

func NewMarkdownConverter(resolver *passage.Resolver) *MarkdownConverter {
	mc := &MarkdownConverter{resolver: resolver}
	mc.goldmark = goldmark.New(
		goldmark.WithExtensions(&referenceExtension{mc: mc}),
	)
	return mc
}

// ConvertToHTML converts markdown to HTML, resolving references in the given translation.
func (mc *MarkdownConverter) ConvertToHTML(src string, translation string) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	ctx.Set(translationContextKey, translation)
	if err := mc.goldmark.Convert([]byte(src), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FrontMatter is the rendered introduction, preface and title page of a Bible.
type FrontMatter struct {
	Introduction string
	Preface      string
	TitlePage    string
}

func (mc *MarkdownConverter) FrontMatter(b *bible.Bible) (FrontMatter, error) {
	var fm FrontMatter
	info := b.Info()
	for _, f := range []struct {
		src string
		dst *string
	}{
		{info.Introduction, &fm.Introduction},
		{info.Preface, &fm.Preface},
		{info.TitlePage, &fm.TitlePage},
	} {
		if f.src == "" {
			continue
		}
		html, err := mc.ConvertToHTML(f.src, b.Code())
		if err != nil {
			return fm, err
		}
		*f.dst = html
	}
	return fm, nil
}

// link returns the reader URL and canonical text of a reference, or ok=false.
func (mc *MarkdownConverter) link(refText, translation string) (dest, label string, ok bool) {
	start, end, err := mc.resolver.Parser().ParseRange(refText, translation)
	if err != nil {
		return "", "", false
	}
	if start.Coordinate == end.Coordinate || start.Scope != reference.ScopeVerse {
		first, err := mc.resolver.Parser().Verse(start)
		if err != nil {
			return "", "", false
		}
		last, err := mc.resolver.Parser().Verse(end)
		if err != nil {
			return "", "", false
		}
		switch {
		case start.Scope == reference.ScopeBook && last.Equal(first.Book().LastVerse()):
			return BookURL(first.Book()), first.Book().Name(), true
		case start.Scope == reference.ScopeChapter && last.Equal(first.Chapter().LastVerse()):
			return ChapterURL(first.Chapter()), reference.FormatChapter(first.Chapter()), true
		case first.Equal(last):
			return VerseURL(first), first.String(), true
		}
	}
	p, err := mc.resolver.ResolveRange(refText, translation)
	if err != nil {
		return "", "", false
	}
	return PassageURL(p), p.String(), true
}

type referenceExtension struct {
	mc *MarkdownConverter
}

func (e *referenceExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&referenceASTTransformer{mc: e.mc}, 100),
		),
	)
}

type referenceASTTransformer struct {
	mc *MarkdownConverter
}

// Transform replaces code spans that parse as references with links, and
// all other code spans with plain text.
func (t *referenceASTTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	translation, _ := pc.Get(translationContextKey).(string)

	var spans []*ast.CodeSpan
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindCodeSpan {
			spans = append(spans, n.(*ast.CodeSpan))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, n := range spans {
		var sb strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if txt, ok := c.(*ast.Text); ok {
				sb.Write(txt.Segment.Value(reader.Source()))
			}
		}
		raw := sb.String()
		parent := n.Parent()
		dest, label, ok := t.mc.link(strings.TrimSpace(raw), translation)
		if !ok {
			parent.ReplaceChild(parent, n, ast.NewString([]byte(raw)))
			continue
		}
		link := ast.NewLink()
		link.Destination = []byte(dest)
		link.SetAttributeString("class", []byte("ref"))
		link.AppendChild(link, ast.NewString([]byte(label)))
		parent.ReplaceChild(parent, n, link)
	}
}
