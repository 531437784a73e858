package server

import (
	"embed"
	"html/template"
	"strings"

	"github.com/mahesh-hegde/bibletext/app/markdown"
)

//go:embed template/*.html
var templateFs embed.FS

//go:embed static
var staticFs embed.FS

func MustParseTemplates(hfs *HashFS) *template.Template {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"sub": func(a, b int) int {
			return a - b
		},
		"static":     func(p string) string { return "/static/" + hfs.FormatWithHash(p) },
		"bibleURL":   markdown.BibleURL,
		"bookURL":    markdown.BookURL,
		"chapterURL": markdown.ChapterURL,
		"verseURL":   markdown.VerseURL,
		"passageURL": markdown.PassageURL,
		"safeHTML":   func(s string) template.HTML { return template.HTML(s) },
	}
	for k, v := range fragmentFuncs() {
		funcMap[k] = v
	}

	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFs, "template/*.html"))
}
