package server

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/bibletext/app/bible"
)

// page is what layout.html receives. Page selects the body template.
type page struct {
	Page         string
	Data         any
	Instance     string
	Translations []*bible.Bible
}

type TemplateRenderer struct {
	tmpl         *template.Template
	instance     string
	translations []*bible.Bible
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	err := t.tmpl.ExecuteTemplate(w, "layout.html", &page{
		Page:         name,
		Data:         data,
		Instance:     t.instance,
		Translations: t.translations,
	})
	if err != nil {
		c.Logger().Error(err)
	}
	return err
}

func NewTemplateRenderer(instance string, reg *bible.TranslationRegistry, hfs *HashFS) *TemplateRenderer {
	if instance == "" {
		instance = "bibletext"
	}
	return &TemplateRenderer{
		tmpl:         MustParseTemplates(hfs),
		instance:     instance,
		translations: reg.Translations(),
	}
}
